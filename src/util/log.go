package util

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// InitLogging ensures the glog library has been initialized with the given settings.
// glog is configured through its flags; they are set directly so that the go flag package never
// sees the command line, which belongs to cobra.
func InitLogging(logToStderr bool, verbose int) {
	if !flag.Parsed() {
		_ = flag.CommandLine.Parse([]string{})
	}
	if logToStderr {
		setFlag("logtostderr", "true")
	}
	if verbose > 0 {
		setFlag("v", strconv.Itoa(verbose))
	}
	glog.V(1).Infof("logging initialised, verbosity %d", verbose)
}

// setFlag sets the glog flag name to value if the flag is registered.
func setFlag(name, value string) {
	if f := flag.Lookup(name); f != nil {
		_ = f.Value.Set(value)
	}
}
