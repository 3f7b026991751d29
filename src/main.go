package main

import (
	"os"
	"tdc/src/util"

	"github.com/golang/glog"
)

func main() {
	if err := newTdcCmd().Execute(); err != nil {
		util.ReportError(err)
		glog.Flush()
		os.Exit(1)
	}
}
