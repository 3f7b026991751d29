// toolchain.go drives the external assembler and linker that turn the generated assembly into an executable.

package util

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Build assembles the assembly file of opt and links it into the executable opt.Out.
// The object file lives in a scratch directory that is removed afterwards, as is the
// assembly file unless opt.KeepAsm is set.
func Build(ctx context.Context, opt Options) (err error) {
	scratch := filepath.Join(os.TempDir(), "tdc-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return errors.Wrap(err, "could not create scratch directory")
	}
	obj := filepath.Join(scratch, filepath.Base(opt.Out)+".o")

	defer func() {
		if cerr := cleanup(opt, scratch); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	args := append(append([]string{}, opt.AssemblerFlags...), opt.AsmPath(), "-o", obj)
	if err := run(ctx, opt.Assembler, args); err != nil {
		return err
	}

	args = append(append([]string{}, opt.LinkerFlags...), "-o", opt.Out, obj)
	return run(ctx, opt.Linker, args)
}

// run executes command name with args and reports its output on failure.
func run(ctx context.Context, name string, args []string) error {
	glog.V(1).Infof("running %s %s", name, strings.Join(args, " "))
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s failed: %s", name, strings.TrimSpace(out.String()))
	}
	return nil
}

// cleanup removes the intermediate files of a build.
func cleanup(opt Options, scratch string) error {
	var result error
	if err := os.RemoveAll(scratch); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "could not remove %q", scratch))
	}
	if !opt.KeepAsm {
		if err := os.Remove(opt.AsmPath()); err != nil && !os.IsNotExist(err) {
			result = multierror.Append(result, errors.Wrapf(err, "could not remove %q", opt.AsmPath()))
		}
	}
	return result
}
