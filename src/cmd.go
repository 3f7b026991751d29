package main

import (
	"context"
	"fmt"
	"io"
	"tdc/src/util"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func newTdcCmd() *cobra.Command {
	opt := util.DefaultOptions()
	var config string

	cmd := &cobra.Command{
		Use:   "tdc [flags] <source>",
		Short: "tdc compiles int programs into 32-bit x86 executables",
		Long: "tdc compiles a program written in the int language into 32-bit x86 assembly.\n" +
			"\n" +
			"The assembly is written to <output>.s and, unless --asm-only is given, assembled and\n" +
			"linked into the executable <output> with the configured assembler and linker.\n" +
			"Settings are read from the file given by --config; flags given on the command line\n" +
			"take precedence over the file.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(config) > 0 {
				if err := applyConfig(cmd, config, &opt); err != nil {
					return err
				}
			}
			util.InitLogging(opt.LogToStderr, opt.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Src = args[0]
			if err := opt.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), opt)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&config, "config", "", "Read settings from the YAML file `path`")
	flags.IntVarP(&opt.Verbose, "verbose", "v", opt.Verbose,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	flags.BoolVar(&opt.LogToStderr, "logtostderr", opt.LogToStderr, "Log to stderr instead of to files")

	flags = cmd.Flags()
	flags.StringVarP(&opt.Out, "output", "o", opt.Out, "Base name of the produced files")
	flags.BoolVarP(&opt.KeepAsm, "assembly", "a", opt.KeepAsm, "Keep the assembly file after linking")
	flags.BoolVarP(&opt.AsmOnly, "asm-only", "S", opt.AsmOnly, "Stop after writing the assembly file")
	flags.BoolVar(&opt.DumpAST, "ast", opt.DumpAST, "Print the syntax tree")
	flags.BoolVar(&opt.DumpIR, "ir", opt.DumpIR, "Print the triples of every function")
	flags.BoolVar(&opt.DumpSymbols, "symbols", opt.DumpSymbols, "Print the symbol dictionary after parsing")
	flags.StringVar(&opt.Entry, "entry", opt.Entry, "Name of the function the program starts in")
	flags.StringVar(&opt.Arch, "arch", opt.Arch, "Target architecture")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tdc's version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), util.AppVersion)
		},
	}
}

// applyConfig layers the configuration file at path below the flags explicitly set on cmd.
func applyConfig(cmd *cobra.Command, path string, opt *util.Options) error {
	file := util.DefaultOptions()
	if err := util.LoadConfig(path, &file); err != nil {
		return err
	}
	flags := cmd.Flags()
	keep := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	keep("output", func() { file.Out = opt.Out })
	keep("assembly", func() { file.KeepAsm = opt.KeepAsm })
	keep("asm-only", func() { file.AsmOnly = opt.AsmOnly })
	keep("ast", func() { file.DumpAST = opt.DumpAST })
	keep("ir", func() { file.DumpIR = opt.DumpIR })
	keep("symbols", func() { file.DumpSymbols = opt.DumpSymbols })
	keep("entry", func() { file.Entry = opt.Entry })
	keep("arch", func() { file.Arch = opt.Arch })
	keep("verbose", func() { file.Verbose = opt.Verbose })
	keep("logtostderr", func() { file.LogToStderr = opt.LogToStderr })
	*opt = file
	return nil
}

// run compiles opt.Src. Debug dumps are written to w.
func run(ctx context.Context, w io.Writer, opt util.Options) error {
	c := newCompiler(opt, w)
	if err := c.Parse(opt.Src); err != nil {
		return err
	}
	if err := c.Translate(opt.AsmPath()); err != nil {
		return err
	}
	if opt.AsmOnly {
		return nil
	}
	return util.Build(ctx, opt)
}
