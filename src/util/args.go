package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Options holds every setting of a compiler invocation.
type Options struct {
	Src            string   `yaml:"-"`               // Path to source file.
	Out            string   `yaml:"output"`          // Base name of output files; assembly is written to Out + ".s".
	KeepAsm        bool     `yaml:"keep_assembly"`   // Keep the assembly file after building the executable.
	AsmOnly        bool     `yaml:"assembly_only"`   // Stop after writing the assembly file.
	DumpAST        bool     `yaml:"dump_ast"`        // Print the syntax tree to stdout.
	DumpIR         bool     `yaml:"dump_ir"`         // Print the triples of every function to stdout.
	DumpSymbols    bool     `yaml:"dump_symbols"`    // Print the symbol dictionary to stdout after parsing.
	Entry          string   `yaml:"entry"`           // Name of the function called by _start.
	Arch           string   `yaml:"arch"`            // Output target architecture name.
	Assembler      string   `yaml:"assembler"`       // External assembler command.
	AssemblerFlags []string `yaml:"assembler_flags"` // Flags passed to the assembler before the input file.
	Linker         string   `yaml:"linker"`          // External linker command.
	LinkerFlags    []string `yaml:"linker_flags"`    // Flags passed to the linker before the output flag.
	Verbose        int      `yaml:"verbose"`         // glog verbosity level.
	LogToStderr    bool     `yaml:"log_to_stderr"`   // Log to stderr instead of to files.
}

// ---------------------
// ----- Constants -----
// ---------------------

const AppVersion = "td compiler 1.0"

// Target machine architectures.
const (
	UnknownArch = iota
	X86_64
	X86_32
	Aarch64
	Riscv64
	Riscv32
)

// -------------------
// ----- Globals -----
// -------------------

// archNames maps architecture identifiers accepted in options to target constants.
var archNames = map[string]int{
	"x86_32":  X86_32,
	"x86_64":  X86_64,
	"aarch64": Aarch64,
	"riscv64": Riscv64,
	"riscv32": Riscv32,
}

// ---------------------
// ----- functions -----
// ---------------------

// DefaultOptions returns the options used when neither a configuration file nor flags say otherwise.
func DefaultOptions() Options {
	return Options{
		Out:            "out",
		Entry:          "main",
		Arch:           "x86_32",
		Assembler:      "as",
		AssemblerFlags: []string{"--32"},
		Linker:         "ld",
		LinkerFlags:    []string{"-m", "elf_i386", "-s"},
	}
}

// LoadConfig reads the YAML configuration file at path and applies it on top of opt.
// Settings missing from the file keep their value in opt.
func LoadConfig(path string, opt *Options) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "could not read configuration %q", path)
	}
	if err := yaml.Unmarshal(b, opt); err != nil {
		return errors.Wrapf(err, "could not parse configuration %q", path)
	}
	return opt.Validate()
}

// Validate checks that the options are consistent.
func (opt *Options) Validate() error {
	if _, err := ParseArch(opt.Arch); err != nil {
		return err
	}
	if len(strings.TrimSpace(opt.Out)) == 0 {
		return errors.New("output name must not be empty")
	}
	if len(strings.TrimSpace(opt.Entry)) == 0 {
		return errors.New("entry function name must not be empty")
	}
	return nil
}

// ParseArch returns the target constant of the architecture identifier s.
func ParseArch(s string) (int, error) {
	if a, ok := archNames[strings.ToLower(s)]; ok {
		return a, nil
	}
	return UnknownArch, fmt.Errorf("unexpected architecture identifier: %s", s)
}

// AsmPath returns the path of the assembly file produced for the options.
func (opt *Options) AsmPath() string {
	return opt.Out + ".s"
}
