package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xyproto/ppc32asm"
)

const versionString = "ppc32asm 1.0.0"

var (
	flagConfigPath string
	flagProfile    string
	flagGrowStep   int
	flagVerbose    bool
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "ppc32asm",
		Short:   "A runtime assembler for 32-bit PowerPC machine code",
		Version: versionString,
	}

	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a ppc32asm.toml buffer-growth profile file")
	root.PersistentFlags().StringVar(&flagProfile, "profile", "default", "named profile from --config to use")
	root.PersistentFlags().IntVar(&flagGrowStep, "growstep", ppc32asm.DefaultGrowStep, "AutoGrow increment in bytes (overridden by PPC32ASM_GROWSTEP)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "trace emitted instruction words to stderr (overridden by PPC32ASM_VERBOSE)")

	root.AddCommand(newAssembleCommand())
	root.AddCommand(newGoldenCommand())

	return root
}

// resolvedAssembler builds an Assembler using the profile named by
// --profile from --config (if given). The grow step starts from the
// --growstep flag, is replaced by the profile's grow_step when that is
// set, and is finally overridden by the environment -- env wins, so a
// per-process override always takes precedence over both the config file
// and the command-line flags.
func resolvedAssembler() (*ppc32asm.Assembler, error) {
	cfg, err := loadConfig(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", flagConfigPath, err)
	}

	p := cfg.Default
	if flagProfile != "default" {
		var ok bool
		p, ok = cfg.Profile[flagProfile]
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", flagProfile)
		}
	}

	growStep := flagGrowStep
	if p.GrowStep > 0 {
		growStep = p.GrowStep
	}
	growStep, verbose := envOverrides(growStep, flagVerbose)
	ppc32asm.Verbose = verbose

	mode := ppc32asm.AutoGrow
	if p.Mode == "fixed" {
		mode = ppc32asm.FixedSize
	}

	size := p.InitialSize
	if size == 0 {
		size = 4096
	}

	a := ppc32asm.NewAssembler(size, mode)
	a.SetGrowStep(growStep)
	return a, nil
}
