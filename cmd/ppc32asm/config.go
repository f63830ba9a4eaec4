package main

import (
	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"
)

// profile is a named buffer-growth configuration loaded from an optional
// ppc32asm.toml. The core library never touches the filesystem for
// configuration -- this is purely a CLI convenience so repeated
// invocations can share growth settings instead of repeating flags.
type profile struct {
	InitialSize int    `toml:"initial_size"`
	GrowStep    int    `toml:"grow_step"`
	Mode        string `toml:"mode"` // "fixed" or "auto"
}

type config struct {
	Default profile            `toml:"default"`
	Profile map[string]profile `toml:"profile"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// envOverrides applies PPC32ASM_GROWSTEP / PPC32ASM_VERBOSE on top of
// whatever a profile or flag chose, using xyproto/env's typed getters
// instead of raw os.Getenv+strconv.
func envOverrides(growStep int, verbose bool) (int, bool) {
	growStep = env.Int("PPC32ASM_GROWSTEP", growStep)
	if env.Has("PPC32ASM_VERBOSE") {
		verbose = env.Bool("PPC32ASM_VERBOSE")
	}
	return growStep, verbose
}
