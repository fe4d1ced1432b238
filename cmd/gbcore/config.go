package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultCycles is roughly 10 seconds of emulated time.
const defaultCycles = 10 * 1048576

// Config holds the settings of a run. It can be read from a YAML
// file, and any flag given on the command line overrides it.
type Config struct {
	ROM    string `yaml:"rom"`
	Boot   string `yaml:"boot"`
	Cycles uint64 `yaml:"cycles"`
	Serial bool   `yaml:"serial"`
	Debug  bool   `yaml:"debug"`
}

// loadConfig reads the YAML configuration in filename.
func loadConfig(filename string) (Config, error) {
	cfg := Config{Cycles: defaultCycles}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// parseArgs builds the configuration from the command line
// arguments, reading the file named by -config first.
func parseArgs(args []string) (Config, error) {
	fs := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	romFile := fs.String("rom", "", "The rom file to load")
	bootROM := fs.String("boot", "", "The boot rom file to load")
	cycles := fs.Uint64("cycles", defaultCycles, "The number of machine cycles to run")
	configFile := fs.String("config", "", "A YAML file holding the configuration")
	serial := fs.Bool("serial", false, "Print the serial output to stdout")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{Cycles: defaultCycles}
	if *configFile != "" {
		var err error
		if cfg, err = loadConfig(*configFile); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rom":
			cfg.ROM = *romFile
		case "boot":
			cfg.Boot = *bootROM
		case "cycles":
			cfg.Cycles = *cycles
		case "serial":
			cfg.Serial = *serial
		case "debug":
			cfg.Debug = *debug
		}
	})

	if cfg.ROM == "" {
		return cfg, errors.New("no rom file given")
	}
	return cfg, nil
}
