package vgaconv

import (
	"github.com/BurntSushi/toml"
	"github.com/bodgit/vgaconv/frame"
	"github.com/bodgit/vgaconv/text"
)

// Config holds the defaults read from a configuration file. Anything left
// unset keeps its built-in default.
type Config struct {
	// Output is where a converted image is written
	Output string `toml:"output"`
	// Policy is the name of the frame.Policy used for wrongly sized images
	Policy string `toml:"policy"`
	// Columns is the width of a text preview in cells
	Columns int `toml:"columns"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output:  DefaultOutput,
		Policy:  frame.Reject.String(),
		Columns: text.Columns,
	}
}

// LoadConfig reads the TOML file over the built-in defaults. The policy name
// is checked so a typo is caught before any conversion starts.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		return Config{}, err
	}
	if _, err := frame.ParsePolicy(cfg.Policy); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
