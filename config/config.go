// Package config holds the runtime settings of the demo.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/actionmap/gesture"
)

// Config is read from ACTIONMAP_* environment variables and then
// overridden by command-line flags.
type Config struct {
	// Bindings is a binding file path. Empty means the built-in defaults.
	Bindings       string `env:"BINDINGS"`
	Watch          bool   `env:"WATCH"`
	Debug          bool   `env:"DEBUG"`
	LongPressTicks int    `env:"LONG_PRESS_TICKS" envDefault:"30"`
}

// ParseEnv loads c from the environment.
func ParseEnv() (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Prefix: "ACTIONMAP_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Parse loads the environment, then applies args on top.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	c, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	fs.StringVar(&c.Bindings, "bindings", c.Bindings, "binding file (yaml); empty uses the defaults")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload the binding file when it changes")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log gesture activations and binding reloads")
	fs.IntVar(&c.LongPressTicks, "long-press", c.LongPressTicks, "ticks a touch must be held to open the inventory")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if c.LongPressTicks <= 0 {
		c.LongPressTicks = gesture.DefaultLongPressTicks
	}
	if c.Watch && c.Bindings == "" {
		return Config{}, fmt.Errorf("-watch needs a binding file")
	}
	return c, nil
}
