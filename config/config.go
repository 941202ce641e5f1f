// Package config resolves the command line and the environment into the
// settings of a single run.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/voidnsrun/voidnsrun/pkg/mount"
	"github.com/voidnsrun/voidnsrun/pkg/unshare"
)

const (
	// EnvDir holds the alternate root when -r is not given
	EnvDir = "VOIDNSRUN_DIR"

	// MaxUserMounts is the number of -m options accepted
	MaxUserMounts = 8

	// Version is printed by -v
	Version = "1.0"
)

// Validation errors
var (
	ErrNoAltRoot     = fmt.Errorf("environment variable %s not found", EnvDir)
	ErrNotDirectory  = errors.New("is not a directory")
	ErrTooManyMounts = fmt.Errorf("only up to %d user mounts allowed", MaxUserMounts)
	ErrNoProgram     = unshare.ErrNoProgram
)

type environment struct {
	Dir   string `env:"VOIDNSRUN_DIR"`
	Debug bool   `env:"VOIDNSRUN_DEBUG"`
}

// Config is a validated run configuration
type Config struct {
	// AltRoot is an existing directory
	AltRoot string

	// UserMounts in the order given on the command line
	UserMounts []string

	// Args is the program followed by its arguments, verbatim
	Args []string

	Debug bool

	// Help and Version short circuit everything else
	Help    bool
	Version bool
}

// Load parses the command line args, without the program name, and the
// environment. A nil environ reads the process environment. Options
// stop at the first non option argument, which starts Args.
func Load(args []string, environ map[string]string) (*Config, error) {
	c := &Config{}
	var root string
	fs := pflag.NewFlagSet("voidnsrun", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringArrayVarP(&c.UserMounts, "mount", "m", nil, "add bind mount")
	fs.StringVarP(&root, "root", "r", "", "altroot path")
	fs.BoolVarP(&c.Debug, "debug", "d", false, "print debug messages")
	fs.BoolVarP(&c.Help, "help", "h", false, "print this help")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.Help || c.Version {
		return c, nil
	}

	var e environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	c.Debug = c.Debug || e.Debug

	if len(c.UserMounts) > MaxUserMounts {
		return nil, ErrTooManyMounts
	}

	c.AltRoot = root
	if c.AltRoot == "" {
		c.AltRoot = e.Dir
	}
	if c.AltRoot == "" {
		return nil, ErrNoAltRoot
	}
	if !mount.IsDir(c.AltRoot) {
		return nil, fmt.Errorf("%s %w", c.AltRoot, ErrNotDirectory)
	}

	c.Args = fs.Args()
	if len(c.Args) == 0 {
		return nil, ErrNoProgram
	}
	return c, nil
}
