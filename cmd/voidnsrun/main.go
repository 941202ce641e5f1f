//go:build linux

// Command voidnsrun runs a program with /usr and the xbps package database
// of an alternate root mounted over the real root, in a private mount
// namespace. It is meant to be installed setuid root and drops back to the
// invoking user before the program starts.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/containerd/log"

	"github.com/voidnsrun/voidnsrun/config"
	"github.com/voidnsrun/voidnsrun/pkg/unshare"
)

func printUsage(w io.Writer, progname string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] PROGRAM [ARGS]\n", progname)
	fmt.Fprintf(w, `
Options:
	-m <path>: add bind mount, up to %d times
	-r <path>: altroot path. If this option is not present,
	           %s environment variable is used.
	-d:        print debug messages
	-h:        print this help
	-v:        print version
`, config.MaxUserMounts, config.EnvDir)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout, os.Args[0])
		return
	}

	c, err := config.Load(os.Args[1:], nil)
	if err != nil {
		fatal(err)
	}
	switch {
	case c.Help:
		printUsage(os.Stdout, os.Args[0])
		return
	case c.Version:
		fmt.Println(config.Version)
		return
	}

	if err := log.SetFormat(log.TextFormat); err != nil {
		fatal(err)
	}
	if c.Debug {
		if err := log.SetLevel("debug"); err != nil {
			fatal(err)
		}
	}
	ctx := log.WithLogger(context.Background(), log.L.WithField("program", c.Args[0]))

	r := unshare.New(unshare.DefaultSystem(), c.AltRoot, c.UserMounts, c.Args)
	if err := r.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
