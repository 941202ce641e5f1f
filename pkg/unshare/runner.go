package unshare

import (
	"errors"
	"strings"
)

// ErrNoProgram is returned when Args is empty
var ErrNoProgram = errors.New("no program to execute")

// Runner runs a program with parts of an alternate root mounted over the
// real root
type Runner struct {
	// AltRoot is the source tree of every bind mount, it must exist
	AltRoot string

	// UserMounts are mounted after the profile mounts and their sources
	// must exist
	UserMounts []string

	// argv of the program, Args[0] is resolved like execvp does
	Args []string

	// Env for execve, the current environment is used when nil
	Env []string

	// Identity the process drops to after mounting
	Identity Identity

	System System

	// IsDir checks mount sources and targets, mount.IsDir when nil
	IsDir func(string) bool
}

// New creates a Runner and captures the real user and group of the
// process before anything changes them
func New(sys System, altRoot string, userMounts, args []string) *Runner {
	return &Runner{
		AltRoot:    altRoot,
		UserMounts: userMounts,
		Args:       args,
		Identity:   CurrentIdentity(sys),
		System:     sys,
	}
}

// escapesRoot reports whether path may point outside of the alternate
// root: it is relative, so the source is a sibling of the root and the
// target depends on the working directory, or it has a ".." element
func escapesRoot(path string) bool {
	if !strings.HasPrefix(path, "/") {
		return true
	}
	for _, e := range strings.Split(path, "/") {
		if e == ".." {
			return true
		}
	}
	return false
}
