package mount

import "strings"

// Profile names
const (
	ProfilePackageManager = "package-manager"
	ProfileMinimal        = "minimal"
)

// packageManagerCommands need the whole /var and /etc of the alternate root
var packageManagerCommands = []string{
	"xbps-install",
	"xbps-remove",
	"xbps-reconfigure",
}

// Profile is the fixed set of mounts chosen for a program
type Profile struct {
	Name   string
	Mounts []Spec
}

func (p Profile) String() string {
	return p.Name + " " + Builder{Mounts: p.Mounts}.String()
}

// NewPackageManagerBuilder creates builder for xbps commands
func NewPackageManagerBuilder() *Builder {
	return NewBuilder().
		WithBind("/usr", true).
		WithBind("/var", true).
		WithBind("/etc", true)
}

// NewMinimalBuilder creates builder for any other program: binaries plus
// the package database
func NewMinimalBuilder() *Builder {
	return NewBuilder().
		WithBind("/usr", true).
		WithBind("/var/db/xbps", true).
		WithBind("/etc/xbps.d", true)
}

// IsPackageManager reports whether program, or its last path component,
// is one of the xbps package management commands. Matching is exact.
func IsPackageManager(program string) bool {
	base := program
	if i := strings.LastIndexByte(program, '/'); i >= 0 {
		base = program[i+1:]
	}
	for _, c := range packageManagerCommands {
		if base == c {
			return true
		}
	}
	return false
}

// SelectProfile returns the mount profile for program
func SelectProfile(program string) Profile {
	if IsPackageManager(program) {
		return Profile{Name: ProfilePackageManager, Mounts: NewPackageManagerBuilder().Mounts}
	}
	return Profile{Name: ProfileMinimal, Mounts: NewMinimalBuilder().Mounts}
}
