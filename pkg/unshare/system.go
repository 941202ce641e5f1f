package unshare

import "github.com/voidnsrun/voidnsrun/pkg/mount"

// System is the set of process level calls made by the Runner
type System interface {
	mount.Mounter

	Unshare(flags int) error

	Getuid() int
	Getgid() int
	Setresuid(ruid, euid, suid int) error
	Setresgid(rgid, egid, sgid int) error

	// LookPath resolves file the way execvp does
	LookPath(file string) (string, error)

	// Exec replaces the process image and only returns on failure
	Exec(argv0 string, argv []string, envv []string) error
}

// Identity is the real user and group of the invoking process
type Identity struct {
	UID, GID int
}

// CurrentIdentity reads the real user and group IDs
func CurrentIdentity(sys System) Identity {
	return Identity{
		UID: sys.Getuid(),
		GID: sys.Getgid(),
	}
}
