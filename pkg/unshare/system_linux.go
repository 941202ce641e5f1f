package unshare

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/voidnsrun/voidnsrun/pkg/mount"
)

// defaultPath is searched when PATH is not set
const defaultPath = "/bin:/usr/bin"

type syscallSystem struct {
	mount.SyscallMounter
}

// DefaultSystem returns System backed by the real syscalls
func DefaultSystem() System {
	return syscallSystem{}
}

func (syscallSystem) Unshare(flags int) error {
	return unix.Unshare(flags)
}

func (syscallSystem) Getuid() int {
	return unix.Getuid()
}

func (syscallSystem) Getgid() int {
	return unix.Getgid()
}

func (syscallSystem) Setresuid(ruid, euid, suid int) error {
	return unix.Setresuid(ruid, euid, suid)
}

func (syscallSystem) Setresgid(rgid, egid, sgid int) error {
	return unix.Setresgid(rgid, egid, sgid)
}

func (syscallSystem) LookPath(file string) (string, error) {
	path, ok := os.LookupEnv("PATH")
	if !ok {
		path = defaultPath
	}
	return lookPath(file, path)
}

func (syscallSystem) Exec(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}

// lookPath searches path the way execvp does: names with a slash are used
// as they are, empty and relative PATH entries are searched relative to
// the working directory, and a candidate that exists but cannot be run is
// reported only when nothing else is found.
func lookPath(file, path string) (string, error) {
	if strings.Contains(file, "/") {
		return checkExecutable(file)
	}
	var denied error
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		p, err := checkExecutable(dir + "/" + file)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR) {
			continue
		}
		if denied == nil {
			denied = err
		}
	}
	if denied != nil {
		return "", denied
	}
	return "", exec.ErrNotFound
}

// checkExecutable resolves a path containing a slash, for which
// exec.LookPath does no PATH search
func checkExecutable(file string) (string, error) {
	path, err := exec.LookPath(file)
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return "", execErr.Err
	}
	return path, err
}
