package mount

import (
	"errors"
	"io/fs"
	"os"

	"github.com/containerd/log"
)

// IsDir reports whether path exists and is a directory. A missing path and
// a path that is not a directory both report false. Other stat failures are
// logged but still report false.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.L.WithError(err).WithField("path", path).Warn("stat")
		}
		return false
	}
	return fi.IsDir()
}
