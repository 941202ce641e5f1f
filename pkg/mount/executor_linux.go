package mount

import (
	"context"

	"github.com/containerd/log"
)

// Executor bind mounts specs from Base onto the real root, one at a time
// and in order. It expects to run inside an already unshared mount
// namespace.
type Executor struct {
	Base    string
	Mounter Mounter

	// IsDir checks both ends of every mount, defaults to the package IsDir
	IsDir func(string) bool
}

// NewExecutor creates executor mounting from base
func NewExecutor(base string, mounter Mounter) *Executor {
	return &Executor{
		Base:    base,
		Mounter: mounter,
		IsDir:   IsDir,
	}
}

// Execute performs the mounts and stops at the first failure. Mounts that
// already succeeded stay in place.
func (e *Executor) Execute(ctx context.Context, specs []Spec) error {
	for _, s := range specs {
		if err := e.mount(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) mount(ctx context.Context, s Spec) error {
	if len(e.Base)+len(s.Path) >= PathMax {
		return &Error{Kind: ErrPathTooLong, Path: e.Base + s.Path}
	}

	isDir := e.IsDir
	if isDir == nil {
		isDir = IsDir
	}

	m := Mount{
		Source: e.Base + s.Path,
		Target: s.Path,
		Flags:  BindRec,
	}
	if !isDir(m.Source) {
		if s.Optional {
			return nil
		}
		return &Error{Kind: ErrMissingSource, Path: m.Source}
	}
	if !isDir(m.Target) {
		return &Error{Kind: ErrMissingDestination, Path: m.Target}
	}
	if err := m.Mount(e.Mounter); err != nil {
		return &Error{Kind: ErrMountFailed, Path: m.Target, Err: err}
	}
	log.G(ctx).WithField("mount", m.String()).Debug("mounted")
	return nil
}
