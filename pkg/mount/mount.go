// Package mount plans and performs the bind mounts that expose parts of an
// alternate root over the real root inside a private mount namespace.
//
// A [Spec] names a directory relative to the alternate root. The [Executor]
// resolves every Spec to a [Mount] whose source is the alternate root
// concatenated with Spec.Path and whose target is Spec.Path itself,
// checks both ends and then calls the mount syscall through a [Mounter].
package mount

// Mount defines a resolved bind mount
type Mount struct {
	Source, Target string
	Flags          uintptr
}

// Spec is a mount point relative to the alternate root
type Spec struct {
	// Path is both the suffix appended to the alternate root and the
	// absolute target on the real root
	Path string

	// Optional skips the mount silently when the source does not exist
	Optional bool
}

// Mounter performs the mount syscall
type Mounter interface {
	Mount(source, target, fstype string, flags uintptr, data string) error
}

// Mount calls mount syscall through mounter
func (m *Mount) Mount(mounter Mounter) error {
	return mounter.Mount(m.Source, m.Target, "", m.Flags, "")
}

func (s Spec) String() string {
	if s.Optional {
		return "bind[" + s.Path + ":optional]"
	}
	return "bind[" + s.Path + "]"
}
