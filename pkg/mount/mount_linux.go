package mount

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PathMax is the longest source path accepted, including the terminating NUL
const PathMax = unix.PathMax

// BindRec is the flag set used for every alternate root mount
const BindRec = unix.MS_BIND | unix.MS_REC

// SyscallMounter calls mount(2) directly
type SyscallMounter struct{}

// Mount calls mount syscall
func (SyscallMounter) Mount(source, target, fstype string, flags uintptr, data string) error {
	return unix.Mount(source, target, fstype, flags, data)
}

func (m Mount) String() string {
	if m.Flags&unix.MS_BIND == unix.MS_BIND {
		flag := "norec"
		if m.Flags&unix.MS_REC == unix.MS_REC {
			flag = "rec"
		}
		return fmt.Sprintf("bind[%s:%s:%s]", m.Source, m.Target, flag)
	}
	return fmt.Sprintf("mount[%s:%s:%x]", m.Source, m.Target, m.Flags)
}
