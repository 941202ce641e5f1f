// Package unshare moves the calling process into a private mount
// namespace, exposes parts of an alternate root over the real root, drops
// back to the invoking user and replaces itself with the target program.
//
// The work is a linear pipeline run by [Runner.Run]:
//
//	unshare(CLONE_NEWNS) and make / private
//	bind mount the profile for the program, then the user mounts
//	setresuid(uid, uid, uid), then setresgid(gid, gid, gid)
//	execve(program, argv, environ)
//
// The first failing stage stops the pipeline and is reported as a
// [StageError]. Nothing is undone: the namespace and its mounts go away
// with the process.
//
// Mount namespaces belong to the OS thread until execve, so Run locks the
// calling goroutine to its thread and never unlocks it.
package unshare
