package unshare

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/containerd/log"
	"github.com/moby/sys/userns"
	"golang.org/x/sys/unix"

	"github.com/voidnsrun/voidnsrun/pkg/mount"
)

const privateRoot = unix.MS_REC | unix.MS_PRIVATE

// execvp runs files without a recognized format through the shell
const shell = "/bin/sh"

var runningInUserNS = userns.RunningInUserNS

// Run isolates the mount namespace, applies the mounts, drops privileges
// and executes the program. With the real System it only returns on
// failure.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.Args) == 0 {
		return ErrNoProgram
	}

	// unshare only affects the calling thread, keep it until execve
	runtime.LockOSThread()

	stages := []func(context.Context) error{
		r.isolate,
		r.applyMounts,
		r.dropPrivileges,
		r.handoff,
	}
	for _, s := range stages {
		if err := s(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) isolate(ctx context.Context) error {
	if err := r.System.Unshare(unix.CLONE_NEWNS); err != nil {
		if errors.Is(err, unix.EPERM) && runningInUserNS() {
			log.G(ctx).Warn("running inside a user namespace, CAP_SYS_ADMIN over it is needed")
		}
		return &StageError{Stage: StageUnshare, Err: err}
	}
	if err := r.System.Mount("none", "/", "", privateRoot, ""); err != nil {
		return &StageError{Stage: StageMountPrivate, Err: err}
	}
	log.G(ctx).Debug("mount namespace unshared")
	return nil
}

func (r *Runner) applyMounts(ctx context.Context) error {
	profile := mount.SelectProfile(r.Args[0])
	log.G(ctx).WithFields(log.Fields{
		"profile": profile.Name,
		"root":    r.AltRoot,
		"mounts":  profile.String(),
	}).Debug("selected mount profile")

	ex := mount.NewExecutor(r.AltRoot, r.System)
	if r.IsDir != nil {
		ex.IsDir = r.IsDir
	}
	if err := ex.Execute(ctx, profile.Mounts); err != nil {
		return &StageError{Stage: StageMount, Err: err}
	}
	if len(r.UserMounts) == 0 {
		return nil
	}

	for _, p := range r.UserMounts {
		if escapesRoot(p) {
			log.G(ctx).WithField("path", p).Warn("user mount is not confined to the alternate root")
		}
	}
	user := mount.NewBuilder().WithBinds(r.UserMounts, false)
	log.G(ctx).WithField("mounts", user.String()).Debug("user mounts")
	if err := ex.Execute(ctx, user.Mounts); err != nil {
		return &StageError{Stage: StageMount, Err: err}
	}
	return nil
}

// dropPrivileges sets real, effective and saved IDs to the captured
// identity, user first
func (r *Runner) dropPrivileges(ctx context.Context) error {
	id := r.Identity
	if err := r.System.Setresuid(id.UID, id.UID, id.UID); err != nil {
		return &StageError{Stage: StageSetUID, Err: err}
	}
	if err := r.System.Setresgid(id.GID, id.GID, id.GID); err != nil {
		return &StageError{Stage: StageSetGID, Err: err}
	}
	log.G(ctx).WithFields(log.Fields{
		"uid": id.UID,
		"gid": id.GID,
	}).Debug("dropped privileges")
	return nil
}

func (r *Runner) handoff(ctx context.Context) error {
	program := r.Args[0]
	path, err := r.System.LookPath(program)
	if err != nil {
		return &StageError{Stage: StageExec, Program: program, Err: err}
	}
	env := r.Env
	if env == nil {
		env = os.Environ()
	}
	log.G(ctx).WithField("path", path).Debug("executing")
	err = r.System.Exec(path, r.Args, env)
	if errors.Is(err, unix.ENOEXEC) {
		argv := append([]string{shell, path}, r.Args[1:]...)
		log.G(ctx).WithField("path", path).Debug("no executable format, running through " + shell)
		err = r.System.Exec(shell, argv, env)
	}
	if err != nil {
		return &StageError{Stage: StageExec, Program: program, Err: err}
	}
	return nil
}
