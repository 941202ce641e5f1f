package unshare

import "fmt"

// Stage defines the pipeline step that failed
type Stage int

// Stage constants
const (
	StageUnshare Stage = iota + 1
	StageMountPrivate
	StageMount
	StageSetUID
	StageSetGID
	StageExec
)

var stageToString = []string{
	"unknown",
	"unshare",
	"mount(private)",
	"mount",
	"setresuid",
	"setresgid",
	"execvp",
}

func (s Stage) String() string {
	if s >= StageUnshare && s <= StageExec {
		return stageToString[s]
	}
	return "unknown"
}

// StageError defines the failed stage and the error it returned
type StageError struct {
	Stage Stage
	Err   error

	// Program is set for exec failures
	Program string
}

func (e *StageError) Error() string {
	if e.Program != "" {
		return fmt.Sprintf("%s(%s): %v", e.Stage.String(), e.Program, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage.String(), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
