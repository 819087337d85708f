package video

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegError describes a failed ffmpeg or ffprobe run.
type FFmpegError struct {
	Command   string
	ExitCode  int
	Stderr    string
	Operation string
	Original  error
}

// Error returns the string form of the error
func (e *FFmpegError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Operation)
	if e.Original != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Original)
	}
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s (exit code: %d)", msg, e.ExitCode)
	}
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *FFmpegError) Unwrap() error {
	return e.Original
}

func newFFmpegError(operation string, cmd *exec.Cmd, stderr string, err error) *FFmpegError {
	var exitCode int
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &FFmpegError{
		Command:   strings.Join(cmd.Args, " "),
		ExitCode:  exitCode,
		Stderr:    strings.TrimSpace(stderr),
		Operation: operation,
		Original:  err,
	}
}
