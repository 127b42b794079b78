package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// commandRunner runs one external control command with a hard timeout and
// returns its stdout.
type commandRunner interface {
	Run(ctx context.Context, timeout time.Duration, stdin string, name string, args ...string) (string, error)
}

type execRunner struct {
	logger *log.Logger
}

func newExecRunner(logger *log.Logger) *execRunner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, timeout time.Duration, stdin string, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running control command", "command", name, "args", strings.Join(args, " "))
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		r.logger.Warn("control command timed out", "command", name, "timeout", timeout)
		return stdout.String(), fmt.Errorf("%s: %w", name, ErrTimeout)
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return stdout.String(), fmt.Errorf("%s is not installed: %w", name, ErrUnsupported)
		}
		if errors.Is(err, os.ErrPermission) || strings.Contains(stderr.String(), "Permission denied") {
			return stdout.String(), fmt.Errorf("%s: %w", name, ErrPermission)
		}
		r.logger.Warn("control command failed",
			"command", name,
			"args", strings.Join(args, " "),
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return stdout.String(), fmt.Errorf("%s: %v", name, err)
	}

	return stdout.String(), nil
}
