package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// DefaultCommandTimeout bounds an external clipboard helper when no timeout is set.
const DefaultCommandTimeout = 3 * time.Second

// pipeWaitDelay bounds how long Write waits for the helper's stderr to close
// after the helper exits. xclip and similar tools fork a child that keeps
// serving the selection and inherits the pipe.
const pipeWaitDelay = 250 * time.Millisecond

// Command pipes the text into an external helper such as "wl-copy" or
// "xclip -selection clipboard".
type Command struct {
	Line    string
	Timeout time.Duration
}

// NewCommand validates line eagerly so config errors surface at startup.
func NewCommand(line string, timeout time.Duration) (Command, error) {
	if _, err := splitCommand(line); err != nil {
		return Command{}, err
	}
	return Command{Line: line, Timeout: timeout}, nil
}

func (c Command) Name() string {
	parts, err := splitCommand(c.Line)
	if err != nil {
		return "command"
	}
	return "command:" + parts[0]
}

func (c Command) Write(ctx context.Context, text string) error {
	parts, err := splitCommand(c.Line)
	if err != nil {
		return err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	setupProcessGroup(cmd)
	cmd.Cancel = func() error { return forceKillProcess(cmd) }
	cmd.WaitDelay = pipeWaitDelay
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// The helper exited cleanly; only a forked child still holds stderr.
		return nil
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", parts[0], ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", parts[0], err, msg)
		}
		return fmt.Errorf("%s: %w", parts[0], err)
	}
	return nil
}

func splitCommand(line string) ([]string, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse clipboard command: %w", err)
	}
	if len(parts) == 0 {
		return nil, errors.New("clipboard command is empty")
	}
	return parts, nil
}
