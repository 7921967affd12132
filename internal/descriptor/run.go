package descriptor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ToolError reports a toolkit process that started but exited non-zero.
type ToolError struct {
	Tool       string
	Descriptor string
	ExitCode   int
	Output     string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed for %s (exit %d): %s", e.Tool, e.Descriptor, e.ExitCode, e.Output)
}

func runTool(ctx context.Context, timeout time.Duration, tool, desc, bin string, args []string) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, bin, args...).CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", tool, desc, ctxErr)
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ToolError{Tool: tool, Descriptor: desc, ExitCode: ee.ExitCode(), Output: tail(out)}
		}
		return fmt.Errorf("run %s for %s: %w", tool, desc, err)
	}
	return nil
}

func tail(b []byte) string {
	const max = 400
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		s = "..." + s[len(s)-max:]
	}
	return s
}
