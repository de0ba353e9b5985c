// Package clipboard places the composed prompt on the system clipboard and
// falls back to secondary mechanisms when the primary path fails.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// ErrUnsupported reports that no system clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Writer places text somewhere the user can paste it from.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Named is implemented by writers that want a readable method name in results and logs.
type Named interface {
	Name() string
}

// System writes through the platform clipboard (pbcopy, xclip, wl-copy, Windows API).
type System struct{}

func (System) Name() string { return "system" }

func (System) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// OSC52 emits an OSC 52 escape sequence so the terminal itself copies the
// text. This works over SSH where no local clipboard utility exists.
type OSC52 struct {
	Out io.Writer
}

func (OSC52) Name() string { return "osc52" }

func (o OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.Out == nil {
		return errors.New("osc52: no terminal output")
	}
	_, err := osc52.New(text).WriteTo(o.Out)
	return err
}

// Method names reported in Result.
const (
	MethodManual = "manual"
)

// Result describes how a copy was fulfilled. When Manual is set every writer
// failed and the caller must expose the text for manual selection.
type Result struct {
	Method   string
	Manual   bool
	Failures []error
}

// Fallback reports whether a writer other than the primary handled the copy.
func (r Result) Fallback() bool {
	return len(r.Failures) > 0
}

// Copier tries Primary and then each fallback in order.
type Copier struct {
	Primary   Writer
	Fallbacks []Writer
	Logger    *log.Logger
}

// Copy never fails: a total failure yields a Manual result.
func (c Copier) Copy(ctx context.Context, text string) Result {
	writers := make([]Writer, 0, 1+len(c.Fallbacks))
	if c.Primary != nil {
		writers = append(writers, c.Primary)
	}
	writers = append(writers, c.Fallbacks...)

	var res Result
	for i, w := range writers {
		name := writerName(w, i)
		if err := w.Write(ctx, text); err != nil {
			res.Failures = append(res.Failures, fmt.Errorf("%s: %w", name, err))
			c.logger().Warn("clipboard write failed", "method", name, "err", err)
			continue
		}
		res.Method = name
		c.logger().Debug("clipboard write succeeded", "method", name, "bytes", len(text))
		return res
	}

	res.Method = MethodManual
	res.Manual = true
	c.logger().Warn("all clipboard writers failed; manual selection required", "attempts", len(writers))
	return res
}

func (c Copier) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

func writerName(w Writer, idx int) string {
	if n, ok := w.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("writer-%d", idx)
}
