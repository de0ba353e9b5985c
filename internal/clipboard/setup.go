package clipboard

import (
	"io"
	"strings"

	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/charmbracelet/log"
)

// FromConfig builds the copy chain: the system clipboard first, then the
// configured helper command, then OSC 52 on term when enabled.
func FromConfig(cfg config.Config, term io.Writer, logger *log.Logger) Copier {
	c := Copier{Primary: System{}, Logger: logger}

	if line := strings.TrimSpace(cfg.Clipboard.Command); line != "" {
		cmd, err := NewCommand(line, cfg.ClipboardTimeout())
		if err != nil {
			if logger != nil {
				logger.Warn("ignoring clipboard command", "command", line, "err", err)
			}
		} else {
			c.Fallbacks = append(c.Fallbacks, cmd)
		}
	}
	if cfg.UseOSC52() && term != nil {
		c.Fallbacks = append(c.Fallbacks, OSC52{Out: term})
	}
	return c
}
