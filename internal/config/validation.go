package config

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// ValidationIssue represents a configuration validation issue.
type ValidationIssue struct {
	Field    string
	Message  string
	Severity string // "error", "warning", "info"
}

// ValidationResult holds the results of inter-field validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// AddError adds an error-level issue.
func (v *ValidationResult) AddError(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{
		Field:    field,
		Message:  message,
		Severity: "error",
	})
	v.Valid = false
}

// AddWarning adds a warning-level issue.
func (v *ValidationResult) AddWarning(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{
		Field:    field,
		Message:  message,
		Severity: "warning",
	})
}

// AddInfo adds an informational issue.
func (v *ValidationResult) AddInfo(field, message string) {
	v.Issues = append(v.Issues, ValidationIssue{
		Field:    field,
		Message:  message,
		Severity: "info",
	})
}

func (v *ValidationResult) Errors() []ValidationIssue {
	return v.bySeverity("error")
}

func (v *ValidationResult) Warnings() []ValidationIssue {
	return v.bySeverity("warning")
}

func (v *ValidationResult) bySeverity(severity string) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range v.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

var knownLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
	"FATAL": true,
}

// Standard glamour style names.
var knownPreviewStyles = map[string]bool{
	"auto":        true,
	"ascii":       true,
	"dark":        true,
	"dracula":     true,
	"light":       true,
	"notty":       true,
	"pink":        true,
	"tokyo-night": true,
}

const minWordWrap = 20

// ValidateInterField performs cross-field validation on the configuration.
func (c Config) ValidateInterField() ValidationResult {
	result := ValidationResult{Valid: true}

	if !knownLogLevels[normalizeLogLevel(c.LogLevel)] {
		result.AddError("log_level", fmt.Sprintf("unknown log level %q (use DEBUG, INFO, WARN or ERROR)", c.LogLevel))
	}

	if cmd := strings.TrimSpace(c.Clipboard.Command); cmd != "" {
		parts, err := shlex.Split(cmd)
		switch {
		case err != nil:
			result.AddError("clipboard.command", "cannot parse command: "+err.Error())
		case len(parts) == 0:
			result.AddError("clipboard.command", "command is empty after parsing")
		}
	} else if !c.UseOSC52() {
		result.AddInfo("clipboard", "no clipboard fallback configured; failed copies open the manual selection view")
	}

	if style := strings.TrimSpace(c.Preview.Style); style != "" && !knownPreviewStyles[style] {
		result.AddWarning("preview.style", fmt.Sprintf("unknown glamour style %q; markdown preview falls back to %q", style, DefaultPreviewStyle))
	}
	if c.Preview.WordWrap != nil && *c.Preview.WordWrap > 0 && *c.Preview.WordWrap < minWordWrap {
		result.AddWarning("preview.word_wrap", fmt.Sprintf("word_wrap %d is very narrow; values below %d make the preview hard to read", *c.Preview.WordWrap, minWordWrap))
	}

	rate, burst := c.RateLimit()
	if rate <= 0 {
		result.AddError("api.rate_per_minute", "rate_per_minute must be > 0")
	}
	if burst <= 0 {
		result.AddError("api.burst", "burst must be > 0")
	}
	if rate > 0 && burst > rate {
		result.AddWarning("api.burst", fmt.Sprintf("burst %d exceeds rate_per_minute %d", burst, rate))
	}

	return result
}
