package tui

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestAbbreviateUnder(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX paths")
	}

	home := "/home/ada"
	tcs := map[string]string{
		"/home/ada":                          "~",
		"/home/ada/.config/marketprompt/log": "~/.config/marketprompt/log",
		"/home/adabelle/file":                "/home/adabelle/file",
		"/var/log/x":                         "/var/log/x",
		"":                                   "",
	}
	for in, want := range tcs {
		if got := abbreviateUnder(in, home); got != filepath.FromSlash(want) {
			t.Errorf("abbreviateUnder(%q) = %q, want %q", in, got, want)
		}
	}
}
