package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

var colorEnabled bool

// setColorMode decides whether diagnostics are colorized: "always",
// "never", or "auto" (a terminal on stderr and no NO_COLOR in the
// environment).
func setColorMode(mode string) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
			colorEnabled = false
			return
		}
		colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) ||
			isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

func colorErr(s string) string {
	if !colorEnabled {
		return s
	}
	return ansiRed + s + ansiReset
}

func prompt(s string) string {
	if !colorEnabled {
		return s
	}
	return ansiCyan + s + ansiReset
}

// colorWarnings colorizes the "warning:" prefix of any warning lines
// embedded in command output.
func colorWarnings(out string) string {
	if !colorEnabled {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if rest, ok := strings.CutPrefix(line, "warning: "); ok {
			lines[i] = ansiYellow + "warning: " + ansiReset + rest
		}
	}
	return strings.Join(lines, "\n")
}
