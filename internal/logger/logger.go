// Package logger provides the leveled, colored terminal output used across
// the generator. Colors honor NO_COLOR and are disabled when stdout is not a
// terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Level represents the verbosity level.
type Level int

const (
	LevelQuiet Level = iota
	LevelNormal
	LevelVerbose
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

type logger struct {
	level  Level
	out    io.Writer
	errOut io.Writer
	colors bool
}

var std = &logger{
	level:  LevelNormal,
	out:    os.Stdout,
	errOut: os.Stderr,
	colors: detectColorSupport(os.Stdout),
}

// SetVerbose raises the level to verbose.
func SetVerbose(verbose bool) {
	if verbose {
		std.level = LevelVerbose
	}
}

// SetQuiet drops all output except errors.
func SetQuiet(quiet bool) {
	if quiet {
		std.level = LevelQuiet
	}
}

// SetOutput redirects normal and error output, mainly for tests. Colors are
// disabled for non-file writers.
func SetOutput(w io.Writer) {
	std.out = w
	std.errOut = w
	std.colors = detectColorSupport(w)
}

func detectColorSupport(w io.Writer) bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (l *logger) colorize(text, color string) string {
	if l.colors {
		return color + text + colorReset
	}
	return text
}

func (l *logger) print(w io.Writer, prefix, color, format string, args ...any) {
	fmt.Fprintf(w, l.colorize(prefix, color)+format+"\n", args...)
}

// Info logs informational messages.
func Info(format string, args ...any) {
	if std.level >= LevelNormal {
		std.print(std.out, "[INFO] ", colorCyan, format, args...)
	}
}

// Success logs success messages.
func Success(format string, args ...any) {
	if std.level >= LevelNormal {
		std.print(std.out, "[SUCCESS] ", colorGreen, format, args...)
	}
}

// Warning logs warning messages.
func Warning(format string, args ...any) {
	if std.level >= LevelNormal {
		std.print(std.out, "[WARNING] ", colorYellow, format, args...)
	}
}

// Error logs error messages. Always shown.
func Error(format string, args ...any) {
	std.print(std.errOut, "[ERROR] ", colorRed, format, args...)
}

// Verbose logs detail lines shown only in verbose mode.
func Verbose(format string, args ...any) {
	if std.level >= LevelVerbose {
		std.print(std.out, "  [VERBOSE] ", colorGray, format, args...)
	}
}

// Section prints a section header.
func Section(title string) {
	if std.level >= LevelNormal {
		line := std.colorize(strings.Repeat("━", len(title)+4), colorBlue)
		fmt.Fprintf(std.out, "\n%s\n  %s  \n%s\n", line, std.colorize(title, colorBlue), line)
	}
}

// Stats logs a titled key/value block in verbose mode.
func Stats(title string, stats map[string]any) {
	if std.level < LevelVerbose {
		return
	}
	fmt.Fprintf(std.out, "\n%s\n", std.colorize(title+":", colorCyan))
	for k, v := range stats {
		fmt.Fprintf(std.out, "  • %s: %v\n", k, v)
	}
}
