// Package logx provides the leveled, colorized logger spec.md §6
// specifies: "[LEVEL] message" lines, color enabled only when the
// destination writer is a terminal (the CLI logs to standard error). It wraps zerolog's console writer rather than
// hand-rolling formatting, following the rest-of-pack convention of
// reaching for an ecosystem logging library instead of stdlib log.
package logx

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/ajroetker/parahull/internal/config"
)

// New builds a zerolog.Logger writing to w at the given minimum level,
// with ANSI color enabled only when w is a terminal (checked via
// go-isatty when w is *os.File; otherwise color is disabled).
func New(w io.Writer, level config.LogLevel) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(i any) string {
			s, _ := i.(string)
			return "[" + strings.ToUpper(s) + "]"
		},
		FormatTimestamp: func(any) string { return "" },
	}

	return zerolog.New(console).Level(toZerolog(level)).With().Logger()
}

// Default returns a logger writing to stderr at LevelInfo.
func Default() zerolog.Logger {
	return New(os.Stderr, config.LevelInfo)
}

func toZerolog(l config.LogLevel) zerolog.Level {
	switch l {
	case config.LevelError:
		return zerolog.ErrorLevel
	case config.LevelCritical:
		return zerolog.FatalLevel
	case config.LevelWarning:
		return zerolog.WarnLevel
	case config.LevelNotice:
		return zerolog.InfoLevel
	case config.LevelInfo:
		return zerolog.InfoLevel
	case config.LevelDebug:
		return zerolog.DebugLevel
	case config.LevelTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
