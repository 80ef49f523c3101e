package zerolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Config selects the output format of New.
type Config struct {
	Level      string
	TimeFormat string
	Colored    bool
	JSON       bool
	Out        io.Writer // defaults to stderr so generated scripts can go to stdout
}

// New builds a zerolog logger writing either JSON or a coloured console format.
func New(cfg Config) (*Adapter, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	var log zerolog.Logger
	if cfg.JSON {
		log = zerolog.New(out).Level(level).With().Timestamp().Logger()
		return NewAdapter(&log), nil
	}

	console := zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       !cfg.Colored,
		TimeFormat:    cfg.TimeFormat,
		FormatMessage: formatMessage,
		FormatCaller:  formatCaller,
	}
	if cfg.Colored {
		console.FormatLevel = formatLevel
		console.FormatTimestamp = func(i any) string {
			return formatTimestamp(i, cfg.TimeFormat)
		}
	}

	log = zerolog.New(console).Level(level).With().Timestamp().Logger()
	return NewAdapter(&log), nil
}

func formatLevel(i any) string {
	switch level, _ := i.(string); level {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WRN]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	default:
		return term.Whitef("[---]")
	}
}

func formatMessage(i any) string {
	msg, ok := i.(string)
	if !ok || msg == "" {
		return ">"
	}
	return "> " + msg
}

func formatCaller(i any) string {
	name, ok := i.(string)
	if !ok || name == "" {
		return ""
	}
	file, line, found := strings.Cut(filepath.Base(name), ":")
	if !found {
		return file
	}
	return fmt.Sprintf("[%s:%s]", file, line)
}

func formatTimestamp(i any, layout string) string {
	raw, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}
	if ts, err := time.ParseInLocation(time.RFC3339, raw, time.Local); err == nil {
		raw = ts.In(time.Local).Format(layout)
	}
	return term.Cyanf("[%s]", raw)
}
