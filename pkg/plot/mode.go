package plot

import (
	"fmt"
	"strings"
)

// Mode is the visualization policy of an emitted analysis script.
type Mode string

const (
	ModeInteractive     Mode = "interactive"
	ModeStatic          Mode = "static"
	ModeTables          Mode = "tables"
	ModeChartsAndTables Mode = "charts_tables"
	ModeNone            Mode = "none"
)

var modeAliases = map[string]Mode{
	"interactive":                 ModeInteractive,
	"interactive-with-indicators": ModeInteractive,
	"static":                      ModeStatic,
	"static-with-indicators":      ModeStatic,
	"tables":                      ModeTables,
	"tables-only":                 ModeTables,
	"charts_tables":               ModeChartsAndTables,
	"charts-and-tables":           ModeChartsAndTables,
	"none":                        ModeNone,
	"":                            ModeNone,
}

// Modes lists every policy in display order.
func Modes() []Mode {
	return []Mode{ModeInteractive, ModeStatic, ModeTables, ModeChartsAndTables, ModeNone}
}

// ParseMode accepts the canonical names and their long spellings.
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("plot: unknown visualization mode %q", s)
}

// Charts reports whether the mode renders figures.
func (m Mode) Charts() bool {
	return m == ModeInteractive || m == ModeStatic || m == ModeChartsAndTables
}

// Tables reports whether the mode prints tabular summaries.
func (m Mode) Tables() bool {
	return m == ModeTables || m == ModeChartsAndTables
}

// Interactive reports whether figures are opened in the browser rather than
// written as static images.
func (m Mode) Interactive() bool {
	return m == ModeInteractive || m == ModeChartsAndTables
}
