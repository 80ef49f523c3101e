package backtestgen

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/raykavin/vbtforge/pkg/pysrc"
)

// Variant selects the program template.
type Variant string

const (
	// Scaffold builds empty signals and a portfolio for strategy development.
	Scaffold Variant = "scaffold"
	// Full additionally analyzes performance and saves the portfolio.
	Full Variant = "full"
)

// ParseVariant accepts the variant names.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scaffold", "strategy", "":
		return Scaffold, nil
	case "full", "backtest":
		return Full, nil
	}
	return "", fmt.Errorf("%w: unknown backtest variant %q", core.ErrInvalidValue, s)
}

// Config locates the upstream indicator artifact and the output directory.
type Config struct {
	Variant    Variant `default:"scaffold"`
	DataDir    string `default:"data/punkt4"`
	BaseName   string
	Timeframe  string
	ResultsDir string `default:"data/punkt6"`
	Sessions   []portfolio.Window
}

// Result is the emitted program and the validation findings it carries.
type Result struct {
	Script     string
	Validation portfolio.Validation
}

// Generate emits the backtest program for the current portfolio state.
// An invalid state yields no program; warnings are carried into it as
// comments.
func Generate(m *portfolio.Model, cfg Config) (Result, error) {
	if cfg.BaseName == "" || cfg.Timeframe == "" {
		return Result{}, fmt.Errorf("%w: base name and timeframe are required", core.ErrInvalidValue)
	}
	if err := defaults.Set(&cfg); err != nil {
		return Result{}, fmt.Errorf("backtest config defaults: %w", err)
	}
	for _, w := range cfg.Sessions {
		if err := w.Validate(); err != nil {
			return Result{}, err
		}
	}

	v := m.ValidateAll()
	if !v.Valid {
		return Result{Validation: v}, fmt.Errorf("portfolio parameters are invalid: %w", v.Err())
	}

	w := pysrc.NewWriter()
	writeHeader(w, m, cfg, v)
	writeParameters(w, m, cfg)
	writeLoad(w)
	writeSignals(w, cfg)
	writeRun(w)
	if cfg.Variant == Full {
		writeAnalysis(w, cfg)
	}
	writeMain(w, cfg)

	return Result{Script: w.String(), Validation: v}, nil
}
