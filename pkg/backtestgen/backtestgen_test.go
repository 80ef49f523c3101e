package backtestgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(v Variant) Config {
	return Config{Variant: v, BaseName: "NQ", Timeframe: "5m"}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Full")
	require.NoError(t, err)
	assert.Equal(t, Full, v)

	v, err = ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, Scaffold, v)

	_, err = ParseVariant("walkforward")
	assert.True(t, errors.Is(err, core.ErrInvalidValue))
}

func TestGenerate_DefaultState(t *testing.T) {
	res, err := Generate(portfolio.New(), config(""))
	require.NoError(t, err)

	assert.Contains(t, res.Script, `DATA_DIR = "data/punkt4"`)
	assert.Contains(t, res.Script, `BASE_NAME = "NQ"`)
	assert.Contains(t, res.Script, "    size=np.inf,\n")
	assert.Contains(t, res.Script, "    sl_stop=np.nan,  # off\n")
	assert.Contains(t, res.Script, "    max_orders=None,\n")
	assert.Contains(t, res.Script, "    fixed_fees=0.0,\n")
	assert.Contains(t, res.Script, `    freq="5m",`)
	assert.Contains(t, res.Script, "vbt.Portfolio.from_signals(")
	assert.Contains(t, res.Script, "**PORTFOLIO_PARAMS,")
	assert.NotContains(t, res.Script, "def analyze(pf):")
	assert.NotContains(t, res.Script, "TODO")
}

func TestGenerate_IndicatorCountExcludesPresentPriceColumns(t *testing.T) {
	res, err := Generate(portfolio.New(), config(""))
	require.NoError(t, err)

	assert.Contains(t, res.Script, `PRICE_COLUMNS = ("open", "high", "low", "close", "volume")`+"\n")
	assert.Contains(t, res.Script, `missing = [c for c in PRICE_COLUMNS[:4] if c not in frame.columns]`)
	assert.Contains(t, res.Script, `price = [c for c in PRICE_COLUMNS if c in frame.columns]`)
	assert.Contains(t, res.Script, `(frame.shape[1] - len(price))`)
	assert.NotContains(t, res.Script, "frame.shape[1] - 5")
	assert.Less(t, strings.Index(res.Script, "PRICE_COLUMNS = "), strings.Index(res.Script, "def load_data():"))
}

func TestGenerate_FullVariant(t *testing.T) {
	res, err := Generate(portfolio.New(), config(Full))
	require.NoError(t, err)

	ordered := []string{
		"Full backtest for NQ 5m",
		"PORTFOLIO_PARAMS = dict(",
		"def load_data():",
		"def build_signals(frame):",
		"def run_portfolio(frame, entries, exits):",
		"def analyze(pf):",
		"def save_portfolio(pf):",
		"    analyze(pf)\n",
		`if __name__ == "__main__":`,
	}
	last := -1
	for _, fragment := range ordered {
		i := strings.Index(res.Script, fragment)
		require.GreaterOrEqual(t, i, 0, "missing %q", fragment)
		assert.Greater(t, i, last, "%q out of order", fragment)
		last = i
	}
	assert.Contains(t, res.Script, `RESULTS_DIR = "data/punkt6"`)
}

func TestGenerate_TickStopComment(t *testing.T) {
	m := portfolio.New()
	require.NoError(t, m.ApplyPreset("NQ"))
	require.NoError(t, m.SetStop(portfolio.Loss, 25, portfolio.ModeTicks))

	res, err := Generate(m, config(Scaffold))
	require.NoError(t, err)

	assert.Contains(t, res.Script, "# 25 ticks")
	assert.Contains(t, res.Script, "Instrument preset: NQ")
	assert.Contains(t, res.Script, "# instrument: tick_size=0.25, tick_value=5.0")
}

func TestGenerate_InvalidStateRefused(t *testing.T) {
	m := portfolio.New()
	require.NoError(t, m.Set(portfolio.Fees, 0.5))

	res, err := Generate(m, config(Scaffold))
	require.Error(t, err)
	assert.Empty(t, res.Script)
	assert.False(t, res.Validation.Valid)
}

func TestGenerate_WarningsBecomeComments(t *testing.T) {
	m := portfolio.New()
	require.NoError(t, m.Set(portfolio.Fees, 0.05))

	res, err := Generate(m, config(Scaffold))
	require.NoError(t, err)
	require.NotEmpty(t, res.Validation.Warnings)
	assert.Contains(t, res.Script, "# warning: "+res.Validation.Warnings[0])
}

func TestGenerate_Sessions(t *testing.T) {
	cfg := config(Scaffold)
	cfg.Sessions = []portfolio.Window{
		{Name: "NY RTH", Start: "09:30", End: "16:00"},
		{Name: "Asia", Start: "22:00", End: "02:00"},
	}

	res, err := Generate(portfolio.New(), cfg)
	require.NoError(t, err)
	assert.Contains(t, res.Script, `    ("NY RTH", "09:30", "16:00"),`)
	assert.Contains(t, res.Script, `    ("Asia", "22:00", "02:00"),`)
	assert.Contains(t, res.Script, "entries = entries & active")

	cfg.Sessions = []portfolio.Window{{Name: "bad", Start: "25:00", End: "26:00"}}
	_, err = Generate(portfolio.New(), cfg)
	assert.Error(t, err)
}

func TestGenerate_RequiresArtifactName(t *testing.T) {
	_, err := Generate(portfolio.New(), Config{Timeframe: "5m"})
	assert.True(t, errors.Is(err, core.ErrInvalidValue))
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(portfolio.New(), config(Full))
	require.NoError(t, err)
	second, err := Generate(portfolio.New(), config(Full))
	require.NoError(t, err)
	assert.Equal(t, first.Script, second.Script)
}
