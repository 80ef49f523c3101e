package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
dataset:
  path: /data/NQ_metadata.json
timeframe_mode: multi
timeframes: [1m, 5m]
indicators:
  - library: native
    name: SMA
    params:
      window: 20
  - library: pta
    name: macd
    params:
      fast: 12
      slow: 26
      signal: 9
visualization:
  mode: charts-and-tables
  segmented: true
save:
  summary: false
`

func TestParse_YAML(t *testing.T) {
	s, err := Parse([]byte(sample), false)
	require.NoError(t, err)

	assert.Equal(t, Multi, s.TimeframeMode)
	assert.Equal(t, plot.ModeChartsAndTables, s.Visualization.Mode)
	assert.Equal(t, "1 week", s.Visualization.Period)
	assert.Equal(t, 1000, s.Visualization.CandlesPerChart)
	assert.True(t, s.Save.Downstream)
	assert.False(t, s.Save.Summary)
	assert.Equal(t, core.PandasTA, s.Indicators[1].Library)
	assert.Equal(t, "macd(12,26,9)", s.Indicators[1].DisplayName())
	assert.Equal(t, []string{"fast", "slow", "signal"}, s.Indicators[1].Params.Names())

	report := s.Validate(catalog.Default())
	assert.True(t, report.OK(), report.String())
}

func TestDataset_Files(t *testing.T) {
	d := Dataset{Path: "/data/NQ_metadata.json"}
	assert.True(t, d.IsBundle())
	assert.Equal(t, "NQ", d.BaseName())
	assert.Equal(t, "/data/NQ_5m_VBT.pickle.blosc", d.Files("5m")[0])

	single := Dataset{Path: "/data/ES_1h.csv", Columns: []string{"open", "high", "low", "close"}}
	assert.Equal(t, []string{"/data/ES_1h.csv"}, single.Files("1h"))
	assert.Equal(t, "ES", single.BaseName())
	assert.False(t, single.Available().HasVolume())
}

func TestValidate_Errors(t *testing.T) {
	s := New()
	s.Dataset.Path = "/data/NQ_5m.csv"
	s.Timeframes = []string{"5m", "1h"}
	s.Indicators = []core.IndicatorSpec{{Library: core.Native, Name: "NOPE"}}
	s.Visualization.Quality = "ultra"

	report := s.Validate(catalog.Default())
	require.False(t, report.OK())

	var unknown bool
	for _, err := range report.Errors {
		if errors.Is(err, core.ErrUnknownIndicator) {
			unknown = true
		}
	}
	assert.True(t, unknown)
	assert.Contains(t, report.String(), "single timeframe mode")
	assert.Contains(t, report.String(), "Quality must be one of")
}

func TestValidate_MissingTimeframes(t *testing.T) {
	s := New()
	s.Dataset.Path = "/data/NQ_5m.csv"

	report := s.Validate(catalog.Default())
	require.False(t, report.OK())
	assert.Contains(t, report.String(), "Timeframes is required")
}

func TestIndicatorsFor(t *testing.T) {
	s := New()
	s.TimeframeMode = Multi
	s.MultiIndicatorMode = Individual
	s.Timeframes = []string{"1m", "5m"}
	s.PerTimeframe = map[string][]core.IndicatorSpec{
		"1m": {{Library: core.Native, Name: "RSI"}},
		"5m": {{Library: core.Native, Name: "ATR"}, {Library: core.Native, Name: "OBV"}},
	}

	assert.Len(t, s.IndicatorsFor("5m"), 2)
	assert.Len(t, s.AllIndicators(), 3)
	assert.Equal(t, "RSI", s.AllIndicators()[0].Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sample), false)
	require.NoError(t, err)

	for _, name := range []string{"snap.yaml", "snap.json"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, s.WriteFile(path))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, s.Hash(), loaded.Hash(), name)
	}
}

func TestValidate_DeclaredColumnsContract(t *testing.T) {
	s := New()
	s.Dataset = Dataset{Path: "/data/NQ_5m.csv", Columns: []string{"open", "high", "volume"}}
	s.Timeframes = []string{"5m"}

	report := s.Validate(catalog.Default())
	require.False(t, report.OK())

	var format *core.DatasetFormatError
	require.ErrorAs(t, report.Errors[0], &format)
	assert.Contains(t, format.Reason, "low, close")
}

func TestValidate_CSVHeaderContract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "NQ_5m.csv")
	require.NoError(t, os.WriteFile(path, []byte("time,open,high,close\n1,1,2,1.5\n"), 0o644))

	s := New()
	s.Dataset = Dataset{Path: path}
	s.Timeframes = []string{"5m"}

	report := s.Validate(catalog.Default())
	require.False(t, report.OK())
	assert.True(t, errors.Is(report.Err(), core.ErrDatasetFormat))

	require.NoError(t, os.WriteFile(path, []byte("time,open,high,low,close\n1,1,2,0.5,1.5\n"), 0o644))
	report = s.Validate(catalog.Default())
	assert.True(t, report.OK(), report.String())
}

func TestValidate_MissingDatasetOnlyWarns(t *testing.T) {
	s := New()
	s.Dataset = Dataset{Path: filepath.Join(t.TempDir(), "NQ_5m.csv")}
	s.Timeframes = []string{"5m"}
	s.Indicators = []core.IndicatorSpec{{Library: core.Native, Name: "SMA"}}

	report := s.Validate(catalog.Default())
	assert.True(t, report.OK(), report.String())
	assert.Contains(t, report.String(), "columns were not checked")
}

func TestDataset_BaseNameFromManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export_metadata.json")
	manifest := `{"timeframes":["5m"],"created_at":"2024-03-01T10:00:00","filename_base":"NQ"}`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	d := Dataset{Path: path}
	assert.Equal(t, "NQ", d.BaseName())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "NQ_5m_VBT.pickle.blosc"), d.Files("5m")[0])

	d.Base = "ES"
	assert.Equal(t, "ES", d.BaseName())
}
