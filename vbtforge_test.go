package vbtforge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/raykavin/vbtforge/pkg/backtestgen"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/raykavin/vbtforge/pkg/settings"
	"github.com/raykavin/vbtforge/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	store, err := storage.FromMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	s, err := NewSession(WithSettings(settings.Default()), WithStorage(store))
	require.NoError(t, err)
	return s
}

func TestSession_GenerateAnalysis(t *testing.T) {
	s := newSession(t)

	snap, err := s.NewSnapshot()
	require.NoError(t, err)
	snap.Dataset.Path = "/data/NQ_metadata.json"
	snap.Timeframes = []string{"5m"}
	snap.Indicators = []core.IndicatorSpec{
		{Library: core.Native, Name: "SMA", Params: core.Params{{Name: "window", Value: 20}}},
	}

	res, err := s.GenerateAnalysis(snap)
	require.NoError(t, err)
	assert.Contains(t, res.Script, `result["SMA(20)"]`)

	snap.Timeframes = nil
	res, err = s.GenerateAnalysis(snap)
	assert.True(t, errors.Is(err, ErrNoScript))
	assert.Empty(t, res.Script)
}

func TestSession_GeneratePortfolioUsesSelectedSessions(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Sessions().Select("NY RTH"))

	res, err := s.GeneratePortfolio(backtestgen.Config{BaseName: "NQ", Timeframe: "5m"})
	require.NoError(t, err)
	assert.Contains(t, res.Script, `("NY RTH", "09:30", "16:00"),`)
	assert.Contains(t, res.Script, `DATA_DIR = "data/punkt4"`)
}

func TestSession_WriteScriptRecordsHistory(t *testing.T) {
	s := newSession(t)
	path := filepath.Join(t.TempDir(), "scripts", "analysis.py")

	require.NoError(t, s.WriteScript(path, "print('ok')\n", core.Generation{Kind: core.GenerationAnalysis, Hash: "abc"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('ok')\n", string(data))

	history, err := s.Storage().Generations(core.WithHash("abc"))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, path, history[0].Output)
}

func TestSession_Profiles(t *testing.T) {
	s := newSession(t)

	var loaded []string
	s.Bus().Subscribe(event.TopicLoaded, func(e event.Event) {
		loaded = append(loaded, e.Key)
	})

	require.NoError(t, s.Portfolio().ApplyPreset("ES"))
	require.NoError(t, s.Portfolio().Set(portfolio.Fees, 0.001))
	require.NoError(t, s.SaveProfile("es"))

	s.Portfolio().Reset()
	assert.Equal(t, 0.0005, s.Portfolio().Float(portfolio.Fees))

	require.NoError(t, s.LoadProfile("es"))
	assert.Equal(t, 0.001, s.Portfolio().Float(portfolio.Fees))
	assert.Equal(t, 12.5, s.Portfolio().Float(portfolio.TickValue))
	assert.Equal(t, []string{"es"}, loaded)

	assert.True(t, errors.Is(s.LoadProfile("missing"), core.ErrProfileNotFound))
}

func TestSession_WithoutStorage(t *testing.T) {
	s, err := NewSession(WithSettings(settings.Default()), WithoutStorage())
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.Storage())
	assert.Error(t, s.SaveProfile("x"))
}

func TestNewLoggerFromEnv(t *testing.T) {
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envLogJSON, "true")
	log, err := NewLoggerFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, log)

	t.Setenv(envLogColor, "maybe")
	_, err = NewLoggerFromEnv()
	assert.Error(t, err)
}
