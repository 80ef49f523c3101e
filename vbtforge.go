// Package vbtforge configures indicator analyses and portfolio backtests and
// emits them as self-contained vectorbtpro programs.
package vbtforge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/backtestgen"
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/raykavin/vbtforge/pkg/script"
	"github.com/raykavin/vbtforge/pkg/settings"
	"github.com/raykavin/vbtforge/pkg/snapshot"
	"github.com/raykavin/vbtforge/pkg/storage"
)

// DefaultLog is the default logger instance
var DefaultLog logger.Logger

// ErrNoScript is returned when a snapshot is rejected before emission.
var ErrNoScript = errors.New("no script emitted")

// Session owns the state one configurator run works on.
type Session struct {
	log          logger.Logger
	settings     core.Settings
	settingsSet  bool
	settingsPath string
	bus          *event.Bus
	catalog      *catalog.Catalog
	table        *adapter.Table
	emitter      *script.Emitter
	model        *portfolio.Model
	sessions     portfolio.Sessions
	storage      core.ProfileStorage
	noStorage    bool
	ownsStorage  bool
}

// NewSession creates a session with the provided options
func NewSession(options ...Option) (*Session, error) {
	s := &Session{}
	for _, option := range options {
		option(s)
	}

	if s.log == nil {
		s.log = logger.OrNop(DefaultLog)
	}
	if s.bus == nil {
		s.bus = event.NewBus()
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.table == nil {
		s.table = adapter.Default()
	}

	if err := s.initializeSettings(); err != nil {
		return nil, err
	}
	if err := s.initializeStorage(); err != nil {
		return nil, err
	}

	s.emitter = script.New(
		script.WithCatalog(s.catalog),
		script.WithTable(s.table),
		script.WithLogger(s.log),
	)
	s.model = portfolio.New(portfolio.WithBus(s.bus), portfolio.WithLogger(s.log))

	return s, nil
}

// initializeSettings reads punkt3_config.json unless settings were given
func (s *Session) initializeSettings() error {
	if s.settingsSet {
		return nil
	}
	loaded, err := settings.Load(s.settingsPath)
	if err != nil {
		return err
	}
	s.settings = loaded
	return nil
}

// initializeStorage opens the profile store named in the settings
func (s *Session) initializeStorage() error {
	if s.storage != nil || s.noStorage {
		return nil
	}

	path := s.settings.Paths.ProfilesDB
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile store directory: %w", err)
		}
	}

	store, err := storage.FromFile(path, storage.WithLogger(s.log))
	if err != nil {
		return err
	}
	s.storage = store
	s.ownsStorage = true
	return nil
}

// Logger returns the session logger
func (s *Session) Logger() logger.Logger { return s.log }

// Settings returns the effective settings
func (s *Session) Settings() core.Settings { return s.settings }

// Bus returns the event bus portfolio changes are published on
func (s *Session) Bus() *event.Bus { return s.bus }

// Catalog returns the indicator catalog
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Table returns the adapter table
func (s *Session) Table() *adapter.Table { return s.table }

// Portfolio returns the portfolio parameter model
func (s *Session) Portfolio() *portfolio.Model { return s.model }

// Sessions returns the trading session selection
func (s *Session) Sessions() *portfolio.Sessions { return &s.sessions }

// Storage returns the profile store, nil when disabled
func (s *Session) Storage() core.ProfileStorage { return s.storage }

// NewSnapshot returns an empty snapshot seeded with the settings defaults
func (s *Session) NewSnapshot() (*snapshot.Snapshot, error) {
	snap := snapshot.New()
	if err := settings.Apply(s.settings, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// GenerateAnalysis emits the analysis program for a snapshot. The result
// carries the validation report even when no program could be emitted.
func (s *Session) GenerateAnalysis(snap *snapshot.Snapshot) (script.Result, error) {
	res := s.emitter.Generate(snap)
	for _, warning := range res.Report.Warnings {
		s.log.Warn(warning)
	}
	if res.Script == "" {
		return res, fmt.Errorf("%w: %w", ErrNoScript, res.Report.Err())
	}
	for _, err := range res.Report.Errors {
		s.log.WithError(err).Warn("indicator dropped")
	}
	return res, nil
}

// GeneratePortfolio emits the backtest program for the current portfolio
// state. Without explicit windows the selected sessions are used.
func (s *Session) GeneratePortfolio(cfg backtestgen.Config) (backtestgen.Result, error) {
	if cfg.Sessions == nil {
		windows, err := s.sessions.ComputeEffectiveWindows()
		if err != nil {
			return backtestgen.Result{}, err
		}
		cfg.Sessions = windows
	}
	if cfg.DataDir == "" {
		cfg.DataDir = s.settings.Paths.OutputDir
	}

	res, err := backtestgen.Generate(s.model, cfg)
	if err != nil {
		return res, err
	}
	for _, warning := range res.Validation.Warnings {
		s.log.Warn(warning)
	}
	return res, nil
}

// WriteScript writes an emitted program to path and records it in the
// generation history.
func (s *Session) WriteScript(path, content string, g core.Generation) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create script directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	s.log.WithFields(map[string]any{"path": path, "kind": g.Kind}).Info("script written")
	if s.storage == nil {
		return nil
	}
	g.Output = path
	return s.storage.RecordGeneration(&g)
}

// SaveProfile stores the current portfolio state under name
func (s *Session) SaveProfile(name string) error {
	if s.storage == nil {
		return errors.New("profile storage is disabled")
	}

	data, err := json.Marshal(s.model)
	if err != nil {
		return err
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	return s.storage.SaveProfile(&core.Profile{
		Name:       name,
		Instrument: s.model.Instrument(),
		Values:     values,
	})
}

// LoadProfile replaces the portfolio state with a stored profile
func (s *Session) LoadProfile(name string) error {
	if s.storage == nil {
		return errors.New("profile storage is disabled")
	}

	profile, err := s.storage.Profile(name)
	if err != nil {
		return err
	}
	return s.model.Restore(profile.Values, name)
}

// Close releases the profile store when the session opened it
func (s *Session) Close() error {
	if closer, ok := s.storage.(interface{ Close() error }); ok && s.ownsStorage {
		return closer.Close()
	}
	return nil
}
