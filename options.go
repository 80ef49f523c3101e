package vbtforge

import (
	"github.com/raykavin/vbtforge/pkg/adapter"
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/event"
	"github.com/raykavin/vbtforge/pkg/logger"
)

// Option is a functional option for configuring a Session
type Option func(*Session)

// WithLogger sets the session logger, by default DefaultLog is used
func WithLogger(log logger.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithSettings replaces the settings read from punkt3_config.json
func WithSettings(settings core.Settings) Option {
	return func(s *Session) {
		s.settings = settings
		s.settingsSet = true
	}
}

// WithSettingsFile reads the settings from path instead of the working directory
func WithSettingsFile(path string) Option {
	return func(s *Session) {
		s.settingsPath = path
	}
}

// WithStorage sets the profile store, by default the file named in the settings is opened
func WithStorage(storage core.ProfileStorage) Option {
	return func(s *Session) {
		s.storage = storage
	}
}

// WithoutStorage disables profiles and generation history
func WithoutStorage() Option {
	return func(s *Session) {
		s.noStorage = true
	}
}

// WithBus shares an event bus with other components
func WithBus(bus *event.Bus) Option {
	return func(s *Session) {
		s.bus = bus
	}
}

// WithCatalog replaces the indicator catalog and the adapter table compiled from it
func WithCatalog(cat *catalog.Catalog, table *adapter.Table) Option {
	return func(s *Session) {
		s.catalog = cat
		s.table = table
	}
}
