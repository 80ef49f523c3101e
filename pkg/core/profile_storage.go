package core

import (
	"slices"
	"time"
)

// Profile is a named portfolio parameter set.
type Profile struct {
	Name       string         `json:"name"`
	Instrument string         `json:"instrument,omitempty"`
	Values     map[string]any `json:"values"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// GenerationKind names the emitter that produced a program.
type GenerationKind string

const (
	GenerationAnalysis  GenerationKind = "analysis"
	GenerationPortfolio GenerationKind = "portfolio"
)

// Generation records one emitted program.
type Generation struct {
	ID        int64          `json:"id"`
	Kind      GenerationKind `json:"kind"`
	Hash      string         `json:"hash"`
	Output    string         `json:"output"`
	Warnings  int            `json:"warnings"`
	CreatedAt time.Time      `json:"created_at"`
}

// GenerationFilter selects history entries.
type GenerationFilter func(Generation) bool

// ProfileStorage persists parameter profiles and the generation history.
type ProfileStorage interface {
	// SaveProfile creates or replaces a profile by name
	SaveProfile(profile *Profile) error

	// Profile retrieves a profile by name
	Profile(name string) (*Profile, error)

	// Profiles lists profiles, most recently updated last
	Profiles() ([]*Profile, error)

	// DeleteProfile removes a profile
	DeleteProfile(name string) error

	// RecordGeneration appends a history entry and assigns its ID
	RecordGeneration(g *Generation) error

	// Generations retrieves history entries based on provided filters
	Generations(filters ...GenerationFilter) ([]*Generation, error)
}

func WithKind(kinds ...GenerationKind) GenerationFilter {
	return func(g Generation) bool {
		return slices.Contains(kinds, g.Kind)
	}
}

func WithHash(hash string) GenerationFilter {
	return func(g Generation) bool {
		return g.Hash == hash
	}
}

func WithCreatedAfter(t time.Time) GenerationFilter {
	return func(g Generation) bool {
		return g.CreatedAt.After(t)
	}
}
