package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/logger"
	"github.com/tidwall/buntdb"
)

const (
	profilePrefix    = "profile:"
	generationPrefix = "generation:"
)

// BuntStorage implements core.ProfileStorage using BuntDB
type BuntStorage struct {
	lastID int64
	db     *buntdb.DB
	log    logger.Logger
	now    func() time.Time
}

// Option configures a BuntStorage
type Option func(*BuntStorage)

// WithLogger reports skipped records through log
func WithLogger(log logger.Logger) Option {
	return func(b *BuntStorage) {
		b.log = log
	}
}

// WithClock replaces the timestamp source
func WithClock(now func() time.Time) Option {
	return func(b *BuntStorage) {
		b.now = now
	}
}

// FromMemory creates an in-memory storage
func FromMemory(opts ...Option) (*BuntStorage, error) {
	return NewBuntStorage(":memory:", opts...)
}

// FromFile creates a file-based storage
func FromFile(file string, opts ...Option) (*BuntStorage, error) {
	return NewBuntStorage(file, opts...)
}

// NewBuntStorage opens the database and prepares its indexes
func NewBuntStorage(sourceFile string, opts ...Option) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	b := &BuntStorage{db: db, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	b.log = logger.OrNop(b.log)

	indexes := []struct {
		name, pattern, field string
	}{
		{"profile_index", profilePrefix + "*", "updated_at"},
		{"generation_index", generationPrefix + "*", "created_at"},
	}
	for _, idx := range indexes {
		if err := db.CreateIndex(idx.name, idx.pattern, buntdb.IndexJSON(idx.field)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	if err := b.restoreLastID(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// restoreLastID continues the generation sequence of an existing file
func (b *BuntStorage) restoreLastID() error {
	return b.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(generationPrefix+"*", func(key, _ string) bool {
			id, err := strconv.ParseInt(strings.TrimPrefix(key, generationPrefix), 10, 64)
			if err == nil && id > b.lastID {
				b.lastID = id
			}
			return true
		})
	})
}

// getID generates a unique ID for history entries
func (b *BuntStorage) getID() int64 {
	return atomic.AddInt64(&b.lastID, 1)
}

// SaveProfile stores a profile, replacing one with the same name
func (b *BuntStorage) SaveProfile(profile *core.Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: profile name is empty", core.ErrInvalidValue)
	}

	return b.db.Update(func(tx *buntdb.Tx) error {
		profile.UpdatedAt = b.now().UTC()
		content, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}

		_, _, err = tx.Set(profilePrefix+profile.Name, string(content), nil)
		if err != nil {
			return fmt.Errorf("failed to store profile: %w", err)
		}
		return nil
	})
}

// Profile retrieves a profile by name
func (b *BuntStorage) Profile(name string) (*core.Profile, error) {
	var profile core.Profile
	err := b.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(profilePrefix + name)
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", core.ErrProfileNotFound, name)
		}
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &profile)
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Profiles lists every stored profile ordered by update time
func (b *BuntStorage) Profiles() ([]*core.Profile, error) {
	profiles := make([]*core.Profile, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("profile_index", func(key, value string) bool {
			var profile core.Profile
			if err := json.Unmarshal([]byte(value), &profile); err != nil {
				b.skip(key, err)
				return true
			}
			profiles = append(profiles, &profile)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over profiles: %w", err)
	}
	return profiles, nil
}

// DeleteProfile removes a profile by name
func (b *BuntStorage) DeleteProfile(name string) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(profilePrefix + name)
		if errors.Is(err, buntdb.ErrNotFound) {
			return fmt.Errorf("%w: %s", core.ErrProfileNotFound, name)
		}
		return err
	})
}

// RecordGeneration appends a history entry
func (b *BuntStorage) RecordGeneration(g *core.Generation) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		g.ID = b.getID()
		if g.CreatedAt.IsZero() {
			g.CreatedAt = b.now().UTC()
		}
		content, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("failed to marshal generation: %w", err)
		}

		_, _, err = tx.Set(generationPrefix+strconv.FormatInt(g.ID, 10), string(content), nil)
		if err != nil {
			return fmt.Errorf("failed to store generation: %w", err)
		}
		return nil
	})
}

// Generations retrieves history entries, oldest first, matching every filter
func (b *BuntStorage) Generations(filters ...core.GenerationFilter) ([]*core.Generation, error) {
	generations := make([]*core.Generation, 0)

	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("generation_index", func(key, value string) bool {
			var g core.Generation
			if err := json.Unmarshal([]byte(value), &g); err != nil {
				b.skip(key, err)
				return true
			}

			for _, filter := range filters {
				if !filter(g) {
					return true
				}
			}

			generations = append(generations, &g)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over generations: %w", err)
	}
	return generations, nil
}

func (b *BuntStorage) skip(key string, err error) {
	b.log.WithError(err).WithField("key", key).Warn("skipping unreadable record")
}

// Close closes the database connection
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

var _ core.ProfileStorage = (*BuntStorage)(nil)
