package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// New returns a snapshot populated with defaults. Decoding overlays a file
// onto it, so defaults apply only to keys the file leaves out.
func New() *Snapshot {
	s := &Snapshot{}
	if err := defaults.Set(s); err != nil {
		panic(fmt.Sprintf("snapshot: invalid default tags: %v", err))
	}
	return s
}

// Load reads a YAML or JSON snapshot file, choosing the decoder by extension.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	s, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes snapshot content as JSON or YAML.
func Parse(data []byte, isJSON bool) (*Snapshot, error) {
	s := New()
	if isJSON {
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(s); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	s.Normalize()
	return s, nil
}

// WriteFile writes the snapshot as YAML, or JSON when the path ends in .json.
func (s *Snapshot) WriteFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Hash identifies the snapshot content; equal snapshots hash equally.
func (s *Snapshot) Hash() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
