package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
)

// Manifest suffixes written by the upstream stage.
const (
	ManifestSuffix      = "_metadata.json"
	UltraManifestSuffix = "_ULTRA_PERFORMANCE_metadata.json"

	// IndicatorManifestSuffix marks manifests written by generated scripts.
	IndicatorManifestSuffix = "_indicators_metadata.json"
)

// Manifest is the JSON description of a multi-timeframe bundle.
type Manifest struct {
	Timeframes   []string  `json:"timeframes"`
	CreatedAt    time.Time `json:"-"`
	RawCreatedAt string    `json:"created_at"`
	TotalRecords int64     `json:"total_records,omitempty"`
	OriginalFile string    `json:"original_file,omitempty"`
	FilenameBase string    `json:"filename_base,omitempty"`
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the ISO-8601 forms Python's isoformat produces.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// IsManifest reports whether a file name denotes an upstream bundle manifest.
func IsManifest(name string) bool {
	name = filepath.Base(name)
	return strings.HasSuffix(name, ManifestSuffix) && !strings.HasSuffix(name, IndicatorManifestSuffix)
}

// ManifestBase derives the bundle base name from the manifest file name.
func ManifestBase(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(name, UltraManifestSuffix) {
		return strings.TrimSuffix(name, UltraManifestSuffix)
	}
	return strings.TrimSuffix(name, ManifestSuffix)
}

// ReadManifest loads and validates a manifest. Missing required keys, an
// empty timeframe list or a malformed timestamp yield a DatasetFormatError.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return ParseManifest(path, data)
}

// ParseManifest validates manifest content read from path.
func ParseManifest(path string, data []byte) (Manifest, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return Manifest{}, &core.DatasetFormatError{Path: path, Reason: "manifest is not a JSON object: " + err.Error()}
	}
	for _, required := range []string{"timeframes", "created_at"} {
		if _, ok := keys[required]; !ok {
			return Manifest{}, &core.DatasetFormatError{Path: path, Reason: "manifest is missing key " + required}
		}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, &core.DatasetFormatError{Path: path, Reason: "malformed manifest: " + err.Error()}
	}
	if len(m.Timeframes) == 0 {
		return Manifest{}, &core.DatasetFormatError{Path: path, Reason: "manifest lists no timeframes"}
	}

	created, err := ParseTimestamp(m.RawCreatedAt)
	if err != nil {
		return Manifest{}, &core.DatasetFormatError{Path: path, Reason: err.Error()}
	}
	m.CreatedAt = created

	if m.FilenameBase == "" {
		m.FilenameBase = ManifestBase(path)
	}
	return m, nil
}
