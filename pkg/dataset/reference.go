package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
)

// Reference is a resolved upstream artifact: where its per-timeframe files
// live and which price columns it is known to carry.
type Reference struct {
	Path       string // manifest or single data file
	Dir        string
	Base       string
	Timeframes []string
	Bundle     bool
	Manifest   *Manifest
	Columns    []string // empty when the format cannot be inspected without loading
}

// Files returns the candidate data files of a timeframe in load order.
func (r Reference) Files(timeframe string) []string {
	if !r.Bundle {
		return []string{r.Path}
	}
	return Candidates(r.Dir, r.Base, timeframe)
}

// Existing returns, per timeframe, the first candidate present on disk.
func (r Reference) Existing() map[string]string {
	found := map[string]string{}
	for _, tf := range r.Timeframes {
		for _, candidate := range r.Files(tf) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				found[tf] = candidate
				break
			}
		}
	}
	return found
}

// Resolve inspects a manifest or a single data file. CSV inputs have their
// header checked against the column contract.
func Resolve(path string) (Reference, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Reference{}, err
	}
	if _, err := os.Stat(abs); err != nil {
		return Reference{}, fmt.Errorf("dataset: %w", err)
	}

	if IsManifest(abs) {
		m, err := ReadManifest(abs)
		if err != nil {
			return Reference{}, err
		}
		return Reference{
			Path:       abs,
			Dir:        filepath.Dir(abs),
			Base:       m.FilenameBase,
			Timeframes: m.Timeframes,
			Bundle:     true,
			Manifest:   &m,
		}, nil
	}

	if !IsDataFile(abs) {
		return Reference{}, &core.DatasetFormatError{Path: abs, Reason: "unsupported file type"}
	}

	ref := Reference{
		Path:       abs,
		Dir:        filepath.Dir(abs),
		Base:       SingleBase(abs),
		Timeframes: []string{InferTimeframe(abs)},
	}

	if strings.HasSuffix(strings.ToLower(abs), ".csv") {
		header, err := ReadHeader(abs)
		if err != nil {
			return Reference{}, err
		}
		if err := ValidateColumns(abs, header); err != nil {
			return Reference{}, err
		}
		ref.Columns = PriceColumns(header)
	}
	return ref, nil
}

// Inspect resolves a reference and reports timeframes whose data files are
// missing as warnings.
func Inspect(path string) (Reference, core.Report) {
	var report core.Report
	ref, err := Resolve(path)
	if err != nil {
		report.AddError(err)
		return ref, report
	}

	existing := ref.Existing()
	for _, tf := range ref.Timeframes {
		if _, ok := existing[tf]; !ok {
			report.Warnf("timeframe %s: no data file found (tried %s)", tf, strings.Join(ref.Files(tf), ", "))
		}
	}
	if len(existing) == 0 {
		report.AddError(&core.DatasetFormatError{Path: ref.Path, Reason: "no timeframe has a data file"})
	}
	return ref, report
}
