package dataset

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format is an on-disk encoding of one timeframe's frame.
type Format struct {
	Name   string
	Suffix string // appended to "{base}_{timeframe}"
}

// Formats in load preference order.
var Formats = []Format{
	{Name: "pickle.blosc", Suffix: "_VBT.pickle.blosc"},
	{Name: "pickle", Suffix: "_VBT.pickle"},
	{Name: "h5", Suffix: ".h5"},
	{Name: "raw-pickle", Suffix: ".pickle"},
	{Name: "csv", Suffix: ".csv"},
}

// singleExtensions are the extensions accepted for single-timeframe files,
// longest first.
var singleExtensions = []string{".pickle.blosc", ".pickle", ".h5", ".csv"}

// DefaultTimeframe is assumed when a file name carries no timeframe.
const DefaultTimeframe = "1m"

// Candidates returns the sibling data files of one bundle timeframe in
// preference order.
func Candidates(dir, base, timeframe string) []string {
	out := make([]string, len(Formats))
	for i, f := range Formats {
		out[i] = filepath.Join(dir, base+"_"+timeframe+f.Suffix)
	}
	return out
}

// FormatOf returns the format of a data file path.
func FormatOf(path string) (Format, bool) {
	name := filepath.Base(path)
	for _, f := range Formats {
		if strings.HasSuffix(name, f.Suffix) {
			return f, true
		}
	}
	return Format{}, false
}

// IsDataFile reports whether a path has a supported single-file extension.
func IsDataFile(path string) bool {
	_, ok := splitExtension(filepath.Base(path))
	return ok
}

func splitExtension(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, ext := range singleExtensions {
		if strings.HasSuffix(lower, ext) {
			return name[:len(name)-len(ext)], true
		}
	}
	return name, false
}

var timeframePattern = regexp.MustCompile(`(?i)(?:^|[_\-.])(\d+)(min|m|hour|h|day|d|week|w)(?:[_\-.]|$)`)

var unitCodes = map[string]string{
	"min": "m", "m": "m",
	"hour": "h", "h": "h",
	"day": "d", "d": "d",
	"week": "w", "w": "w",
}

// InferTimeframe extracts the timeframe code from a file name ("_5m",
// "15min", "1hour", "1day"...), returning DefaultTimeframe when none is found.
func InferTimeframe(path string) string {
	stem, _ := splitExtension(filepath.Base(path))
	stem = strings.TrimSuffix(stem, "_VBT")

	matches := timeframePattern.FindAllStringSubmatch(stem, -1)
	if len(matches) == 0 {
		return DefaultTimeframe
	}
	last := matches[len(matches)-1]
	return last[1] + unitCodes[strings.ToLower(last[2])]
}

// SingleBase derives a base name for a single-timeframe file by dropping
// its extension, the _VBT marker and a trailing timeframe suffix.
func SingleBase(path string) string {
	stem, _ := splitExtension(filepath.Base(path))
	stem = strings.TrimSuffix(stem, "_VBT")

	loc := timeframePattern.FindAllStringIndex(stem, -1)
	if len(loc) > 0 {
		last := loc[len(loc)-1]
		if last[1] == len(stem) && last[0] > 0 {
			return stem[:last[0]]
		}
	}
	return stem
}
