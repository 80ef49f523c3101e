package plot

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Bucket is the subplot row family an indicator is drawn in.
type Bucket int

const (
	BucketOscillator Bucket = iota
	BucketMain
	BucketVolume
)

func (b Bucket) String() string {
	switch b {
	case BucketMain:
		return "main"
	case BucketVolume:
		return "volume"
	}
	return "oscillator"
}

const (
	// MaxOscillatorRows caps the number of oscillator subplots; further
	// oscillators share the last row.
	MaxOscillatorRows = 4

	MainHeight   = 0.6
	VolumeHeight = 0.2
)

// overlayTokens mark price-overlay families drawn on the candlestick row.
var overlayTokens = []string{
	"SMA", "EMA", "WMA", "DEMA", "TEMA", "TRIMA", "KAMA", "MAMA", "T3", "HMA", "ZLMA", "ALMA",
	"VWMA", "FWMA", "SWMA", "SINWMA", "ZEMA", "LAGUERRE", "MIDPOINT", "MIDPRICE", "MA",
	"BBANDS", "BOLLINGER", "BB", "KC", "KELTNER", "DONCHIAN", "ACCBANDS",
	"VWAP", "PIVOT", "PIVOTINFO", "SUPERTREND", "SAR", "PSAR", "ICHIMOKU", "HILO",
	"TRENDLINE", "LINEARREG", "TSF", "SSLCHANNELS", "PMAX",
}

// volumeTokens mark volume families drawn on the volume row.
var volumeTokens = []string{
	"OBV", "AOBV", "MFI", "CMF", "AD", "ADOSC", "ACCDIST", "CHAIKIN", "EFI", "NVI", "PVI",
	"PVT", "PVOL", "PVR", "VFI", "VPCI", "KVO", "EOM", "FORCE",
}

// Classify assigns an indicator display name or column to a bucket.
func Classify(name string) Bucket {
	upper := strings.ToUpper(name)
	tokens := tokenize(upper)
	base := head(upper)

	switch {
	case matches(tokens, base, volumeTokens) || strings.Contains(upper, "VOLUME"):
		return BucketVolume
	case strings.Contains(upper, "MACD") || strings.Contains(upper, "ADX"):
		return BucketOscillator
	case matches(tokens, base, overlayTokens) || strings.Contains(upper, "MOVING_AVERAGE"):
		return BucketMain
	}
	return BucketOscillator
}

func matches(tokens []string, base string, family []string) bool {
	for _, f := range family {
		if base == f || lo.Contains(tokens, f) {
			return true
		}
	}
	// class names such as SMAIndicator or BollingerBands
	for _, f := range family {
		if len(f) >= 3 && strings.HasPrefix(base, f) {
			return true
		}
	}
	return false
}

// head returns the name before its parameter list and column suffix.
func head(upper string) string {
	if i := strings.IndexAny(upper, "(_"); i > 0 {
		return upper[:i]
	}
	return upper
}

func tokenize(upper string) []string {
	return strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ReferenceLines returns the horizontal guides an oscillator row carries.
func ReferenceLines(name string) []float64 {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "STOCH") || strings.Contains(upper, "KDJ"):
		return []float64{80, 20}
	case strings.Contains(upper, "RSI") || strings.Contains(upper, "RMI") || strings.Contains(upper, "MFI"):
		return []float64{70, 50, 30}
	case strings.Contains(upper, "MACD") || strings.Contains(upper, "PPO") || strings.Contains(upper, "PVO") ||
		strings.Contains(upper, "MOM") || strings.Contains(upper, "ROC") || strings.Contains(upper, "TRIX") ||
		strings.Contains(upper, "HIST"):
		return []float64{0}
	}
	return nil
}

// RowHeights returns subplot heights summing to one: the main row, the
// volume row when present, then up to MaxOscillatorRows equal rows sharing
// the remainder. Without oscillator rows the remainder goes to the main row.
func RowHeights(hasVolume bool, oscillators int) []float64 {
	rows := min(max(oscillators, 0), MaxOscillatorRows)

	mainRow := MainHeight
	remainder := 1 - MainHeight
	var volume []float64
	if hasVolume {
		volume = []float64{VolumeHeight}
		remainder -= VolumeHeight
	}

	if rows == 0 {
		return append([]float64{mainRow + remainder}, volume...)
	}

	heights := append([]float64{mainRow}, volume...)
	for i := 0; i < rows; i++ {
		heights = append(heights, remainder/float64(rows))
	}
	return heights
}

// Group is one indicator and the output columns it produces.
type Group struct {
	Display string
	Columns []string
}

// Layout is the subplot arrangement of one figure.
type Layout struct {
	Main        []string
	Volume      []string
	Oscillators [][]string
	References  [][]float64 // per oscillator row
	Heights     []float64
}

// Rows returns the number of subplot rows.
func (l Layout) Rows() int {
	return len(l.Heights)
}

// Arrange assigns indicator groups to rows. Each oscillator indicator gets
// its own row until MaxOscillatorRows is reached; the rest share the last.
// Volume-family indicators fall back to oscillator rows when the dataset
// carries no volume.
func Arrange(groups []Group, hasVolume bool) Layout {
	var l Layout
	for _, g := range groups {
		switch bucket := Classify(g.Display); {
		case bucket == BucketMain:
			l.Main = append(l.Main, g.Columns...)
		case bucket == BucketVolume && hasVolume:
			l.Volume = append(l.Volume, g.Columns...)
		default:
			if len(l.Oscillators) < MaxOscillatorRows {
				l.Oscillators = append(l.Oscillators, append([]string(nil), g.Columns...))
				l.References = append(l.References, ReferenceLines(g.Display))
				continue
			}
			last := len(l.Oscillators) - 1
			l.Oscillators[last] = append(l.Oscillators[last], g.Columns...)
		}
	}
	l.Heights = RowHeights(hasVolume, len(l.Oscillators))
	return l
}
