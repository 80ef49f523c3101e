package plot

import (
	"fmt"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

const day = 24 * time.Hour

// AllData selects the whole series.
const AllData = "all data"

// Period is a human chart window.
type Period struct {
	Label    string
	Duration time.Duration // zero for AllData
}

var periods = []Period{
	{Label: "1 day", Duration: day},
	{Label: "3 days", Duration: 3 * day},
	{Label: "1 week", Duration: 7 * day},
	{Label: "2 weeks", Duration: 14 * day},
	{Label: "1 month", Duration: 30 * day},
	{Label: "3 months", Duration: 90 * day},
	{Label: "6 months", Duration: 180 * day},
	{Label: "1 year", Duration: 365 * day},
	{Label: AllData},
}

// Periods returns the selectable windows, shortest first.
func Periods() []Period {
	out := make([]Period, len(periods))
	copy(out, periods)
	return out
}

// LookupPeriod finds a period by label, case-insensitively.
func LookupPeriod(label string) (Period, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, p := range periods {
		if p.Label == label {
			return p, nil
		}
	}
	return Period{}, fmt.Errorf("plot: unknown period %q", label)
}

var timeframeUnits = strings.NewReplacer("min", "m", "hour", "h", "day", "d", "week", "w")

// TimeframeDuration converts a timeframe code such as "5m", "1h", "15min"
// or "1day" into a duration.
func TimeframeDuration(timeframe string) (time.Duration, error) {
	code := timeframeUnits.Replace(strings.ToLower(strings.TrimSpace(timeframe)))
	d, err := str2duration.ParseDuration(code)
	if err != nil {
		return 0, fmt.Errorf("plot: invalid timeframe %q: %w", timeframe, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("plot: invalid timeframe %q", timeframe)
	}
	return d, nil
}

// PeriodCandles returns how many candles of the timeframe cover the period,
// or zero for AllData. A 5m timeframe yields 288 candles per day.
func PeriodCandles(label, timeframe string) (int, error) {
	p, err := LookupPeriod(label)
	if err != nil {
		return 0, err
	}
	if p.Duration == 0 {
		return 0, nil
	}

	tf, err := TimeframeDuration(timeframe)
	if err != nil {
		return 0, err
	}
	return max(int(p.Duration/tf), 1), nil
}

// Window clamps the candle count of a period to the rows available. The
// whole series is used when the period exceeds it.
func Window(label, timeframe string, available int) (int, error) {
	n, err := PeriodCandles(label, timeframe)
	if err != nil {
		return 0, err
	}
	if n == 0 || n > available {
		return available, nil
	}
	return n, nil
}

// Segment is the half-open row range [Start, End) of one figure.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of rows in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Segments splits rows into ceil(rows/perChart) contiguous, non-overlapping
// slices; the last may be shorter. A non-positive perChart, or rows that fit
// in one chart, yields a single segment.
func Segments(rows, perChart int) []Segment {
	if rows < 0 {
		rows = 0
	}
	if perChart <= 0 || rows <= perChart {
		return []Segment{{Start: 0, End: rows}}
	}

	out := make([]Segment, 0, (rows+perChart-1)/perChart)
	for start := 0; start < rows; start += perChart {
		out = append(out, Segment{Start: start, End: min(start+perChart, rows)})
	}
	return out
}
