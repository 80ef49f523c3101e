package portfolio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
)

const (
	// MaxCustomWindows caps the user-defined session windows.
	MaxCustomWindows = 3

	// ReferenceTimezone is the zone every session window is expressed in.
	ReferenceTimezone = "America/New_York"

	minutesPerDay = 24 * 60
)

// Window is a wall-clock trading session in the reference timezone. End
// before Start means the window crosses midnight. AllDay windows come out of
// MergeOverlapping only; their Start and End are both 00:00.
type Window struct {
	Name   string `json:"name"`
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
	AllDay bool   `json:"all_day,omitempty"`
}

var libraryWindows = []Window{
	{Name: "Sydney", Start: "17:00", End: "02:00"},
	{Name: "Tokyo", Start: "19:00", End: "04:00"},
	{Name: "London", Start: "03:00", End: "11:30"},
	{Name: "New York", Start: "08:00", End: "17:00"},
	{Name: "NY Open", Start: "09:30", End: "11:00"},
	{Name: "NY RTH", Start: "09:30", End: "16:00"},
	{Name: "London-NY Overlap", Start: "08:00", End: "11:30"},
}

// LibraryWindows returns the predefined session windows.
func LibraryWindows() []Window {
	return append([]Window(nil), libraryWindows...)
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a HH:MM time", core.ErrInvalidValue, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate checks that both sides are HH:MM times and differ.
func (w Window) Validate() error {
	if w.AllDay {
		return nil
	}
	start, err := parseClock(w.Start)
	if err != nil {
		return fmt.Errorf("session %s: %w", w.Name, err)
	}
	end, err := parseClock(w.End)
	if err != nil {
		return fmt.Errorf("session %s: %w", w.Name, err)
	}
	if start == end {
		return fmt.Errorf("%w: session %s starts and ends at %s", core.ErrInvalidValue, w.Name, w.Start)
	}
	return nil
}

// span returns start and end minutes, with end past 24:00 for a window
// that crosses midnight. The window must be valid.
func (w Window) span() (int, int) {
	if w.AllDay {
		return 0, minutesPerDay
	}
	start, _ := parseClock(w.Start)
	end, _ := parseClock(w.End)
	if end <= start {
		end += minutesPerDay
	}
	return start, end
}

// CrossesMidnight reports whether the window ends on the next day.
func (w Window) CrossesMidnight() bool {
	_, end := w.span()
	return end > minutesPerDay
}

// Contains reports whether the wall-clock time of t, in the reference
// timezone, lies in [Start, End).
func (w Window) Contains(t time.Time) bool {
	if loc, err := time.LoadLocation(ReferenceTimezone); err == nil {
		t = t.In(loc)
	}
	minute := t.Hour()*60 + t.Minute()
	start, end := w.span()
	if minute < start {
		minute += minutesPerDay
	}
	return minute >= start && minute < end
}

func (w Window) String() string {
	if w.AllDay {
		return w.Name + " all day"
	}
	return fmt.Sprintf("%s %s-%s", w.Name, w.Start, w.End)
}

// ParseWindow reads "[name=]HH:MM-HH:MM".
func ParseWindow(s string) (Window, error) {
	var w Window
	span := strings.TrimSpace(s)
	if name, rest, ok := strings.Cut(span, "="); ok {
		w.Name, span = strings.TrimSpace(name), strings.TrimSpace(rest)
	}
	start, end, ok := strings.Cut(span, "-")
	if !ok {
		return Window{}, fmt.Errorf("%w: session %q is not HH:MM-HH:MM", core.ErrInvalidValue, s)
	}
	w.Start, w.End = strings.TrimSpace(start), strings.TrimSpace(end)
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Sessions is the selection of library windows plus custom windows.
type Sessions struct {
	Selected []string `json:"selected"`
	Custom   []Window `json:"custom,omitempty"`
}

// Select adds a library window by name.
func (s *Sessions) Select(name string) error {
	for _, w := range libraryWindows {
		if strings.EqualFold(w.Name, name) {
			for _, selected := range s.Selected {
				if selected == w.Name {
					return nil
				}
			}
			s.Selected = append(s.Selected, w.Name)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown session %q", core.ErrInvalidValue, name)
}

// AddCustom adds a user-defined window.
func (s *Sessions) AddCustom(w Window) error {
	if len(s.Custom) >= MaxCustomWindows {
		return fmt.Errorf("%w: at most %d custom sessions", core.ErrInvalidValue, MaxCustomWindows)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if w.Name == "" {
		w.Name = fmt.Sprintf("Custom %d", len(s.Custom)+1)
	}
	s.Custom = append(s.Custom, w)
	return nil
}

// ComputeEffectiveWindows returns the selected windows sorted by start
// time. Overlapping windows are kept separate; see MergeOverlapping.
func (s Sessions) ComputeEffectiveWindows() ([]Window, error) {
	var out []Window
	for _, name := range s.Selected {
		found := false
		for _, w := range libraryWindows {
			if w.Name == name {
				out = append(out, w)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: unknown session %q", core.ErrInvalidValue, name)
		}
	}

	if len(s.Custom) > MaxCustomWindows {
		return nil, fmt.Errorf("%w: at most %d custom sessions", core.ErrInvalidValue, MaxCustomWindows)
	}
	for _, w := range s.Custom {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		out = append(out, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, ei := out[i].span()
		sj, ej := out[j].span()
		if si != sj {
			return si < sj
		}
		return ei < ej
	})
	return out, nil
}

// MergeOverlapping returns the union of windows as start-sorted,
// non-overlapping windows. Windows touching end to start are merged.
func MergeOverlapping(windows []Window) []Window {
	type span struct {
		start, end int
		names      []string
	}

	spans := make([]span, 0, len(windows))
	for _, w := range windows {
		if w.Validate() != nil {
			continue
		}
		start, end := w.span()
		spans = append(spans, span{start: start, end: end, names: []string{w.Name}})
	}
	if len(spans) == 0 {
		return nil
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	merged := []span{spans[0]}
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.start <= last.end {
			last.end = max(last.end, sp.end)
			last.names = append(last.names, sp.names...)
			continue
		}
		merged = append(merged, sp)
	}

	// a window running past midnight may reach the first ones of the next day
	for len(merged) > 1 {
		last := &merged[len(merged)-1]
		first := merged[0]
		if last.end < first.start+minutesPerDay {
			break
		}
		last.end = max(last.end, first.end+minutesPerDay)
		last.names = append(last.names, first.names...)
		merged = merged[1:]
	}

	out := make([]Window, 0, len(merged))
	for _, sp := range merged {
		w := Window{Name: strings.Join(sp.names, " + "), Start: clock(sp.start), End: clock(sp.end)}
		if sp.end-sp.start >= minutesPerDay {
			w.Start, w.End, w.AllDay = clock(0), clock(0), true
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

func clock(minutes int) string {
	minutes %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
