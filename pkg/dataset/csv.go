package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

// RequiredColumns must be present, spelled exactly, in every dataset.
var RequiredColumns = []string{"open", "high", "low", "close"}

// VolumeColumn is optional; without it volume indicators are skipped.
const VolumeColumn = "volume"

var timeColumns = []string{"time", "timestamp", "date", "datetime", "Date", "Datetime", "Timestamp"}

// ReadHeader returns the first CSV record.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if errors.Is(err, io.EOF) {
		return nil, &core.DatasetFormatError{Path: path, Reason: "file is empty"}
	}
	if err != nil {
		return nil, &core.DatasetFormatError{Path: path, Reason: err.Error()}
	}
	return header, nil
}

// ValidateColumns enforces the case-sensitive open/high/low/close contract.
func ValidateColumns(path string, columns []string) error {
	missing := lo.Without(RequiredColumns, columns...)
	if len(missing) > 0 {
		return &core.DatasetFormatError{
			Path:   path,
			Reason: "missing required columns: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

// PriceColumns returns the OHLCV columns present, in OHLCV order.
func PriceColumns(columns []string) []string {
	ordered := append(append([]string{}, RequiredColumns...), VolumeColumn)
	return lo.Filter(ordered, func(c string, _ int) bool {
		return lo.Contains(columns, c)
	})
}

// LoadCSV reads a CSV dataset into a frame. Rows are kept in file order.
func LoadCSV(path string) (*core.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &core.DatasetFormatError{Path: path, Reason: err.Error()}
	}
	if len(lines) == 0 {
		return nil, &core.DatasetFormatError{Path: path, Reason: "file is empty"}
	}

	header := lines[0]
	if err := ValidateColumns(path, header); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	timeIndex, hasTime := lo.Find(timeColumns, func(c string) bool {
		_, ok := index[c]
		return ok
	})
	_, withVolume := index[VolumeColumn]

	frame := core.NewFrame(len(lines)-1, withVolume)
	for row, line := range lines[1:] {
		candle, err := parseLine(line, index, withVolume)
		if err != nil {
			return nil, &core.DatasetFormatError{Path: path, Reason: fmt.Sprintf("row %d: %v", row+2, err)}
		}
		if hasTime {
			if candle.Time, err = parseTime(line[index[timeIndex]]); err != nil {
				return nil, &core.DatasetFormatError{Path: path, Reason: fmt.Sprintf("row %d: %v", row+2, err)}
			}
		}
		frame.Append(candle)
	}
	return frame, nil
}

func parseLine(line []string, index map[string]int, withVolume bool) (core.Candle, error) {
	var (
		c   core.Candle
		err error
	)
	if c.Open, err = strconv.ParseFloat(line[index["open"]], 64); err != nil {
		return c, err
	}
	if c.High, err = strconv.ParseFloat(line[index["high"]], 64); err != nil {
		return c, err
	}
	if c.Low, err = strconv.ParseFloat(line[index["low"]], 64); err != nil {
		return c, err
	}
	if c.Close, err = strconv.ParseFloat(line[index["close"]], 64); err != nil {
		return c, err
	}
	if withVolume {
		if c.Volume, err = strconv.ParseFloat(line[index[VolumeColumn]], 64); err != nil {
			return c, err
		}
	}
	return c, nil
}

// parseTime accepts unix seconds, unix milliseconds or an ISO-8601 string.
func parseTime(s string) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	return ParseTimestamp(s)
}
