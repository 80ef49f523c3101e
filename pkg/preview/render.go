package preview

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/samber/lo"
)

const histogramWidth = 40

// RenderLast writes the last n values of every column as a table.
func (r Report) RenderLast(w io.Writer, times []string, n int) {
	start := max(r.Rows-n, 0)

	header := []string{"#"}
	if len(times) == r.Rows {
		header[0] = "time"
	}
	for _, c := range r.Columns {
		header = append(header, c.Name)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for i := start; i < r.Rows; i++ {
		row := []string{strconv.Itoa(i)}
		if len(times) == r.Rows {
			row[0] = times[i]
		}
		for _, c := range r.Columns {
			row = append(row, formatFloat(c.Values[i]))
		}
		table.Append(row)
	}
	table.Render()
}

// RenderSummary writes the distribution of every column and the skipped
// specs.
func (r Report) RenderSummary(w io.Writer) {
	withCI := lo.SomeBy(r.Columns, func(c Column) bool {
		return c.Summary.MeanCI != nil
	})

	header := []string{"Column", "Count", "NaN", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	if withCI {
		header = append(header, "Mean CI")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, c := range r.Columns {
		s := c.Summary
		row := []string{
			c.Name, strconv.Itoa(s.Count), strconv.Itoa(s.NaN),
			formatFloat(s.Mean), formatFloat(s.StdDev), formatFloat(s.Min),
			formatFloat(s.Q25), formatFloat(s.Median), formatFloat(s.Q75), formatFloat(s.Max),
		}
		if withCI {
			ci := "-"
			if s.MeanCI != nil {
				ci = "[" + formatFloat(s.MeanCI.Lower) + ", " + formatFloat(s.MeanCI.Upper) + "]"
			}
			row = append(row, ci)
		}
		table.Append(row)
	}
	table.Render()

	for _, s := range r.Skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", s.Display, s.Reason)
	}
}

// RenderHistogram writes the distribution of one column as a text histogram.
func RenderHistogram(w io.Writer, c Column, bins int) error {
	finite := core.Finite(c.Values)
	if len(finite) == 0 {
		_, err := fmt.Fprintf(w, "%s: no finite values\n", c.Name)
		return err
	}
	if bins <= 0 {
		bins = 15
	}

	fmt.Fprintf(w, "%s\n", c.Name)
	hist := histogram.Hist(bins, finite)
	return histogram.Fprint(w, hist, histogram.Linear(histogramWidth))
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
