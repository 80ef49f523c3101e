package main

import (
	"fmt"
	"os"
	"time"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/dataset"
	"github.com/raykavin/vbtforge/pkg/preview"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Preview command flags
var (
	previewFile       string
	previewSpecs      []string
	previewTail       int
	previewHistograms []string
	previewBins       int
	previewCISamples  int
)

func buildPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Compute reference indicator values over a CSV dataset",
		Example: "vbtforge preview -f NQ_5m.csv -i native:SMA:window=20 -i talib:RSI:timeperiod=14 " +
			"--histogram 'RSI(14)'",
		RunE: runPreview,
	}

	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "CSV data file with time/open/high/low/close[/volume]")
	previewCmd.Flags().StringArrayVarP(&previewSpecs, "indicator", "i", nil, "Indicator as library:name[:key=value,...] (repeatable)")
	previewCmd.Flags().IntVar(&previewTail, "tail", 10, "Number of trailing rows to print")
	previewCmd.Flags().StringArrayVar(&previewHistograms, "histogram", nil, "Column to draw a histogram of (repeatable)")
	previewCmd.Flags().IntVar(&previewBins, "bins", 15, "Histogram bins")
	previewCmd.Flags().IntVar(&previewCISamples, "ci", 0, "Bootstrap samples for a 95% interval of each mean (0 disables)")
	previewCmd.MarkFlagRequired("file")
	previewCmd.MarkFlagRequired("indicator")

	return previewCmd
}

func runPreview(*cobra.Command, []string) error {
	specs := make([]core.IndicatorSpec, 0, len(previewSpecs))
	for _, raw := range previewSpecs {
		spec, err := core.ParseIndicatorSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	frame, err := dataset.LoadCSV(previewFile)
	if err != nil {
		return err
	}

	p := preview.New(
		preview.WithTable(session.Table()),
		preview.WithLogger(session.Logger()),
		preview.WithProgress(os.Stderr),
		preview.WithMeanInterval(previewCISamples, 0.95),
	)
	report, err := p.Run(frame, specs)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)

	times := lo.Map(frame.Time, func(t time.Time, _ int) string {
		return t.Format("2006-01-02 15:04")
	})
	report.RenderLast(os.Stdout, times, previewTail)
	report.RenderSummary(os.Stdout)

	for _, name := range previewHistograms {
		column, ok := report.Column(name)
		if !ok {
			return fmt.Errorf("histogram: no computed column %q", name)
		}
		fmt.Println()
		if err := preview.RenderHistogram(os.Stdout, column, previewBins); err != nil {
			return err
		}
	}
	return nil
}
