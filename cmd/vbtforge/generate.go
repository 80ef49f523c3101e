package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/dataset"
	"github.com/raykavin/vbtforge/pkg/settings"
	"github.com/raykavin/vbtforge/pkg/snapshot"
	"github.com/spf13/cobra"
)

// Generate command flags
var (
	snapshotFile string
	scriptOutput string
	generateFrom string
)

func buildGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit the indicator analysis program for a snapshot",
		RunE:  runGenerate,
	}

	generateCmd.Flags().StringVarP(&snapshotFile, "snapshot", "s", "", "Snapshot file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&generateFrom, "dataset", "d", "", "Start from the defaults for a dataset manifest or data file instead of a snapshot")
	generateCmd.Flags().StringVarP(&scriptOutput, "output", "o", "", "Program path (default: stdout)")
	generateCmd.MarkFlagsMutuallyExclusive("snapshot", "dataset")

	return generateCmd
}

func runGenerate(*cobra.Command, []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	res, err := session.GenerateAnalysis(snap)
	printReport(res.Report)
	if err != nil {
		return err
	}

	if scriptOutput == "" {
		_, err := fmt.Fprint(os.Stdout, res.Script)
		return err
	}

	return session.WriteScript(scriptOutput, res.Script, core.Generation{
		Kind:     core.GenerationAnalysis,
		Hash:     snap.Hash(),
		Warnings: len(res.Report.Warnings),
	})
}

func loadSnapshot() (*snapshot.Snapshot, error) {
	switch {
	case snapshotFile != "":
		return snapshot.Load(snapshotFile)
	case generateFrom != "":
		ref, err := dataset.Resolve(generateFrom)
		if err != nil {
			return nil, err
		}
		snap := snapshot.FromReference(ref)
		if err := settings.Apply(session.Settings(), snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	return nil, fmt.Errorf("one of --snapshot or --dataset is required")
}

// printReport lists validation findings on stderr
func printReport(report core.Report) {
	if len(report.Errors) == 0 && len(report.Warnings) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Severity", "Message"})
	table.SetAutoWrapText(false)
	for _, err := range report.Errors {
		table.Append([]string{"error", err.Error()})
	}
	for _, warning := range report.Warnings {
		table.Append([]string{"warning", warning})
	}
	table.Render()
}
