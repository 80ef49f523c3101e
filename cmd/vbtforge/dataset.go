package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/dataset"
	"github.com/spf13/cobra"
)

func buildDatasetCmd() *cobra.Command {
	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect upstream datasets",
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect PATH",
		Short: "Resolve a manifest or data file and list its timeframes",
		Args:  cobra.ExactArgs(1),
		RunE:  runDatasetInspect,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [ROOT]",
		Short: "List the loadable datasets under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDatasetScan,
	}

	datasetCmd.AddCommand(inspectCmd, scanCmd)
	return datasetCmd
}

func runDatasetInspect(_ *cobra.Command, args []string) error {
	ref, report := dataset.Inspect(args[0])
	printReport(report)
	if !report.OK() {
		return report.Err()
	}

	fmt.Printf("base: %s\n", ref.Base)
	fmt.Printf("directory: %s\n", ref.Dir)
	if len(ref.Columns) > 0 {
		fmt.Printf("columns: %s\n", strings.Join(ref.Columns, ", "))
	}

	existing := ref.Existing()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timeframe", "File"})
	for _, tf := range ref.Timeframes {
		file, ok := existing[tf]
		if !ok {
			file = "(missing)"
		}
		table.Append([]string{tf, file})
	}
	table.Render()
	return nil
}

func runDatasetScan(_ *cobra.Command, args []string) error {
	root := session.Settings().Paths.DataDir
	if len(args) == 1 {
		root = args[0]
	}

	artifacts, err := dataset.Scan(root)
	if err != nil {
		return err
	}
	sort.SliceStable(artifacts, func(i, j int) bool {
		return artifacts[i].Path < artifacts[j].Path
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Path", "Kind", "Timeframes", "Error"})
	table.SetAutoWrapText(false)
	for _, a := range artifacts {
		kind := "file"
		if a.Bundle {
			kind = "bundle"
		}
		var msg string
		if a.Err != nil {
			msg = a.Err.Error()
		}
		table.Append([]string{a.Path, kind, strings.Join(a.Timeframes, ", "), msg})
	}
	table.SetFooter([]string{"", "", "", fmt.Sprintf("%d found", len(artifacts))})
	table.Render()
	return nil
}
