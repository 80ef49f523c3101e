package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/catalog"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/spf13/cobra"
)

// Catalog command flags
var (
	catalogLibrary  string
	catalogCategory string
	catalogSearch   string
	catalogOutput   string
)

func buildCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the indicator catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List indicators, optionally filtered",
		RunE:  runCatalogList,
	}
	listCmd.Flags().StringVarP(&catalogLibrary, "library", "l", "", "Library (native, talib, pandas_ta, technical, ta, smc, wqa101, techcon)")
	listCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "Category")
	listCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "Substring of name or category")

	showCmd := &cobra.Command{
		Use:   "show LIBRARY NAME",
		Short: "Show the parameters and recipe of one indicator",
		Args:  cobra.ExactArgs(2),
		RunE:  runCatalogShow,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to an xlsx workbook",
		RunE: func(*cobra.Command, []string) error {
			return session.Catalog().ExportXLSX(catalogOutput, recipeStatus)
		},
	}
	exportCmd.Flags().StringVarP(&catalogOutput, "output", "o", "catalog.xlsx", "Workbook path")

	catalogCmd.AddCommand(listCmd, showCmd, exportCmd)
	return catalogCmd
}

func runCatalogList(*cobra.Command, []string) error {
	filter := catalog.Filter{Search: catalogSearch, Category: catalogCategory}
	if catalogLibrary != "" {
		library, err := core.ParseLibrary(catalogLibrary)
		if err != nil {
			return err
		}
		filter.Library = library
	}

	descriptors := session.Catalog().Filter(filter)
	data := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		data = append(data, []string{string(d.Library), d.Name, d.Category, describeParams(d.DefaultParams()), recipeStatus(d)})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Library", "Name", "Category", "Defaults", "Status"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.SetFooter([]string{"", "", "", "Total", strconv.Itoa(len(data))})
	table.Render()
	return nil
}

func runCatalogShow(_ *cobra.Command, args []string) error {
	library, err := core.ParseLibrary(args[0])
	if err != nil {
		return err
	}
	d, err := session.Catalog().Lookup(library, args[1])
	if err != nil {
		return err
	}
	recipe, err := session.Table().Lookup(library, d.Name)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Parameter", "Default", "Argument", "Coercion"})
	for _, b := range recipe.Bindings {
		table.Append([]string{b.Param, core.FormatValue(b.Default), b.Arg, b.Coerce.String()})
	}

	fmt.Printf("%s (%s)\n", d.Key(), d.Category)
	fmt.Printf("Inputs:  %s\n", strings.Join(recipe.Inputs.Columns(), ", "))
	fmt.Printf("Columns: %s\n", strings.Join(recipe.Columns(d.Spec().DisplayName()), ", "))
	fmt.Printf("Status:  %s\n", recipeStatus(d))
	table.Render()
	return nil
}

// recipeStatus describes whether the adapter table can dispatch d
func recipeStatus(d core.IndicatorDescriptor) string {
	recipe, err := session.Table().Lookup(d.Library, d.Name)
	switch {
	case err != nil:
		return "no adapter"
	case recipe.Blacklisted():
		return "skipped: " + recipe.SkipReason
	case recipe.NeedsVolume():
		return "ok (volume)"
	}
	return "ok"
}

func describeParams(params core.Params) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + "=" + core.FormatValue(p.Value)
	}
	return strings.Join(parts, " ")
}
