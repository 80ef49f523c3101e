package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/spf13/cobra"
)

// Session selection flags, shared with portfolio emit
var (
	selectedSessions []string
	customSessions   []string
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&selectedSessions, "session", nil, "Library session to include (repeatable)")
	cmd.Flags().StringSliceVar(&customSessions, "custom", nil, "Custom session as [name=]HH:MM-HH:MM (up to 3)")
}

// applySessionFlags fills the session selection from the flags
func applySessionFlags() error {
	s := session.Sessions()
	for _, name := range selectedSessions {
		if err := s.Select(name); err != nil {
			return err
		}
	}
	for _, raw := range customSessions {
		w, err := portfolio.ParseWindow(raw)
		if err != nil {
			return err
		}
		if err := s.AddCustom(w); err != nil {
			return err
		}
	}
	return nil
}

func buildSessionsCmd() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Trading session windows (" + portfolio.ReferenceTimezone + ")",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the library session windows",
		RunE: func(*cobra.Command, []string) error {
			printWindows(portfolio.LibraryWindows())
			return nil
		},
	}

	effectiveCmd := &cobra.Command{
		Use:   "effective",
		Short: "Show the selected windows as the backtest will use them",
		RunE: func(*cobra.Command, []string) error {
			windows, err := selectedWindows()
			if err != nil {
				return err
			}
			printWindows(windows)
			return nil
		},
	}
	addSessionFlags(effectiveCmd)

	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Show the union of the selected windows",
		RunE: func(*cobra.Command, []string) error {
			windows, err := selectedWindows()
			if err != nil {
				return err
			}
			printWindows(portfolio.MergeOverlapping(windows))
			return nil
		},
	}
	addSessionFlags(mergeCmd)

	sessionsCmd.AddCommand(listCmd, effectiveCmd, mergeCmd)
	return sessionsCmd
}

func selectedWindows() ([]portfolio.Window, error) {
	if err := applySessionFlags(); err != nil {
		return nil, err
	}
	return session.Sessions().ComputeEffectiveWindows()
}

func printWindows(windows []portfolio.Window) {
	if len(windows) == 0 {
		fmt.Println("no session selected")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Session", "Start", "End", "Crosses midnight"})
	for _, w := range windows {
		crosses := ""
		if w.CrossesMidnight() {
			crosses = "yes"
		}
		end := w.End
		if w.AllDay {
			end = "24:00"
		}
		table.Append([]string{w.Name, w.Start, end, crosses})
	}
	table.Render()
}
