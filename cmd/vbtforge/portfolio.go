package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/vbtforge/pkg/backtestgen"
	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/raykavin/vbtforge/pkg/portfolio"
	"github.com/spf13/cobra"
)

// Portfolio command flags
var (
	stateFile      string
	showCategory   string
	stopMode       string
	emitVariant    string
	emitBase       string
	emitTimeframe  string
	emitDataDir    string
	emitResultsDir string
	emitOutput     string
)

func buildPortfolioCmd() *cobra.Command {
	portfolioCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Edit the portfolio parameters and emit backtest programs",
	}
	portfolioCmd.PersistentFlags().StringVar(&stateFile, "state", "", "Parameter state file (default <portfolio_dir>/portfolio.json)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current parameter values",
		RunE:  withState(false, runPortfolioShow),
	}
	showCmd.Flags().StringVarP(&showCategory, "category", "c", "", "essential, advanced or professional")

	setCmd := &cobra.Command{
		Use:   "set PARAMETER VALUE",
		Short: "Set one parameter",
		Args:  cobra.ExactArgs(2),
		RunE: withState(true, func(_ *cobra.Command, args []string) error {
			return session.Portfolio().Set(args[0], args[1])
		}),
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset every parameter to its default",
		RunE: withState(true, func(*cobra.Command, []string) error {
			session.Portfolio().Reset()
			return nil
		}),
	}

	presetCmd := &cobra.Command{
		Use:   "preset [NAME]",
		Short: "Apply an instrument preset, or list them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  withState(true, runPortfolioPreset),
	}

	stopCmd := &cobra.Command{
		Use:   "stop loss|profit VALUE",
		Short: "Set the stop-loss or take-profit in percent, ticks or dollars",
		Args:  cobra.ExactArgs(2),
		RunE:  withState(true, runPortfolioStop),
	}
	stopCmd.Flags().StringVarP(&stopMode, "mode", "m", "percent", "percent, ticks or dollars")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the parameters",
		RunE: withState(false, func(*cobra.Command, []string) error {
			v := session.Portfolio().ValidateAll()
			printReport(core.Report{Errors: v.Errors, Warnings: v.Warnings})
			if !v.Valid {
				return v.Err()
			}
			fmt.Println("parameters are valid")
			return nil
		}),
	}

	emitCmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit the strategy scaffold or full backtest program",
		RunE:  withState(false, runPortfolioEmit),
	}
	emitCmd.Flags().StringVar(&emitVariant, "variant", "scaffold", "scaffold or full")
	emitCmd.Flags().StringVarP(&emitBase, "base", "b", "", "Dataset base name (e.g. NQ)")
	emitCmd.Flags().StringVarP(&emitTimeframe, "timeframe", "t", "", "Timeframe of the indicator artifact (e.g. 5m)")
	emitCmd.Flags().StringVar(&emitDataDir, "data-dir", "", "Directory of the indicator artifacts (default: settings output_dir)")
	emitCmd.Flags().StringVar(&emitResultsDir, "results-dir", "", "Directory the full backtest saves to")
	emitCmd.Flags().StringVarP(&emitOutput, "output", "o", "", "Program path (default: stdout)")
	emitCmd.MarkFlagRequired("base")
	emitCmd.MarkFlagRequired("timeframe")
	addSessionFlags(emitCmd)

	saveCmd := &cobra.Command{
		Use:   "save PATH",
		Short: "Save the parameters to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: withState(false, func(_ *cobra.Command, args []string) error {
			return session.Portfolio().Save(args[0])
		}),
	}

	loadCmd := &cobra.Command{
		Use:   "load PATH",
		Short: "Load the parameters from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: withState(true, func(_ *cobra.Command, args []string) error {
			return session.Portfolio().Load(args[0])
		}),
	}

	profileSaveCmd := &cobra.Command{
		Use:   "profile-save NAME",
		Short: "Store the parameters as a named profile",
		Args:  cobra.ExactArgs(1),
		RunE: withState(false, func(_ *cobra.Command, args []string) error {
			return session.SaveProfile(args[0])
		}),
	}

	profileLoadCmd := &cobra.Command{
		Use:   "profile-load NAME",
		Short: "Replace the parameters with a named profile",
		Args:  cobra.ExactArgs(1),
		RunE: withState(true, func(_ *cobra.Command, args []string) error {
			return session.LoadProfile(args[0])
		}),
	}

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "List stored profiles",
		RunE:  runPortfolioProfiles,
	}

	portfolioCmd.AddCommand(showCmd, setCmd, resetCmd, presetCmd, stopCmd, validateCmd, emitCmd,
		saveCmd, loadCmd, profileSaveCmd, profileLoadCmd, profilesCmd)
	return portfolioCmd
}

// withState loads the state file before fn and, for mutating commands,
// writes it back afterwards
func withState(mutating bool, fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		path := statePath()
		if _, err := os.Stat(path); err == nil {
			if err := session.Portfolio().Load(path); err != nil {
				return err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := fn(cmd, args); err != nil {
			return err
		}
		if !mutating {
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		return session.Portfolio().Save(path)
	}
}

func statePath() string {
	if stateFile != "" {
		return stateFile
	}
	return filepath.Join(session.Settings().Paths.PortfolioDir, "portfolio.json")
}

func runPortfolioShow(*cobra.Command, []string) error {
	params := portfolio.Parameters()
	if showCategory != "" {
		params = portfolio.ByCategory(portfolio.Category(showCategory))
	}

	m := session.Portfolio()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Parameter", "Value", "Category", "Description"})
	table.SetAutoWrapText(false)
	for _, p := range params {
		value, _ := m.Get(p.ID)
		table.Append([]string{p.ID, core.FormatValue(value), string(p.Category), p.Description})
	}
	table.Render()

	fmt.Printf("stop-loss: %s, take-profit: %s\n", m.DisplayStop(portfolio.Loss), m.DisplayStop(portfolio.Profit))
	if instrument := m.Instrument(); instrument != "" {
		fmt.Printf("instrument: %s\n", instrument)
	}
	return nil
}

func runPortfolioPreset(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return session.Portfolio().ApplyPreset(args[0])
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Preset", "Description", "Tick size", "Tick value", "Fixed fee", "SL ticks", "TP ticks"})
	for _, p := range portfolio.Presets() {
		table.Append([]string{
			p.Name, p.Description,
			core.FormatValue(p.TickSize), core.FormatValue(p.TickValue), core.FormatValue(p.FixedFee),
			core.FormatValue(p.StopLossTicks), core.FormatValue(p.TakeProfitTicks),
		})
	}
	table.Render()
	return nil
}

func runPortfolioStop(_ *cobra.Command, args []string) error {
	var which portfolio.Stop
	switch args[0] {
	case "loss", "sl":
		which = portfolio.Loss
	case "profit", "tp":
		which = portfolio.Profit
	default:
		return fmt.Errorf("stop must be loss or profit, got %q", args[0])
	}

	mode, err := portfolio.ParseStopMode(stopMode)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: stop value %q", core.ErrInvalidValue, args[1])
	}
	return session.Portfolio().SetStop(which, value, mode)
}

func runPortfolioEmit(*cobra.Command, []string) error {
	variant, err := backtestgen.ParseVariant(emitVariant)
	if err != nil {
		return err
	}
	if err := applySessionFlags(); err != nil {
		return err
	}

	res, err := session.GeneratePortfolio(backtestgen.Config{
		Variant:    variant,
		DataDir:    emitDataDir,
		BaseName:   emitBase,
		Timeframe:  emitTimeframe,
		ResultsDir: emitResultsDir,
	})
	printReport(core.Report{Errors: res.Validation.Errors, Warnings: res.Validation.Warnings})
	if err != nil {
		return err
	}

	if emitOutput == "" {
		_, err := fmt.Fprint(os.Stdout, res.Script)
		return err
	}
	return session.WriteScript(emitOutput, res.Script, core.Generation{
		Kind:     core.GenerationPortfolio,
		Hash:     fmt.Sprintf("%s_%s_%s", emitBase, emitTimeframe, variant),
		Warnings: len(res.Validation.Warnings),
	})
}

func runPortfolioProfiles(*cobra.Command, []string) error {
	store := session.Storage()
	if store == nil {
		return errors.New("profile storage is disabled")
	}
	profiles, err := store.Profiles()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Profile", "Instrument", "Updated"})
	for _, p := range profiles {
		table.Append([]string{p.Name, p.Instrument, p.UpdatedAt.Local().Format("2006-01-02 15:04:05")})
	}
	table.Render()
	return nil
}
