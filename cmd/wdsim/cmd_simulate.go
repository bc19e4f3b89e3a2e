package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/withdrawal-simulator/internal/config"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
	"github.com/rpgo/withdrawal-simulator/internal/output"
	money "github.com/rpgo/withdrawal-simulator/pkg/decimal"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a projection and render the report",
		Long: `Run a withdrawal projection. Parameters come from --config (or the built-in
example) and can be overridden with flags. Amounts accept "$1,000,000" style
text; rates accept either a fraction (0.07) or a percentage (7%).

Console, CSV and JSON reports print to stdout unless --out is given; HTML, PDF
and "all" are always written to files.`,
		Example: `  wdsim simulate --capital '$1,000,000' --withdrawal 40000 --rate 7% --inflation 3% --years 50
  wdsim simulate --config plan.yaml --format pdf --out reports/`,
		RunE: runSimulate,
	}
	cmd.Flags().String("capital", "", "Initial capital (C0)")
	cmd.Flags().String("withdrawal", "", "First-year withdrawal (W1)")
	cmd.Flags().String("rate", "", "Annual interest rate (r)")
	cmd.Flags().String("inflation", "", "Annual inflation rate (g)")
	cmd.Flags().Int("years", 0, "Simulation horizon in years")
	cmd.Flags().StringP("format", "f", "", "Output format (see 'wdsim formats')")
	cmd.Flags().StringP("out", "o", "", "Write the report to this directory")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}
	if err := applySimulationFlags(cmd, cfg); err != nil {
		return err
	}

	parser := config.NewInputParser()
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	for _, w := range parser.Warnings(&cfg.Simulation) {
		logger.Warn("unusual input", "detail", w)
	}

	engine := newEngine(cmd.Context(), cfg, logger)
	defer engine.Close()

	report := &domain.ProjectionReport{
		Params:      cfg.Simulation,
		Result:      engine.Simulate(cmd.Context(), cfg.Simulation),
		GeneratedAt: time.Now(),
	}

	format := output.NormalizeFormatName(cfg.Output.Format)
	dir := cfg.Output.Directory
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		dir = out
	}

	if toFile(cmd, format) {
		files, err := output.GenerateReport(report, format, dir)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}

	f := output.GetFormatterByName(format)
	if f == nil {
		return output.UnsupportedFormatError(format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// toFile reports whether format should be written to disk instead of stdout.
func toFile(cmd *cobra.Command, format string) bool {
	if cmd.Flags().Changed("out") {
		return true
	}
	switch format {
	case "html", "pdf", "all":
		return true
	}
	return false
}

// applySimulationFlags overrides configuration values with explicitly set flags.
func applySimulationFlags(cmd *cobra.Command, cfg *domain.Configuration) error {
	flags := cmd.Flags()
	sim := &cfg.Simulation

	if flags.Changed("capital") {
		v, _ := flags.GetString("capital")
		d, err := money.ParseMoneyStrict(v)
		if err != nil {
			return fmt.Errorf("invalid --capital %q: %w", v, err)
		}
		sim.InitialCapital = d
	}
	if flags.Changed("withdrawal") {
		v, _ := flags.GetString("withdrawal")
		d, err := money.ParseMoneyStrict(v)
		if err != nil {
			return fmt.Errorf("invalid --withdrawal %q: %w", v, err)
		}
		sim.FirstWithdrawal = d
	}
	if flags.Changed("rate") {
		v, _ := flags.GetString("rate")
		d, err := money.ParseRateStrict(v)
		if err != nil {
			return fmt.Errorf("invalid --rate %q: %w", v, err)
		}
		sim.AnnualRate = d
	}
	if flags.Changed("inflation") {
		v, _ := flags.GetString("inflation")
		d, err := money.ParseRateStrict(v)
		if err != nil {
			return fmt.Errorf("invalid --inflation %q: %w", v, err)
		}
		sim.InflationRate = d
	}
	if flags.Changed("years") {
		sim.HorizonYears, _ = flags.GetInt("years")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	return nil
}
