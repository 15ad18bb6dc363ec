package perf

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ValentinKolb/tinycoll/cmd/util"
	"github.com/ValentinKolb/tinycoll/lib/common"
	"github.com/ValentinKolb/tinycoll/lib/perf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfConfig = &common.PerfConfig{}

	// PerfCmd represents the perf command
	PerfCmd = &cobra.Command{
		Use:   "perf",
		Short: "Measure the performance of the store engines",
		Long: `Measure the performance of the store engines. Every selected workload runs against every selected store kind.
The configuration can be set via command line flags or environment variables. The format of the environment variables is TINYCOLL_<flag> (e.g. TINYCOLL_RUNS=5)`,
		PreRunE: processPerfConfig,
		RunE:    run,
	}
)

func init() {
	// add flags
	key := "kinds"
	PerfCmd.Flags().String(key, "", util.WrapString("Store kinds to measure (comma separated, e.g. ordered,chain). Empty means all"))

	key = "workloads"
	PerfCmd.Flags().String(key, "", util.WrapString("Workloads to run (comma separated, e.g. append,churn). Empty means all"))

	key = "runs"
	PerfCmd.Flags().Int(key, 1, util.WrapString("How often every workload is measured per store kind"))

	key = "bench-time"
	PerfCmd.Flags().Duration(key, 0, util.WrapString("Minimum measuring time per run (e.g. 500ms). 0 uses the default of one second"))

	key = "csv"
	PerfCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))

	key = "metrics"
	PerfCmd.Flags().Bool(key, false, util.WrapString("Print all measurements in Prometheus text format after the run"))

	key = "list"
	PerfCmd.Flags().Bool(key, false, util.WrapString("List the available store kinds and workloads and exit"))
}

// processPerfConfig reads the configuration from the command line flags and environment variables
func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	level, err := util.SetupLoggers()
	if err != nil {
		return err
	}

	perfConfig.Kinds = util.SplitList(viper.GetString("kinds"))
	perfConfig.Workloads = util.SplitList(viper.GetString("workloads"))
	perfConfig.Runs = viper.GetInt("runs")
	perfConfig.BenchTime = viper.GetDuration("bench-time")
	perfConfig.CSVPath = viper.GetString("csv")
	perfConfig.Metrics = viper.GetBool("metrics")
	perfConfig.LogLevel = level

	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	registry := perf.DefaultRegistry()
	out := cmd.OutOrStdout()

	if viper.GetBool("list") {
		fmt.Fprintln(out, "Store kinds:")
		for _, k := range registry.Kinds() {
			fmt.Fprintf(out, "  %-22s %s\n", k.Name, k.Description)
		}
		fmt.Fprintln(out, "Workloads:")
		for _, w := range registry.Workloads() {
			fmt.Fprintf(out, "  %-22s %s\n", w.Name, w.Description)
		}
		return nil
	}

	runner, err := perf.NewRunner(registry, perfConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Performance testing tool for tinycoll stores")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintln(out, perfConfig.String())
	fmt.Fprintf(out, "Run ID: %s\n\n", runner.ID())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := runner.Run(ctx, func(result *perf.Result) {
		perf.PrintResult(out, result)
	})
	if err != nil && err != context.Canceled {
		return err
	}
	if err == context.Canceled {
		fmt.Fprintln(out, "\ninterrupted, reporting partial results")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "FASTEST PER WORKLOAD")
	fmt.Fprint(out, perf.Summary(results))

	// Write results to csv is specified
	if perfConfig.CSVPath != "" {
		fmt.Fprintf(out, "\nExporting results to CSV: %s\n", perfConfig.CSVPath)
		if err := perf.WriteCSV(perfConfig.CSVPath, results, perfConfig, runner.ID()); err != nil {
			return fmt.Errorf("failed to export results to CSV: %w", err)
		}
		fmt.Fprintln(out, "Export complete")
	}

	if perfConfig.Metrics {
		fmt.Fprintln(out)
		runner.WritePrometheus(out)
	}

	return nil
}
