package perf

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ValentinKolb/tinycoll/lib/common"
	"github.com/google/uuid"
)

// PrintResult prints the result of a pair in a formatted way
func PrintResult(w io.Writer, result *Result) {
	name := fmt.Sprintf("%s/%s", result.Kind, result.Workload)
	if result.Skipped() {
		fmt.Fprintf(w, "%-32sskipped\n", name)
		return
	}

	nsPerOp := result.NsPerOp.Mean
	fmt.Fprintf(w, "%-32s%.0fns/op (%s/op)\t%.0f ops/sec", name, nsPerOp, time.Duration(nsPerOp), result.NsPerOp.OpsPerSec())
	if len(result.Runs) > 1 {
		fmt.Fprintf(w, "\t±%.0fns", result.NsPerOp.StdDeviation)
	}
	if u := result.Utilisation; u != nil {
		fmt.Fprintf(w, "\tutilisation %.0f%% (p95 %.0f%%)", u.Mean, u.P95)
	}
	fmt.Fprintln(w)
}

// WriteCSV writes benchmark results to a CSV file
func WriteCSV(csvPath string, results []*Result, config *common.PerfConfig, runID uuid.UUID) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := writeCSV(file, results, config, runID); err != nil {
		return err
	}
	return file.Close()
}

func writeCSV(w io.Writer, results []*Result, config *common.PerfConfig, runID uuid.UUID) error {
	writer := csv.NewWriter(w)

	header := []string{
		"RunID", "Kind", "Workload", "Runs", "Skipped",
		"NsPerOp", "NsPerOpStdDev", "NsPerOpMin", "NsPerOpMax", "DurationPerOp", "OpsPerSec",
		"AllocsPerOp", "UtilisationMean", "UtilisationP95", "BenchTime",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	benchTime := "default"
	if config.BenchTime > 0 {
		benchTime = config.BenchTime.String()
	}

	for _, result := range results {
		var utilisationMean, utilisationP95 string
		if u := result.Utilisation; u != nil {
			utilisationMean = fmt.Sprintf("%.1f", u.Mean)
			utilisationP95 = fmt.Sprintf("%.1f", u.P95)
		}

		stats := result.NsPerOp
		row := []string{
			runID.String(),
			result.Kind,
			result.Workload,
			strconv.Itoa(len(result.Runs)),
			strconv.FormatBool(result.Skipped()),
			fmt.Sprintf("%.0f", stats.Mean),
			fmt.Sprintf("%.1f", stats.StdDeviation),
			fmt.Sprintf("%.0f", stats.Min),
			fmt.Sprintf("%.0f", stats.Max),
			time.Duration(stats.Mean).String(),
			fmt.Sprintf("%.0f", stats.OpsPerSec()),
			fmt.Sprintf("%.1f", result.AllocsPerOp),
			utilisationMean,
			utilisationP95,
			benchTime,
		}
		if result.Skipped() {
			row[10] = "0"
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s/%s: %w", result.Kind, result.Workload, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Summary renders a short table of the fastest kind per workload
func Summary(results []*Result) string {
	fastest := make(map[string]*Result)
	var order []string
	for _, result := range results {
		if result.Skipped() {
			continue
		}
		best, ok := fastest[result.Workload]
		if !ok {
			order = append(order, result.Workload)
		}
		if !ok || result.NsPerOp.Mean < best.NsPerOp.Mean {
			fastest[result.Workload] = result
		}
	}

	var sb strings.Builder
	for _, workload := range order {
		best := fastest[workload]
		sb.WriteString(fmt.Sprintf("  %-22s: %s (%.0f ns/op)\n", workload, best.Kind, best.NsPerOp.Mean))
	}
	return sb.String()
}
