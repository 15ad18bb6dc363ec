package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Perf configuration struct
// --------------------------------------------------------------------------

// PerfConfig holds the settings of a performance run
type PerfConfig struct {
	// store kinds and workloads to run (empty means all registered)
	Kinds     []string
	Workloads []string

	// how often every (kind, workload) pair is measured
	Runs int
	// minimum measuring time per run (0 uses the testing default)
	BenchTime time.Duration

	// optional outputs
	CSVPath string
	Metrics bool

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *PerfConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Selection")
	addField("Store Kinds", listOrAll(c.Kinds))
	addField("Workloads", listOrAll(c.Workloads))

	addSection("Measurement")
	addField("Runs", strconv.Itoa(c.Runs))
	if c.BenchTime > 0 {
		addField("Bench Time", c.BenchTime.String())
	} else {
		addField("Bench Time", "default")
	}

	addSection("Output")
	if c.CSVPath != "" {
		addField("CSV File", c.CSVPath)
	}
	addField("Prometheus Metrics", fmt.Sprintf("%t", c.Metrics))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Script configuration struct
// --------------------------------------------------------------------------

// ScriptConfig holds the settings for running workload scripts
type ScriptConfig struct {
	// Files are the script files to execute in order
	Files []string
	// FailFast stops after the first failing script
	FailFast bool
	// Verbose prints the outcome of every step
	Verbose bool

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ScriptConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Scripts")
	for i, file := range c.Files {
		addField(strconv.Itoa(i+1), file)
	}

	addSection("Execution")
	addField("Fail Fast", fmt.Sprintf("%t", c.FailFast))
	addField("Verbose", fmt.Sprintf("%t", c.Verbose))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func listOrAll(values []string) string {
	if len(values) == 0 {
		return "all"
	}
	return strings.Join(values, ", ")
}
