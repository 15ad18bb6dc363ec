package run

import (
	"errors"
	"fmt"

	"github.com/ValentinKolb/tinycoll/cmd/util"
	"github.com/ValentinKolb/tinycoll/lib/common"
	"github.com/ValentinKolb/tinycoll/lib/script"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	plog = logger.GetLogger("cli")

	runConfig = &common.ScriptConfig{}

	// RunCmd represents the run command
	RunCmd = &cobra.Command{
		Use:   "run [script.yaml]...",
		Short: "Run workload scripts against the store engines",
		Long: `Run one or more YAML workload scripts. Every script creates a fresh store, executes its steps and checks the expected outcome.
The command fails if any script fails.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: processRunConfig,
		RunE:    runScripts,
	}

	// errScriptsFailed is returned if at least one script did not pass
	errScriptsFailed = errors.New("scripts failed")
)

func init() {
	key := "fail-fast"
	RunCmd.Flags().Bool(key, false, util.WrapString("Stop after the first failing script"))

	key = "verbose"
	RunCmd.Flags().Bool(key, false, util.WrapString("Print the outcome of every step"))
}

// processRunConfig reads the configuration from the command line flags and environment variables
func processRunConfig(cmd *cobra.Command, args []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	level, err := util.SetupLoggers()
	if err != nil {
		return err
	}

	runConfig.Files = args
	runConfig.FailFast = viper.GetBool("fail-fast")
	runConfig.Verbose = viper.GetBool("verbose")
	runConfig.LogLevel = level
	plog.Debugf("configuration: %s", runConfig.String())

	return nil
}

func runScripts(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, file := range runConfig.Files {
		err := runScript(cmd, file)
		if err == nil {
			fmt.Fprintf(out, "PASS  %s\n", file)
			continue
		}

		failed++
		fmt.Fprintf(out, "FAIL  %s\n      %v\n", file, err)
		if runConfig.FailFast {
			break
		}
	}

	fmt.Fprintf(out, "\n%d of %d scripts passed\n", len(runConfig.Files)-failed, len(runConfig.Files))
	if failed > 0 {
		return fmt.Errorf("%w: %d", errScriptsFailed, failed)
	}
	return nil
}

// runScript loads and runs a single script file
func runScript(cmd *cobra.Command, file string) error {
	s, err := script.Load(file)
	if err != nil {
		return err
	}

	result, err := script.Run(s)
	if runConfig.Verbose && result != nil {
		out := cmd.OutOrStdout()
		for i, step := range result.Steps {
			fmt.Fprintf(out, "      %2d %-10s ok=%-5t found=%-5t index=%-3d size=%d\n", i, step.Op, step.OK, step.Found, step.Index, step.Size)
		}
		fmt.Fprintf(out, "      items=%v size=%d capacity=%d\n", result.Items, result.Size, result.Capacity)
	}
	return err
}
