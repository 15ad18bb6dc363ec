package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/tinycoll/cmd/perf"
	"github.com/ValentinKolb/tinycoll/cmd/run"
	"github.com/ValentinKolb/tinycoll/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (
	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "tinycoll",
		Short: "generic collections on compact storage engines",
		Long: fmt.Sprintf(`tinycoll (v%s)

Generic collections for Go built on two storage engines: a self resizing
array (unordered or sorted) and a singly linked chain. The command line tool
measures the engines and runs workload scripts against them.`, Version),
		SilenceUsage: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tinycoll",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tinycoll v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(run.RunCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupLogFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
