package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rexec-dev/rexec-go"
)

var (
	workspaceURL string
	clusterID    string
	tokenFlag    string
	contextName  string
)

var rootCmd = &cobra.Command{
	Use:   "rexec-demo",
	Short: "Run code on a remote cluster via the Command Execution API",
	Long: `rexec-demo exercises the workspace Command Execution API: it creates
a remote execution context on a compute cluster, submits source code to
it, waits for completion and prints the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workspaceURL, "workspace-url", os.Getenv("REXEC_WORKSPACE_URL"),
		"workspace base URL, e.g. https://workspace.example.com (env REXEC_WORKSPACE_URL)")
	rootCmd.PersistentFlags().StringVar(&clusterID, "cluster-id", os.Getenv("REXEC_CLUSTER_ID"),
		"compute cluster id (env REXEC_CLUSTER_ID)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "",
		"access token (falls back to REXEC_TOKEN, then the OS keyring)")
	rootCmd.PersistentFlags().StringVar(&contextName, "context-name", "rexec-demo",
		"name for the execution context")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print SDK and API version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rexec-demo %s (API %s)\n", rexec.Version, rexec.APIVersion)
	},
}

// newClient builds the SDK client from the shared flags, failing fast
// before any network call when the configuration is incomplete.
func newClient() (*rexec.Client, error) {
	if workspaceURL == "" {
		return nil, fmt.Errorf("workspace URL is required (--workspace-url or REXEC_WORKSPACE_URL)")
	}
	if clusterID == "" {
		return nil, fmt.Errorf("cluster id is required (--cluster-id or REXEC_CLUSTER_ID)")
	}
	token, err := resolveToken()
	if err != nil {
		return nil, err
	}
	return rexec.NewClient(workspaceURL, token,
		rexec.WithTimeout(time.Minute),
	)
}
