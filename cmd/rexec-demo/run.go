package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rexec-dev/rexec-go"
)

// defaultSnippet is a small self-contained R program, enough to verify
// that the context executes arbitrary code.
const defaultSnippet = `
add_two_numbers <- function(first_num, sec_num) {
  return(first_num + sec_num)
}

add_two_numbers(11, 10)
add_two_numbers(8, 20)
`

var sourceFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an R snippet inside a fresh execution context",
	Long: `run creates an execution context on the cluster, submits an R snippet
(a built-in demo unless --file is given), waits for it to finish, prints
the result and destroys the context.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := defaultSnippet
		if sourceFile != "" {
			data, err := os.ReadFile(sourceFile)
			if err != nil {
				return err
			}
			source = string(data)
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		_, err = runInContext(cmd.Context(), client, source)
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&sourceFile, "file", "", "file with R source to run instead of the built-in demo")
}

// runInContext performs the full lifecycle: create context, run the
// source, print the result, destroy the context on every path.
func runInContext(ctx context.Context, client *rexec.Client, source string) (*rexec.CommandInfo, error) {
	spinner, _ := pterm.DefaultSpinner.Start("Creating execution context on cluster " + clusterID)
	ec, err := client.CreateContext(ctx, clusterID, rexec.LanguageR, contextName)
	if err != nil {
		spinner.Fail("Could not create execution context")
		return nil, err
	}
	spinner.Success("Execution context " + ec.ID + " created")

	defer func() {
		// Best effort: the context must not outlive the demo even when
		// the command failed. Use a fresh context so teardown still
		// runs after cancellation.
		if err := ec.Destroy(context.WithoutCancel(ctx)); err != nil {
			pterm.Warning.Println("Failed to destroy execution context:", err)
		} else {
			pterm.Info.Println("Execution context destroyed")
		}
	}()

	spinner, _ = pterm.DefaultSpinner.Start("Running command")
	info, err := ec.Run(ctx, source)
	if err != nil {
		spinner.Fail("Command failed")
		return nil, err
	}
	spinner.Success("Command finished")

	pterm.Println(info.Results.Text())
	return info, nil
}
