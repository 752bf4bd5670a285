package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a running marqueed",
	Long: `Show the status of a running marqueed.

Examples:
  marquee status
  marquee status --verify
  marquee status --server http://media:8585`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("verify", false, "Also run the server's connectivity checks")
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	runVerify, _ := cmd.Flags().GetBool("verify")
	out := cmd.OutOrStdout()

	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if !runVerify {
		if jsonOutput {
			return printJSON(out, status)
		}
		printStatus(out, serverURL, status)
		return nil
	}

	result, err := client.Verify()
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if jsonOutput {
		if err := printJSON(out, map[string]any{"status": status, "verify": result}); err != nil {
			return err
		}
	} else {
		printStatus(out, serverURL, status)
		fmt.Fprintln(out)
		printVerifyResult(out, result)
	}
	if result.Failed() {
		return ErrChecksFailed
	}
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:     %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Version:    %s\n", s.Version)
}
