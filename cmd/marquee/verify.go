package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a running marqueed can reach TMDB and its cache",
	Args:  cobra.NoArgs,
	RunE:  runVerifyCmd,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	result, err := client.Verify()
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if jsonOutput {
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printVerifyResult(cmd.OutOrStdout(), result)
	}

	if result.Failed() {
		return ErrChecksFailed
	}
	return nil
}

func printVerifyResult(w io.Writer, r *VerifyResponse) {
	fmt.Fprintf(w, "Checking %d connections...\n\n", r.Checked)

	for _, c := range r.Checks {
		state := "ok"
		if !c.OK {
			state = "FAIL " + c.Error
		}
		fmt.Fprintf(w, "  %-8s %s (%dms)\n", c.Name+":", state, c.DurationMS)
	}
	fmt.Fprintf(w, "  Passed:  %d/%d\n", r.Passed, r.Checked)
	fmt.Fprintln(w)

	if !r.Failed() {
		fmt.Fprintln(w, "No problems detected.")
		return
	}
	fmt.Fprintf(w, "%d checks failed. Run 'marquee config test' to review the server's configuration.\n", r.Checked-r.Passed)
}
