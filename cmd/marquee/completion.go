package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for marquee.

To load completions:

Bash:
  $ source <(marquee completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ marquee completion bash > /etc/bash_completion.d/marquee
  # macOS:
  $ marquee completion bash > $(brew --prefix)/etc/bash_completion.d/marquee

Zsh:
  $ source <(marquee completion zsh)
  # To load completions for each session, execute once:
  $ marquee completion zsh > "${fpath[1]}/_marquee"

Fish:
  $ marquee completion fish | source
  # To load completions for each session, execute once:
  $ marquee completion fish > ~/.config/fish/completions/marquee.fish

PowerShell:
  PS> marquee completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> marquee completion powershell > marquee.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
