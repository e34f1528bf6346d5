package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for odeluctl.

To load completions:

Bash:
  $ source <(odeluctl completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ odeluctl completion bash > /etc/bash_completion.d/odeluctl
  # macOS:
  $ odeluctl completion bash > $(brew --prefix)/etc/bash_completion.d/odeluctl

Zsh:
  $ source <(odeluctl completion zsh)
  # To load completions for each session, execute once:
  $ odeluctl completion zsh > "${fpath[1]}/_odeluctl"

Fish:
  $ odeluctl completion fish | source
  # To load completions for each session, execute once:
  $ odeluctl completion fish > ~/.config/fish/completions/odeluctl.fish

PowerShell:
  PS> odeluctl completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> odeluctl completion powershell > odeluctl.ps1
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
