// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewCommand returns the completion command.
func NewCommand(rootCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for SchedKit.

Install instructions:
  Bash:       schedkit completion bash > /etc/bash_completion.d/schedkit
              echo 'source <(schedkit completion bash)' >> ~/.bashrc
  Zsh:        schedkit completion zsh > ~/.zsh/completions/_schedkit
  Fish:       schedkit completion fish > ~/.config/fish/completions/schedkit.fish
  PowerShell: schedkit completion powershell >> $PROFILE`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				fmt.Fprintln(os.Stdout, "# SchedKit bash completion")
				fmt.Fprintln(os.Stdout, "# Install: schedkit completion bash > /etc/bash_completion.d/schedkit")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				fmt.Fprintln(os.Stdout, "# SchedKit zsh completion")
				fmt.Fprintln(os.Stdout, "# Install: schedkit completion zsh > ~/.zsh/completions/_schedkit")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				fmt.Fprintln(os.Stdout, "# SchedKit fish completion")
				fmt.Fprintln(os.Stdout, "# Install: schedkit completion fish > ~/.config/fish/completions/schedkit.fish")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				fmt.Fprintln(os.Stdout, "# SchedKit PowerShell completion")
				fmt.Fprintln(os.Stdout, "# Install: schedkit completion powershell >> $PROFILE")
				fmt.Fprintln(os.Stdout)
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", args[0])
			}
		},
	}
	return cmd
}
