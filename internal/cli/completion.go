package cli

import (
	"github.com/spf13/cobra"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand prints a completion script for the requested shell.
// Besides subcommands and flags, the scripts complete --level with .toml and
// .json level files.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion SHELL",
		Short: "Print a shell completion script",
		Long: `Print a completion script for bash, zsh, fish or powershell.

Once loaded, the shell completes polygone subcommands, their flags, and the
level files accepted by --level:

  polygone play --level examples/levels/<TAB>
  polygone check --level bowtie.toml --<TAB>

The script only reads the command tree; it never starts a game.`,
		Example: `  # current bash session
  source <(polygone completion bash)

  # every zsh session (the directory must be on $fpath)
  polygone completion zsh > "${fpath[1]}/_polygone"

  # fish
  polygone completion fish > ~/.config/fish/completions/polygone.fish

  # powershell
  polygone completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
