package cli

import (
	"github.com/spf13/cobra"

	geoerrors "github.com/matzehuels/geo/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for geo.

To load completions:

Bash:
  $ source <(geo completion bash)

Zsh:
  $ geo completion zsh > "${fpath[1]}/_geo"

Fish:
  $ geo completion fish | source

PowerShell:
  PS> geo completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return geoerrors.New(geoerrors.ErrCodeUnsupported, "unsupported shell %q", args[0])
		},
	}

	return cmd
}
