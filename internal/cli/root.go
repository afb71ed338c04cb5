package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/geo/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked without a subcommand, it runs the demo.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	demo := c.demoCommand()

	root := &cobra.Command{
		Use:          appName,
		Short:        "geo measures points, circles, rectangles, squares, spheres and cubes",
		Long:         `geo is a small shape taxonomy with closed-form area, perimeter and volume calculations. Run without arguments to print the demo report.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, c.Logger)
			if err != nil {
				return err
			}
			c.Config = cfg
			if cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd, c.Config.Validate)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/geo/config.toml)")

	root.AddCommand(demo)
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
