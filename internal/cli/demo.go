package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geo/pkg/geo"
)

// demoShapes builds the fixed demo set: a circle and a square at the planar
// origin, a sphere and a cube at the spatial origin.
func demoShapes() []geo.Shape {
	p2 := geo.NewPoint2D(0, 0)
	p3 := geo.NewPoint3D(0, 0, 0)

	return []geo.Shape{
		geo.NewCircle(p2, 3.5),
		geo.NewSquare(p2, 3),
		geo.NewSphere(p3, 3.5),
		geo.NewCube(p3, 3),
	}
}

// demoCommand creates the demo command. It is also what the root command runs.
func (c *CLI) demoCommand() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print area, perimeter and volume of the demo shapes",
		Long: `Print the defining dimension, area, perimeter and (for solids) volume of a
circle (radius 3.5), a square (side 3), a sphere (radius 3.5) and a cube (edge 3).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("validate") {
				validate = c.Config.Validate
			}
			return c.runDemo(cmd, validate)
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "reject shapes with non-positive or non-finite dimensions (default from config)")

	return cmd
}

// runDemo measures the demo shapes and writes the report to the command's output.
// validate is the resolved setting: the flag when given, the config otherwise.
func (c *CLI) runDemo(cmd *cobra.Command, validate bool) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	shapes := demoShapes()
	for _, s := range shapes {
		logger.Debug("built shape", "shape", s)
	}

	if validate {
		for _, s := range shapes {
			if err := geo.Validate(s); err != nil {
				return err
			}
		}
		printSuccess(cmd.ErrOrStderr(), "%d shapes valid", len(shapes))
	}

	if err := writeReport(cmd.OutOrStdout(), shapes, palette{styled: c.Config.Color}); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Measured %d shapes", len(shapes)))
	return nil
}
