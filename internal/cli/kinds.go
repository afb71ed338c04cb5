package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	geoerrors "github.com/matzehuels/geo/pkg/errors"
	"github.com/matzehuels/geo/pkg/geo"
)

// formula describes how each measurement of a kind is computed.
type formula struct {
	params    []string
	area      string
	perimeter string
	volume    string
}

// formulas documents every kind. kindsCommand fails if one is missing.
var formulas = map[geo.Kind]formula{
	geo.KindCircle:    {[]string{"r"}, "πr²", "2πr", ""},
	geo.KindRectangle: {[]string{"w", "h"}, "wh", "2w + 2h", ""},
	geo.KindSquare:    {[]string{"s"}, "s²", "4s", ""},
	geo.KindSphere:    {[]string{"r"}, "4πr²", "2πr", "4/3πr³"},
	geo.KindCube:      {[]string{"a"}, "6a²", "0", "a³"},
}

// kindRows builds one table row per shape kind.
func kindRows() ([][]string, error) {
	kinds := geo.Kinds()
	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		f, ok := formulas[k]
		if !ok {
			return nil, geoerrors.New(geoerrors.ErrCodeUnsupported, "no formulas for shape kind %s", k)
		}
		dims := "2D"
		volume := "-"
		if k.Spatial() {
			dims = "3D"
			volume = f.volume
		}
		rows = append(rows, []string{k.String(), dims, strings.Join(f.params, ", "), f.area, f.perimeter, volume})
	}
	return rows, nil
}

// kindsCommand creates the kinds command listing the shape taxonomy.
func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported shape kinds and their formulas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := kindRows()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Kind", "Dims", "Params", "Area", "Perimeter", "Volume").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 0 {
						return styleCell.Foreground(colorCyan)
					}
					return styleCell
				})

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
