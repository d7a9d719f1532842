package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/medvis/bodymap/pkg/anatomy"
)

// newRegionsCmd creates the regions command listing the vocabulary.
func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the anatomical region vocabulary",
		Long: `List the fixed vocabulary of annotatable regions.

For each region the table shows the canonical id, the identifier
aliases the classification service may use, the source point on the
reference diagram, and the display color key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(regionTable())
			return nil
		},
	}
}

// regionTable renders the vocabulary as a bordered table.
func regionTable() string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(anatomy.Vocabulary))
	for _, info := range anatomy.Vocabulary {
		source := "-"
		if p, ok := anatomy.BodyMap.Source(info.ID); ok {
			source = fmt.Sprintf("%.0f, %.0f", p.X, p.Y)
		}
		rows = append(rows, []string{
			info.ID,
			strings.Join(info.Aliases, ", "),
			source,
			info.Color,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Region", "Aliases", "Source (x, y)", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	return t.Render()
}
