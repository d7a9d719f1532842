package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/medvis/bodymap/pkg/anatomy"
	"github.com/medvis/bodymap/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newTUICmd creates the tui command for interactive layout preview.
func newTUICmd() *cobra.Command {
	var connector string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick regions interactively and preview their layout",
		Long: `Pick active regions from the vocabulary and preview the computed
label placement as a table. Useful for eyeballing how a combination of
regions lays out without writing a findings file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, connector)
		},
	}

	cmd.Flags().StringVar(&connector, "connector", "", "connector style: curve (default), elbow")

	return cmd
}

// runTUI runs the picker and, on confirmation, prints the plan table.
func runTUI(cmd *cobra.Command, connector string) error {
	cfg := layout.DefaultConfig()
	if connector != "" {
		cfg.Connector = layout.ConnectorStyle(connector)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	model := newRegionPickerModel()
	final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	picker := final.(regionPickerModel)
	if !picker.confirmed || len(picker.selection()) == 0 {
		printDetail("nothing selected")
		return nil
	}

	eng, err := layout.New(cfg, anatomy.BodyMap, layout.WithLogger(loggerFromContext(cmd.Context())))
	if err != nil {
		return err
	}

	regions := make([]layout.Region, 0, len(picker.selection()))
	for _, id := range picker.selection() {
		info, _ := anatomy.Info(id)
		regions = append(regions, layout.Region{ID: id, Color: info.Color})
	}

	plan := eng.Plan(regions)
	if plan.IsDegraded() {
		printWarning("Layout degraded: label gaps compressed on %s", sideList(plan.Degraded))
	}
	fmt.Println(planTable(plan))

	return nil
}

// =============================================================================
// regionPickerModel - Interactive region selection
// =============================================================================

// regionPickerModel is the bubbletea model for toggling active regions.
type regionPickerModel struct {
	ids       []string
	checked   map[string]bool
	cursor    int
	confirmed bool
}

func newRegionPickerModel() regionPickerModel {
	return regionPickerModel{
		ids:     anatomy.IDs(),
		checked: make(map[string]bool),
	}
}

// selection returns the checked region ids in vocabulary order.
func (m regionPickerModel) selection() []string {
	var sel []string
	for _, id := range m.ids {
		if m.checked[id] {
			sel = append(sel, id)
		}
	}
	return sel
}

func (m regionPickerModel) Init() tea.Cmd {
	return nil
}

func (m regionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.ids)-1 {
				m.cursor++
			}
		case " ", "x":
			id := m.ids[m.cursor]
			m.checked[id] = !m.checked[id]
		case "a":
			for _, id := range m.ids {
				m.checked[id] = true
			}
		case "n":
			m.checked = make(map[string]bool)
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m regionPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Active Regions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  n none  ⏎ preview  q quit"))
	b.WriteString("\n\n")

	for i, id := range m.ids {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.checked[id] {
			check = "[x]"
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, id)
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case m.checked[id]:
			b.WriteString(listNormalStyle.Render(line))
		default:
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d selected]", len(m.selection()))))

	return b.String()
}

// =============================================================================
// Plan Preview
// =============================================================================

// planTable renders a plan's placements, left column first, each side
// top to bottom.
func planTable(plan layout.Plan) string {
	entries := make([]layout.Placement, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Side != entries[j].Side {
			return entries[i].Side == layout.SideLeft
		}
		return entries[i].Anchor.Y < entries[j].Anchor.Y
	})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			string(e.Side),
			fmt.Sprintf("%.1f", e.Anchor.Y),
			fmt.Sprintf("%.1f", e.LabelHeight),
			fmt.Sprintf("%.0f, %.0f", e.Source.X, e.Source.Y),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Region", "Side", "Center", "Height", "Source").
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
