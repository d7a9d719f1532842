package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medvis/bodymap/pkg/anatomy"
	"github.com/medvis/bodymap/pkg/layout"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRegionPickerToggleAndConfirm(t *testing.T) {
	m := newRegionPickerModel()

	// Toggle the first region, move down, toggle the second.
	updated, _ := m.Update(key(" "))
	m = updated.(regionPickerModel)
	updated, _ = m.Update(key("j"))
	m = updated.(regionPickerModel)
	updated, _ = m.Update(key("x"))
	m = updated.(regionPickerModel)

	sel := m.selection()
	if len(sel) != 2 {
		t.Fatalf("selection = %v, want 2 entries", sel)
	}
	ids := anatomy.IDs()
	if sel[0] != ids[0] || sel[1] != ids[1] {
		t.Errorf("selection = %v, want first two vocabulary entries", sel)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(regionPickerModel)
	if !m.confirmed {
		t.Error("enter did not confirm the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestRegionPickerSelectAllAndNone(t *testing.T) {
	m := newRegionPickerModel()

	updated, _ := m.Update(key("a"))
	m = updated.(regionPickerModel)
	if got, want := len(m.selection()), len(anatomy.IDs()); got != want {
		t.Errorf("select all: %d selected, want %d", got, want)
	}

	updated, _ = m.Update(key("n"))
	m = updated.(regionPickerModel)
	if got := len(m.selection()); got != 0 {
		t.Errorf("select none: %d selected, want 0", got)
	}
}

func TestRegionPickerCursorStaysInRange(t *testing.T) {
	m := newRegionPickerModel()

	updated, _ := m.Update(key("k"))
	m = updated.(regionPickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	for range anatomy.IDs() {
		updated, _ = m.Update(key("j"))
		m = updated.(regionPickerModel)
	}
	if want := len(anatomy.IDs()) - 1; m.cursor != want {
		t.Errorf("cursor = %d after overshoot, want %d", m.cursor, want)
	}
}

func TestRegionPickerView(t *testing.T) {
	m := newRegionPickerModel()
	updated, _ := m.Update(key(" "))
	m = updated.(regionPickerModel)

	view := m.View()
	for _, id := range anatomy.IDs() {
		if !strings.Contains(view, id) {
			t.Errorf("view missing region %q", id)
		}
	}
	if !strings.Contains(view, "[x]") {
		t.Error("view missing checked marker")
	}
}

func TestPlanTableListsEveryEntry(t *testing.T) {
	eng, err := layout.New(layout.DefaultConfig(), anatomy.BodyMap)
	if err != nil {
		t.Fatal(err)
	}
	plan := eng.Plan([]layout.Region{{ID: "heart"}, {ID: "liver"}, {ID: "kidney"}})

	out := planTable(plan)
	for id := range plan.Entries {
		if !strings.Contains(out, id) {
			t.Errorf("table missing entry %q", id)
		}
	}
}

func TestRegionTableListsVocabulary(t *testing.T) {
	out := regionTable()
	for _, id := range anatomy.IDs() {
		if !strings.Contains(out, id) {
			t.Errorf("table missing region %q", id)
		}
	}
}
