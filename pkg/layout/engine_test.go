package layout

import (
	"bytes"
	"strings"
	"testing"
)

// mapGeo is a static GeometryProvider for tests.
type mapGeo map[string]Point

func (g mapGeo) Source(id string) (Point, bool) {
	p, ok := g[id]
	return p, ok
}

var testGeo = mapGeo{
	"brain":   {X: 50, Y: 6},
	"heart":   {X: 47, Y: 30},
	"liver":   {X: 44, Y: 40},
	"stomach": {X: 52, Y: 41},
	"kidney":  {X: 56, Y: 45},
	"bladder": {X: 50, Y: 64},
}

func mustEngine(t *testing.T, cfg Config, geo GeometryProvider) *Engine {
	t.Helper()
	e, err := New(cfg, geo)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBound, cfg.MaxBound = 92, 8

	if _, err := New(cfg, testGeo); err == nil {
		t.Fatal("New() expected error for inverted bounds, got nil")
	}
}

func TestPlanEmpty(t *testing.T) {
	e := mustEngine(t, DefaultConfig(), testGeo)

	plan := e.Plan(nil)

	if len(plan.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(plan.Entries))
	}
	if plan.IsDegraded() {
		t.Error("IsDegraded() = true, want false")
	}
}

func TestPlanIdempotent(t *testing.T) {
	e := mustEngine(t, DefaultConfig(), testGeo)
	regions := []Region{
		{ID: "heart", Text: "mild inflammation around the valve"},
		{ID: "liver", Text: "elevated enzyme levels"},
		{ID: "kidney"},
		{ID: "bladder"},
	}

	first, err := MarshalPlan(e.Plan(regions))
	if err != nil {
		t.Fatalf("MarshalPlan() unexpected error: %v", err)
	}
	second, err := MarshalPlan(e.Plan(regions))
	if err != nil {
		t.Fatalf("MarshalPlan() unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different plans")
	}
}

func TestPlanDropsUnresolvedRegions(t *testing.T) {
	e := mustEngine(t, DefaultConfig(), testGeo)

	plan := e.Plan([]Region{
		{ID: "heart"},
		{ID: "spleen"}, // not in the geometry table
	})

	if len(plan.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(plan.Entries))
	}
	if _, ok := plan.Entries["spleen"]; ok {
		t.Error("unresolved region placed anyway")
	}
}

func TestPlanPrefersRegionOwnSource(t *testing.T) {
	e := mustEngine(t, DefaultConfig(), testGeo)

	own := Point{X: 70, Y: 55}
	plan := e.Plan([]Region{{ID: "heart", Source: &own}})

	entry := plan.Entries["heart"]
	if entry.Source != own {
		t.Errorf("Source = %v, want region's own %v", entry.Source, own)
	}
	if entry.Side != SideRight {
		t.Errorf("Side = %v, want right for x=70", entry.Side)
	}
}

func TestPlanSidesAndAnchors(t *testing.T) {
	cfg := DefaultConfig()
	e := mustEngine(t, cfg, testGeo)

	plan := e.Plan([]Region{
		{ID: "liver"},  // x=44 -> left
		{ID: "kidney"}, // x=56 -> right
	})

	liver := plan.Entries["liver"]
	if liver.Side != SideLeft || liver.Anchor.X != cfg.LeftColumnX {
		t.Errorf("liver side/anchor = %v/%v, want left/%v",
			liver.Side, liver.Anchor.X, cfg.LeftColumnX)
	}

	kidney := plan.Entries["kidney"]
	if kidney.Side != SideRight || kidney.Anchor.X != cfg.RightColumnX {
		t.Errorf("kidney side/anchor = %v/%v, want right/%v",
			kidney.Side, kidney.Anchor.X, cfg.RightColumnX)
	}
}

func TestPlanHonorsBoundsAndSpacing(t *testing.T) {
	cfg := DefaultConfig()
	e := mustEngine(t, cfg, testGeo)

	plan := e.Plan([]Region{
		{ID: "brain", Text: "pressure headaches reported daily"},
		{ID: "heart", Text: "mild inflammation around the valve"},
		{ID: "liver"},
		{ID: "stomach"},
		{ID: "kidney"},
		{ID: "bladder"},
	})

	if plan.IsDegraded() {
		t.Fatal("IsDegraded() = true, want false for this load")
	}

	bySide := map[Side][]Placement{}
	for _, entry := range plan.Entries {
		top := entry.Anchor.Y - entry.LabelHeight/2
		bottom := entry.Anchor.Y + entry.LabelHeight/2
		if top < cfg.MinBound || bottom > cfg.MaxBound {
			t.Errorf("%s extent [%v, %v] breaches bounds [%v, %v]",
				entry.ID, top, bottom, cfg.MinBound, cfg.MaxBound)
		}
		bySide[entry.Side] = append(bySide[entry.Side], entry)
	}

	for side, entries := range bySide {
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				a, b := entries[i], entries[j]
				if a.Anchor.Y > b.Anchor.Y {
					a, b = b, a
				}
				need := (a.LabelHeight+b.LabelHeight)/2 + cfg.MinGap
				if got := b.Anchor.Y - a.Anchor.Y; got < need-1e-9 {
					t.Errorf("%s side: %s and %s spaced %v, want >= %v",
						side, a.ID, b.ID, got, need)
				}
			}
		}
	}
}

func TestPlanDegradedOverload(t *testing.T) {
	cfg := DefaultConfig()
	e := mustEngine(t, cfg, testGeo)

	// Every label on the left side with three wrapped lines of text:
	// 6 * (6.5 + 3*3.2) + 5*4 = 116.6, well past the 84-unit span.
	long := strings.Repeat("chronic discomfort ", 4)
	left := Point{X: 30}
	regions := make([]Region, 0, 6)
	for i, id := range []string{"brain", "heart", "liver", "stomach", "kidney", "bladder"} {
		src := left
		src.Y = float64(10 + i*15)
		regions = append(regions, Region{ID: id, Source: &src, Text: long})
	}

	plan := e.Plan(regions)

	if !plan.IsDegraded() {
		t.Fatal("IsDegraded() = false, want true")
	}
	if len(plan.Degraded) != 1 || plan.Degraded[0] != SideLeft {
		t.Errorf("Degraded = %v, want [left]", plan.Degraded)
	}
	if len(plan.Entries) != 6 {
		t.Errorf("len(Entries) = %d, want 6; degradation must not drop labels", len(plan.Entries))
	}

	// Compression absorbs the excess as inter-label overlap; the labels
	// themselves never leave the bounds.
	const eps = 1e-9
	for id, entry := range plan.Entries {
		if entry.Anchor.Y < cfg.MinBound-eps || entry.Anchor.Y > cfg.MaxBound+eps {
			t.Errorf("%s center %v outside [%v, %v]",
				id, entry.Anchor.Y, cfg.MinBound, cfg.MaxBound)
		}
		if top := entry.Anchor.Y - entry.LabelHeight/2; top < cfg.MinBound-eps {
			t.Errorf("%s top %v breaches minBound %v", id, top, cfg.MinBound)
		}
		if bottom := entry.Anchor.Y + entry.LabelHeight/2; bottom > cfg.MaxBound+eps {
			t.Errorf("%s bottom %v breaches maxBound %v", id, bottom, cfg.MaxBound)
		}
	}
}

func TestPlanConnectorStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Connector = ConnectorElbow
	e := mustEngine(t, cfg, testGeo)

	plan := e.Plan([]Region{{ID: "heart"}, {ID: "kidney"}})

	if plan.Connector != ConnectorElbow {
		t.Errorf("plan.Connector = %v, want elbow", plan.Connector)
	}
	for id, entry := range plan.Entries {
		if entry.Connector.Kind != ConnectorElbow {
			t.Errorf("%s connector kind = %v, want elbow", id, entry.Connector.Kind)
		}
		if len(entry.Connector.Points) != 3 {
			t.Errorf("%s connector has %d points, want 3", id, len(entry.Connector.Points))
		}
		if entry.Connector.Points[0] != entry.Anchor {
			t.Errorf("%s connector does not start at the anchor", id)
		}
		if entry.Connector.Points[2] != entry.Source {
			t.Errorf("%s connector does not end at the source", id)
		}
	}
}
