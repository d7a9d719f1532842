package layout

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Plan - Computed Label Layout
// =============================================================================

// Plan is the result of one layout computation: a placement per region,
// keyed by region id. A Plan is produced fresh on every call and has no
// identity or lifetime beyond the call that created it.
//
// The format is the canonical serialization consumed by the rendering
// layer: for each entry it draws a marker at Source, a label at Anchor,
// and the Connector path between them.
type Plan struct {
	// Connector is the style applied to every entry in this plan.
	Connector ConnectorStyle `json:"connector"`

	// Entries maps region id to its placement.
	Entries map[string]Placement `json:"entries"`

	// Degraded lists the sides that required the compression fallback,
	// in left-before-right order. Empty for a fully honored layout.
	Degraded []Side `json:"degraded,omitempty"`
}

// Placement is one region's solved label position.
type Placement struct {
	ID   string `json:"id"`
	Side Side   `json:"side"`

	// Source is the region's marker point on the diagram.
	Source Point `json:"source"`

	// Anchor is the label position: the side's column x at the solved
	// label center y.
	Anchor Point `json:"anchor"`

	// LabelHeight is the label's estimated vertical extent.
	LabelHeight float64 `json:"label_height"`

	Text  string `json:"text,omitempty"`
	Tag   string `json:"tag,omitempty"`
	Color string `json:"color,omitempty"`

	// Connector links the anchor back to the source point.
	Connector Path `json:"path"`
}

// IsDegraded reports whether any side needed the compression fallback.
func (p *Plan) IsDegraded() bool { return len(p.Degraded) > 0 }

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan serializes a Plan to pretty-printed JSON bytes. Map keys
// are emitted in sorted order, so identical plans marshal to identical
// bytes.
func MarshalPlan(p Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalPlan deserializes JSON bytes into a Plan and checks the
// fields required for rendering.
func UnmarshalPlan(data []byte) (Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("unmarshal plan: %w", err)
	}

	if p.Connector == "" {
		p.Connector = ConnectorCurve
	}
	if !p.Connector.Valid() {
		return Plan{}, fmt.Errorf("plan has unknown connector style %q", p.Connector)
	}
	for id, entry := range p.Entries {
		if len(entry.Connector.Points) < 2 {
			return Plan{}, fmt.Errorf("entry %s has no connector path", id)
		}
	}

	return p, nil
}

// WritePlanFile writes a Plan to a JSON file.
func WritePlanFile(p Plan, path string) error {
	data, err := MarshalPlan(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadPlanFile reads a Plan from a JSON file.
func ReadPlanFile(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalPlan(data)
}
