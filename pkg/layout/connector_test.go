package layout

import "testing"

func TestBuildConnectorCurve(t *testing.T) {
	anchor := Point{X: 90, Y: 40}
	source := Point{X: 60, Y: 30}

	path := buildConnector(ConnectorCurve, anchor, source, SideRight, 8)

	if path.Kind != ConnectorCurve {
		t.Errorf("Kind = %v, want %v", path.Kind, ConnectorCurve)
	}
	if len(path.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(path.Points))
	}
	if path.Points[0] != anchor || path.Points[2] != source {
		t.Errorf("endpoints = %v, %v; want %v, %v",
			path.Points[0], path.Points[2], anchor, source)
	}

	// Control point sits at the midpoint bowed outward: right side adds
	// the bow to the midpoint x.
	want := Point{X: (90+60)/2.0 + 8, Y: 35}
	if path.Points[1] != want {
		t.Errorf("control = %v, want %v", path.Points[1], want)
	}
}

func TestBuildConnectorCurveBowsLeft(t *testing.T) {
	anchor := Point{X: 10, Y: 40}
	source := Point{X: 40, Y: 30}

	path := buildConnector(ConnectorCurve, anchor, source, SideLeft, 8)

	want := Point{X: (10+40)/2.0 - 8, Y: 35}
	if path.Points[1] != want {
		t.Errorf("control = %v, want %v", path.Points[1], want)
	}
}

func TestBuildConnectorElbow(t *testing.T) {
	anchor := Point{X: 10, Y: 60}
	source := Point{X: 45, Y: 20}

	path := buildConnector(ConnectorElbow, anchor, source, SideLeft, 8)

	if path.Kind != ConnectorElbow {
		t.Errorf("Kind = %v, want %v", path.Kind, ConnectorElbow)
	}
	if len(path.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(path.Points))
	}

	// Midpoint keeps the anchor x: vertical segment first, then the
	// diagonal to the source.
	want := Point{X: 10, Y: 40}
	if path.Points[1] != want {
		t.Errorf("midpoint = %v, want %v", path.Points[1], want)
	}
}

func TestConnectorStyleValid(t *testing.T) {
	tests := []struct {
		style ConnectorStyle
		want  bool
	}{
		{ConnectorCurve, true},
		{ConnectorElbow, true},
		{"", false},
		{"spline", false},
	}

	for _, tt := range tests {
		if got := tt.style.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}
