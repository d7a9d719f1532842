package layout

// Point is a position in normalized percentage coordinates of the
// diagram's bounding box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ConnectorStyle selects how label anchors are linked back to their
// source points. One style applies uniformly to every region in a plan.
type ConnectorStyle string

// Supported connector styles.
const (
	// ConnectorCurve is a quadratic curve whose control point is offset
	// horizontally from the path's midpoint toward the label's side, so
	// the connector bows away from the body.
	ConnectorCurve ConnectorStyle = "curve"

	// ConnectorElbow is a two-segment path: vertical from the anchor to
	// an explicit midpoint, then diagonal to the source.
	ConnectorElbow ConnectorStyle = "elbow"
)

// Valid reports whether s is a supported connector style.
func (s ConnectorStyle) Valid() bool {
	return s == ConnectorCurve || s == ConnectorElbow
}

// Path describes a connector as an ordered point sequence from the
// label anchor to the region's source point.
//
// For "curve", Points is [anchor, control, source] of a quadratic
// curve. For "elbow", Points is [anchor, midpoint, source] of a
// two-segment polyline.
type Path struct {
	Kind   ConnectorStyle `json:"kind"`
	Points []Point        `json:"points"`
}

// buildConnector derives the path from anchor to source for the given
// column. Both styles route outward, toward the label's side, rather
// than crossing over the body.
func buildConnector(style ConnectorStyle, anchor, source Point, side Side, bow float64) Path {
	switch style {
	case ConnectorElbow:
		mid := Point{X: anchor.X, Y: (anchor.Y + source.Y) / 2}
		return Path{Kind: ConnectorElbow, Points: []Point{anchor, mid, source}}
	default:
		dir := 1.0
		if side == SideLeft {
			dir = -1.0
		}
		ctrl := Point{
			X: (anchor.X+source.X)/2 + dir*bow,
			Y: (anchor.Y + source.Y) / 2,
		}
		return Path{Kind: ConnectorCurve, Points: []Point{anchor, ctrl, source}}
	}
}
