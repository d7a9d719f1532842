package layout

// Side identifies the layout column a region's label is placed in.
type Side string

// The two layout columns.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// sideFor assigns a source x coordinate to a column. A source strictly
// right of the threshold goes right; everything else, including a
// source exactly on the threshold, goes left. The tie-break is fixed so
// that partitioning is total, disjoint, and deterministic.
func sideFor(x, threshold float64) Side {
	if x > threshold {
		return SideRight
	}
	return SideLeft
}

// partition splits items into the two columns, preserving input order
// within each column.
func partition(items []*item) (left, right []*item) {
	for _, it := range items {
		if it.side == SideRight {
			right = append(right, it)
		} else {
			left = append(left, it)
		}
	}
	return left, right
}
