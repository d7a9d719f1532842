package layout

import (
	"math"
	"sort"
)

// item is one region's layout state while a plan is being solved.
type item struct {
	region    Region
	source    Point
	side      Side
	preferred float64 // source y clamped to [MinBound, MaxBound]
	height    float64
	center    float64 // solved label center
}

// solveColumn places one column's labels. Items are sorted by preferred
// center, spaced apart by at least gap, and kept inside
// [minBound, maxBound]. The relative order of solved centers always
// equals the relative order of preferred centers.
//
// When the column's total required height exceeds the bound span, the
// gap is proportionally compressed, going negative once the labels
// alone outgrow the span; the bounds are never violated, and a residual
// overlap shared between adjacent labels is the accepted worst case.
// The return value reports whether that fallback was taken.
func solveColumn(items []*item, minBound, maxBound, gap float64) (degraded bool) {
	if len(items) == 0 {
		return false
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].preferred < items[j].preferred
	})

	spacingPasses(items, minBound, maxBound, gap)
	declutter(items, minBound, maxBound, gap)

	span := maxBound - minBound
	required := requiredHeight(items, gap)
	if required <= span {
		return false
	}

	// Compression fallback: shrink the gap so the column exactly fills
	// the span and re-run the spacing passes. When the labels alone
	// outgrow the span the gap goes negative; the labels are then tiled
	// from the top bound so the overlap is shared evenly between
	// neighbors and no center leaves the bounds.
	if len(items) == 1 {
		items[0].center = clampCenter(items[0].preferred, items[0].height, minBound, maxBound)
		return true
	}
	compressed := (span - totalHeight(items)) / float64(len(items)-1)
	if compressed >= 0 {
		spacingPasses(items, minBound, maxBound, compressed)
		return true
	}
	y := minBound
	for _, it := range items {
		it.center = y + it.height/2
		y += it.height + compressed
	}
	return true
}

// spacingPasses runs the deterministic placement passes: initial clamp,
// forward spacing, overflow correction with backward re-spacing, and
// underflow correction with forward re-spacing. Whenever the column's
// required height fits the span, the result honors both bounds and the
// gap.
func spacingPasses(items []*item, minBound, maxBound, gap float64) {
	for _, it := range items {
		it.center = clampCenter(it.preferred, it.height, minBound, maxBound)
	}

	forwardPass(items, gap)

	// Overflow: pin the last label to the upper bound and restore spacing
	// bottom to top, so only the labels crowding the bottom move up.
	last := items[len(items)-1]
	if last.center+last.height/2 > maxBound {
		last.center = maxBound - last.height/2
		backwardPass(items, gap)
	}

	// Underflow: the backward pass may push the top of a tight column
	// past the lower bound; pin the first label and re-space downward.
	first := items[0]
	if first.center-first.height/2 < minBound {
		first.center = minBound + first.height/2
		forwardPass(items, gap)
	}
}

// forwardPass enforces spacing top to bottom, pushing later items down.
func forwardPass(items []*item, gap float64) {
	for i := 1; i < len(items); i++ {
		prev, curr := items[i-1], items[i]
		need := (prev.height+curr.height)/2 + gap
		if curr.center-prev.center < need {
			curr.center = prev.center + need
		}
	}
}

// backwardPass enforces spacing bottom to top, pushing earlier items up.
func backwardPass(items []*item, gap float64) {
	for i := len(items) - 2; i >= 0; i-- {
		curr, next := items[i], items[i+1]
		need := (curr.height+next.height)/2 + gap
		if next.center-curr.center < need {
			curr.center = next.center - need
		}
	}
}

// declutter pushes each label whose center sits within its own height
// of the source marker further away, so the label never visually
// coincides with the marker. The push continues in the direction the
// label already diverged, defaulting to downward when the difference is
// exactly zero. The target is capped so the push never violates bounds
// or the spacing against the neighbors already in place.
func declutter(items []*item, minBound, maxBound, gap float64) {
	for i, it := range items {
		diff := it.center - it.preferred
		if math.Abs(diff) >= it.height {
			continue
		}

		target := it.preferred + it.height
		if diff < 0 {
			target = it.preferred - it.height
		}
		target = clampCenter(target, it.height, minBound, maxBound)

		if i > 0 {
			prev := items[i-1]
			if lo := prev.center + (prev.height+it.height)/2 + gap; target < lo {
				target = lo
			}
		}
		if i < len(items)-1 {
			next := items[i+1]
			if hi := next.center - (next.height+it.height)/2 - gap; target > hi {
				target = hi
			}
		}

		it.center = target
	}
}

// clampCenter clamps a label center so its extent fits inside the
// bounds. An item taller than the whole span is centered in it.
func clampCenter(center, height, minBound, maxBound float64) float64 {
	lo := minBound + height/2
	hi := maxBound - height/2
	if lo > hi {
		return (minBound + maxBound) / 2
	}
	return math.Min(math.Max(center, lo), hi)
}

// requiredHeight is the vertical space the column needs to honor gap.
func requiredHeight(items []*item, gap float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return totalHeight(items) + gap*float64(len(items)-1)
}

func totalHeight(items []*item) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.height
	}
	return sum
}
