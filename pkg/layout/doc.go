// Package layout computes annotation label placements for a fixed 2D
// body diagram.
//
// Given a set of active anatomical regions, each with a source point in
// normalized percentage coordinates and an optional free-text detail,
// the engine produces a Plan: for every region a label anchor on the
// left or right column, a label extent derived from its text, and a
// connector path from the anchor back to the source point.
//
// # Pipeline
//
// One Plan call runs, per side, the stages:
//
//  1. Partition regions into left/right columns by source x.
//  2. Estimate each label's vertical extent from its text.
//  3. Solve collision-free label centers inside the vertical bounds,
//     preserving the top-to-bottom order of the source points.
//  4. Build a connector path per region in the configured style.
//
// The engine is a pure function of its inputs: it holds no state
// between calls, performs no I/O, and produces bit-identical plans for
// identical inputs. It never fails after construction; degenerate
// inputs (no regions, empty text) yield a minimal plan, and geometric
// overflow degrades gracefully by compressing the inter-label gap.
//
// # Usage
//
//	eng, err := layout.New(layout.DefaultConfig(), anatomy.BodyMap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan := eng.Plan(regions)
//	for id, p := range plan.Entries {
//	    draw(p.Source, p.Anchor, p.Connector)
//	}
package layout
