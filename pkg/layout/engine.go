package layout

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/medvis/bodymap/pkg/observability"
)

// =============================================================================
// Region - Engine Input
// =============================================================================

// Region is one active anatomical entry to annotate.
type Region struct {
	// ID is the stable key from the fixed vocabulary.
	ID string

	// Source is the marker point, if the caller already resolved it.
	// When nil, the engine asks its GeometryProvider; a region that
	// resolves nowhere is dropped from the plan.
	Source *Point

	// Text is the free-form detail shown inside the label.
	Text string

	// Tag is a severity-like marker, opaque to the engine.
	Tag string

	// Color is a display key, opaque to the engine.
	Color string
}

// GeometryProvider maps a region id to its source point on the
// reference diagram. Implementations may be a static table, computed
// sub-shape bounds, or anything else; the engine only needs the lookup.
type GeometryProvider interface {
	// Source returns the normalized source point for id, and whether the
	// diagram resolves that id at all.
	Source(id string) (Point, bool)
}

// =============================================================================
// Engine - Layout Orchestrator
// =============================================================================

// Engine computes label placement plans. It is stateless between calls
// and safe to invoke on every change to the active-region set: repeated
// calls with identical inputs yield bit-identical plans.
type Engine struct {
	cfg    Config
	geo    GeometryProvider
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for degraded-layout and dropped-region
// diagnostics. Without it the engine stays silent.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine. The Config is validated here, once; a
// malformed Config (e.g. min_bound >= max_bound) fails fast at
// construction, never per call. geo may be nil if every Region carries
// its own Source.
func New(cfg Config, geo GeometryProvider, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		geo:    geo,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's layout parameters.
func (e *Engine) Config() Config { return e.cfg }

// Plan computes the label layout for the given active regions.
//
// Regions without a resolvable source point are dropped, not errored:
// the upstream classification set may reference vocabulary entries
// broader than what the current diagram resolves. Zero regions produce
// an empty plan. Plan never fails.
func (e *Engine) Plan(regions []Region) Plan {
	hooks := observability.Layout()
	hooks.OnLayoutStart(len(regions))
	start := time.Now()

	items := make([]*item, 0, len(regions))
	for _, r := range regions {
		src, ok := e.resolveSource(r)
		if !ok {
			hooks.OnRegionDropped(r.ID)
			e.logger.Debug("Dropping region with no source point", "region", r.ID)
			continue
		}
		items = append(items, &item{
			region:    r,
			source:    src,
			side:      sideFor(src.X, e.cfg.SideThreshold),
			preferred: math.Min(math.Max(src.Y, e.cfg.MinBound), e.cfg.MaxBound),
			height:    estimateHeight(r.Text, e.cfg),
		})
	}

	left, right := partition(items)

	plan := Plan{
		Connector: e.cfg.Connector,
		Entries:   make(map[string]Placement, len(items)),
	}
	for _, col := range []struct {
		side  Side
		items []*item
	}{
		{SideLeft, left},
		{SideRight, right},
	} {
		if solveColumn(col.items, e.cfg.MinBound, e.cfg.MaxBound, e.cfg.MinGap) {
			plan.Degraded = append(plan.Degraded, col.side)
			excess := requiredHeight(col.items, e.cfg.MinGap) - (e.cfg.MaxBound - e.cfg.MinBound)
			hooks.OnLayoutDegraded(string(col.side), excess)
			e.logger.Warn("Layout degraded: compressing label gap",
				"side", col.side, "labels", len(col.items), "excess", excess)
		}
		for _, it := range col.items {
			plan.Entries[it.region.ID] = e.place(it)
		}
	}

	hooks.OnLayoutComplete(len(plan.Entries), time.Since(start))
	return plan
}

// place assembles one region's plan entry from its solved column state.
func (e *Engine) place(it *item) Placement {
	columnX := e.cfg.LeftColumnX
	if it.side == SideRight {
		columnX = e.cfg.RightColumnX
	}
	anchor := Point{X: columnX, Y: it.center}

	return Placement{
		ID:          it.region.ID,
		Side:        it.side,
		Source:      it.source,
		Anchor:      anchor,
		LabelHeight: it.height,
		Text:        it.region.Text,
		Tag:         it.region.Tag,
		Color:       it.region.Color,
		Connector:   buildConnector(e.cfg.Connector, anchor, it.source, it.side, e.cfg.CurveBow),
	}
}

// resolveSource returns the region's source point, consulting the
// geometry provider when the region does not carry one.
func (e *Engine) resolveSource(r Region) (Point, bool) {
	if r.Source != nil {
		return *r.Source, true
	}
	if e.geo == nil {
		return Point{}, false
	}
	return e.geo.Source(r.ID)
}
