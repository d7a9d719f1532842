package anatomy

import "github.com/medvis/bodymap/pkg/layout"

// StaticGeometry is a fixed id → source point table implementing
// layout.GeometryProvider. It is the simplest provider; callers with a
// live diagram can substitute one that queries realized sub-shape
// bounds instead.
type StaticGeometry map[string]layout.Point

// Source implements layout.GeometryProvider.
func (g StaticGeometry) Source(id string) (layout.Point, bool) {
	p, ok := g[id]
	return p, ok
}

// BodyMap holds the source points of every vocabulary region on the
// reference front-view body diagram, in normalized percentage
// coordinates of its bounding box. Anatomical left/right is mirrored,
// as the diagram faces the viewer.
var BodyMap = StaticGeometry{
	"brain":     {X: 50, Y: 6},
	"sinuses":   {X: 48, Y: 10},
	"throat":    {X: 50, Y: 16},
	"bronchi":   {X: 51, Y: 24},
	"lungs":     {X: 44, Y: 28},
	"heart":     {X: 53, Y: 31},
	"liver":     {X: 45, Y: 40},
	"stomach":   {X: 55, Y: 41},
	"pancreas":  {X: 52, Y: 45},
	"kidney":    {X: 58, Y: 48},
	"intestine": {X: 50, Y: 56},
	"bladder":   {X: 50, Y: 64},
}
