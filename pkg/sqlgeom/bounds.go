package sqlgeom

import (
	"github.com/twpayne/go-geom"
)

// Bounds is an axis-aligned bounding box in the units of the geometry's
// coordinate system.
type Bounds struct {
	MinX float64 // Western edge
	MinY float64 // Southern edge
	MaxX float64 // Eastern edge
	MaxY float64 // Northern edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, other.MinX),
		MinY: min(b.MinY, other.MinY),
		MaxX: max(b.MaxX, other.MaxX),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// BoundsOf returns the planar bounds of g. ok is false for empty geometries,
// which have no extent.
func BoundsOf(g geom.T) (b Bounds, ok bool) {
	if g == nil || g.Empty() {
		return Bounds{}, false
	}

	// go-geom cannot bound a collection that nests another collection, so
	// members are visited one by one.
	if gc, isCollection := g.(*geom.GeometryCollection); isCollection {
		for _, member := range gc.Geoms() {
			mb, memberOK := BoundsOf(member)
			if !memberOK {
				continue
			}
			if !ok {
				b, ok = mb, true
				continue
			}
			b = b.Union(mb)
		}
		return b, ok
	}

	gb := g.Bounds()
	return Bounds{
		MinX: gb.Min(0),
		MinY: gb.Min(1),
		MaxX: gb.Max(0),
		MaxY: gb.Max(1),
	}, true
}
