package codec

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Decode parses data and assembles the geometry it describes. The payload's
// SRID is attached to the returned value.
func Decode(data []byte) (geom.T, error) {
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Assemble(p)
}

// Assemble builds the geometry tree of a parsed payload, starting at shape 0.
func Assemble(p *Payload) (geom.T, error) {
	a := newAssembler(p)
	g, err := a.decode(0, p.RootType())
	if err != nil {
		return nil, err
	}
	return geom.SetSRID(g, int(p.SRID))
}

// assembler walks the shape table of one payload. Shapes and figures are
// flat arrays; parents and children are found by index arithmetic only.
type assembler struct {
	p         *Payload
	layout    geom.Layout
	sequences [][]Coordinate
}

func newAssembler(p *Payload) *assembler {
	layout := geom.XY
	if p.Flags.HasZ() {
		layout = geom.XYZ
	}
	return &assembler{
		p:         p,
		layout:    layout,
		sequences: BuildSequences(p),
	}
}

// decode dispatches on t, one arm per assemblable type.
func (a *assembler) decode(shape int, t Type) (geom.T, error) {
	switch t {
	case TypePoint:
		return a.point(shape)
	case TypeLineString:
		return a.lineString(shape)
	case TypePolygon:
		return a.polygon(shape)
	case TypeMultiPoint:
		return a.multiPoint(shape)
	case TypeMultiLineString:
		return a.multiLineString(shape)
	case TypeMultiPolygon:
		return a.multiPolygon(shape)
	case TypeGeometryCollection:
		return a.geometryCollection(shape)
	default:
		return nil, &ErrUnsupportedGeometryType{Type: t}
	}
}

func (a *assembler) point(shape int) (*geom.Point, error) {
	if a.p.Flags.IsSinglePoint() {
		return geom.NewPoint(a.layout).SetCoords(a.coord(a.p.Coordinates[0]))
	}

	s := a.p.Shapes[shape]
	// Only members of a collection carry a resolvable point here; a root
	// point outside the shortcut encoding is empty.
	if s.ParentOffset == -1 || s.FigureOffset == -1 {
		return geom.NewPointEmpty(a.layout), nil
	}
	start, end := a.p.figurePointRange(int(s.FigureOffset))
	if start == end {
		return geom.NewPointEmpty(a.layout), nil
	}
	return geom.NewPoint(a.layout).SetCoords(a.coord(a.p.Coordinates[start]))
}

func (a *assembler) lineString(shape int) (*geom.LineString, error) {
	s := a.p.Shapes[shape]
	if s.FigureOffset == -1 {
		return geom.NewLineString(a.layout), nil
	}
	return geom.NewLineString(a.layout).SetCoords(a.coords(a.sequences[s.FigureOffset]))
}

// polygon takes every figure from the shape's own figure offset up to the
// next shape that has figures. The first figure is the shell, the rest holes.
func (a *assembler) polygon(shape int) (*geom.Polygon, error) {
	s := a.p.Shapes[shape]
	if s.FigureOffset == -1 {
		return geom.NewPolygon(a.layout), nil
	}
	start, end := a.p.shapeFigureRange(shape)
	rings := make([][]geom.Coord, 0, end-start)
	for i := start; i < end; i++ {
		rings = append(rings, a.coords(a.sequences[i]))
	}
	return geom.NewPolygon(a.layout).SetCoords(rings)
}

func (a *assembler) multiPoint(shape int) (*geom.MultiPoint, error) {
	mp := geom.NewMultiPoint(a.layout)
	for _, child := range a.children(shape) {
		p, err := a.point(child)
		if err != nil {
			return nil, err
		}
		if err := mp.Push(p); err != nil {
			return nil, err
		}
	}
	return mp, nil
}

func (a *assembler) multiLineString(shape int) (*geom.MultiLineString, error) {
	mls := geom.NewMultiLineString(a.layout)
	for _, child := range a.children(shape) {
		ls, err := a.lineString(child)
		if err != nil {
			return nil, err
		}
		if err := mls.Push(ls); err != nil {
			return nil, err
		}
	}
	return mls, nil
}

func (a *assembler) multiPolygon(shape int) (*geom.MultiPolygon, error) {
	mp := geom.NewMultiPolygon(a.layout)
	for _, child := range a.children(shape) {
		p, err := a.polygon(child)
		if err != nil {
			return nil, err
		}
		if err := mp.Push(p); err != nil {
			return nil, err
		}
	}
	return mp, nil
}

func (a *assembler) geometryCollection(shape int) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if err := gc.SetLayout(a.layout); err != nil {
		return nil, err
	}
	for _, child := range a.children(shape) {
		g, err := a.decode(child, a.p.Shapes[child].Type)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", child, err)
		}
		if err := gc.Push(g); err != nil {
			return nil, err
		}
	}
	return gc, nil
}

// children returns the direct children of shape in table order. The whole
// rest of the table is scanned; children are not assumed to be contiguous.
func (a *assembler) children(shape int) []int {
	var out []int
	for i := shape + 1; i < len(a.p.Shapes); i++ {
		if int(a.p.Shapes[i].ParentOffset) == shape {
			out = append(out, i)
		}
	}
	return out
}

func (a *assembler) coord(c Coordinate) geom.Coord {
	if a.layout == geom.XYZ {
		return geom.Coord{c.X, c.Y, c.Z}
	}
	return geom.Coord{c.X, c.Y}
}

func (a *assembler) coords(seq []Coordinate) []geom.Coord {
	out := make([]geom.Coord, len(seq))
	for i, c := range seq {
		out[i] = a.coord(c)
	}
	return out
}
