package codec

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// Encode serializes g into the version 1 layout.
//
// A non-empty top-level point and a top-level two point line string use the
// header shortcuts; everything else is written with explicit figure and shape
// tables in depth-first order. The isValid flag is always set.
func Encode(g geom.T) ([]byte, error) {
	if g == nil {
		return nil, &ErrUnsupportedGeometryType{Name: "<nil>"}
	}

	layout := g.Layout()
	if layout == geom.NoLayout {
		layout = geom.XY
	}
	e := &encoder{layout: layout}

	flags := FlagIsValid
	if layout.ZIndex() >= 0 {
		flags |= FlagHasZ
	}
	if layout.MIndex() >= 0 {
		flags |= FlagHasM
	}

	switch g := g.(type) {
	case *geom.Point:
		if !g.Empty() {
			flags |= FlagSinglePoint
			e.coords = []geom.Coord{g.Coords()}
		}
	case *geom.LineString:
		if g.NumCoords() == 2 {
			flags |= FlagSingleLineSegment
			e.coords = g.Coords()
		}
	}

	if !flags.IsShortcut() {
		if err := e.walk(g, -1); err != nil {
			return nil, err
		}
	}

	if len(e.coords) > math.MaxInt32 {
		return nil, &ErrMalformedPayload{Reason: fmt.Sprintf("%d points do not fit the point count", len(e.coords))}
	}
	return e.write(int32(g.SRID()), flags), nil
}

type encoder struct {
	layout  geom.Layout
	coords  []geom.Coord
	figures []Figure
	shapes  []Shape
}

func (e *encoder) addShape(parent int32, t Type) int {
	e.shapes = append(e.shapes, Shape{ParentOffset: parent, FigureOffset: -1, Type: t})
	return len(e.shapes) - 1
}

func (e *encoder) addFigure(attr FigureAttribute, coords []geom.Coord) int32 {
	e.figures = append(e.figures, Figure{Attribute: attr, PointOffset: int32(len(e.coords))})
	e.coords = append(e.coords, coords...)
	return int32(len(e.figures) - 1)
}

// walk appends the shape for g and, depth first, the shapes of its members.
func (e *encoder) walk(g geom.T, parent int32) error {
	if !g.Empty() && g.Layout() != e.layout {
		return &ErrMalformedPayload{
			Reason: fmt.Sprintf("mixed layouts: %v inside %v", g.Layout(), e.layout),
		}
	}

	firstFigure := len(e.figures)

	switch g := g.(type) {
	case *geom.Point:
		i := e.addShape(parent, TypePoint)
		if !g.Empty() {
			e.shapes[i].FigureOffset = e.addFigure(FigureStroke, []geom.Coord{g.Coords()})
		}

	case *geom.LineString:
		i := e.addShape(parent, TypeLineString)
		if g.NumCoords() > 0 {
			e.shapes[i].FigureOffset = e.addFigure(FigureStroke, g.Coords())
		}

	case *geom.Polygon:
		i := e.addShape(parent, TypePolygon)
		for r := 0; r < g.NumLinearRings(); r++ {
			attr := FigureInteriorRing
			if r == 0 {
				attr = FigureExteriorRing
			}
			f := e.addFigure(attr, g.LinearRing(r).Coords())
			if r == 0 {
				e.shapes[i].FigureOffset = f
			}
		}

	case *geom.MultiPoint:
		i := e.addShape(parent, TypeMultiPoint)
		for j := 0; j < g.NumPoints(); j++ {
			if err := e.walk(g.Point(j), int32(i)); err != nil {
				return err
			}
		}
		e.setCollectionOffset(i, firstFigure)

	case *geom.MultiLineString:
		i := e.addShape(parent, TypeMultiLineString)
		for j := 0; j < g.NumLineStrings(); j++ {
			if err := e.walk(g.LineString(j), int32(i)); err != nil {
				return err
			}
		}
		e.setCollectionOffset(i, firstFigure)

	case *geom.MultiPolygon:
		i := e.addShape(parent, TypeMultiPolygon)
		for j := 0; j < g.NumPolygons(); j++ {
			if err := e.walk(g.Polygon(j), int32(i)); err != nil {
				return err
			}
		}
		e.setCollectionOffset(i, firstFigure)

	case *geom.GeometryCollection:
		i := e.addShape(parent, TypeGeometryCollection)
		for j, child := range g.Geoms() {
			if err := e.walk(child, int32(i)); err != nil {
				return fmt.Errorf("member %d: %w", j, err)
			}
		}
		e.setCollectionOffset(i, firstFigure)

	default:
		return &ErrUnsupportedGeometryType{Name: fmt.Sprintf("%T", g)}
	}

	return nil
}

// setCollectionOffset points a collection shape at its first descendant
// figure, or leaves it at -1 when no member added one.
func (e *encoder) setCollectionOffset(shape, firstFigure int) {
	if len(e.figures) > firstFigure {
		e.shapes[shape].FigureOffset = int32(firstFigure)
	}
}

func (e *encoder) write(srid int32, flags Flags) []byte {
	size := 10 + len(e.coords)*16 + len(e.figures)*5 + len(e.shapes)*9
	w := newWriter(size)

	w.writeInt32(srid)
	w.writeByte(Version)
	w.writeByte(byte(flags))

	shortcut := flags.IsShortcut()
	if !shortcut {
		w.writeInt32(int32(len(e.coords)))
	}

	for _, c := range e.coords {
		w.writeFloat64(c[0])
		w.writeFloat64(c[1])
	}
	if zi := e.layout.ZIndex(); zi >= 0 {
		for _, c := range e.coords {
			w.writeFloat64(c[zi])
		}
	}
	if mi := e.layout.MIndex(); mi >= 0 {
		for _, c := range e.coords {
			w.writeFloat64(c[mi])
		}
	}

	if shortcut {
		return w.bytes()
	}

	w.writeInt32(int32(len(e.figures)))
	for _, f := range e.figures {
		w.writeByte(byte(f.Attribute))
		w.writeInt32(f.PointOffset)
	}

	w.writeInt32(int32(len(e.shapes)))
	for _, s := range e.shapes {
		w.writeInt32(s.ParentOffset)
		w.writeInt32(s.FigureOffset)
		w.writeByte(byte(s.Type))
	}

	return w.bytes()
}
