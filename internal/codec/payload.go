package codec

// Version is the only serialization layout this package understands.
const Version = 1

// Flags is the serialization properties byte of the header.
type Flags byte

const (
	FlagHasZ              Flags = 1 << 0
	FlagHasM              Flags = 1 << 1
	FlagIsValid           Flags = 1 << 2
	FlagSinglePoint       Flags = 1 << 3
	FlagSingleLineSegment Flags = 1 << 4
)

func (f Flags) HasZ() bool { return f&FlagHasZ != 0 }
func (f Flags) HasM() bool { return f&FlagHasM != 0 }
func (f Flags) IsValid() bool { return f&FlagIsValid != 0 }
func (f Flags) IsSinglePoint() bool { return f&FlagSinglePoint != 0 }
func (f Flags) IsSingleLineSegment() bool { return f&FlagSingleLineSegment != 0 }

// IsShortcut reports whether the figure and shape tables are implied.
func (f Flags) IsShortcut() bool {
	return f.IsSinglePoint() || f.IsSingleLineSegment()
}

// FigureAttribute controls how a figure's points are interpreted.
type FigureAttribute byte

const (
	FigureInteriorRing   FigureAttribute = 0
	FigureStroke         FigureAttribute = 1
	FigureExteriorRing   FigureAttribute = 2
	FigureCompositeCurve FigureAttribute = 3
)

// closesRing reports whether sequences of this figure must be closed.
func (a FigureAttribute) closesRing() bool {
	return a == FigureInteriorRing || a == FigureExteriorRing
}

// Coordinate is one decoded position. M values have no home in the output
// model and are dropped during parsing.
type Coordinate struct {
	X, Y, Z float64
}

// equals2D compares planar position only; Z does not take part in ring closure.
func (c Coordinate) equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Figure is a run of coordinates starting at PointOffset.
type Figure struct {
	Attribute   FigureAttribute
	PointOffset int32
}

// Shape is one node of the geometry hierarchy. ParentOffset and FigureOffset
// are indices into the shape and figure tables, -1 when absent.
type Shape struct {
	ParentOffset int32
	FigureOffset int32
	Type         Type
}

// Segment is one curve piece of a composite curve figure.
type Segment struct {
	Type SegmentType
}

// Payload is the fully parsed structure of one serialized geometry.
// The parser builds it in one piece once every stage has succeeded; nothing
// mutates it afterwards.
type Payload struct {
	SRID        int32
	Version     byte
	Flags       Flags
	Coordinates []Coordinate
	Figures     []Figure
	Shapes      []Shape
	Segments    []Segment
}

// HasSegments reports whether any figure is a composite curve.
func (p *Payload) HasSegments() bool {
	return hasCompositeCurve(p.Figures)
}

// RootType is the type the assembler starts from.
func (p *Payload) RootType() Type {
	switch {
	case p.Flags.IsSinglePoint():
		return TypePoint
	case p.Flags.IsSingleLineSegment():
		return TypeLineString
	default:
		return p.Shapes[0].Type
	}
}

// figurePointRange returns the [start, end) coordinate range of figure i.
func (p *Payload) figurePointRange(i int) (int, int) {
	start := int(p.Figures[i].PointOffset)
	end := len(p.Coordinates)
	if i+1 < len(p.Figures) {
		end = int(p.Figures[i+1].PointOffset)
	}
	return start, end
}

// shapeFigureRange returns the [start, end) figure range owned by shape i.
// The range ends at the next following shape that has figures.
func (p *Payload) shapeFigureRange(i int) (int, int) {
	start := int(p.Shapes[i].FigureOffset)
	end := len(p.Figures)
	for j := i + 1; j < len(p.Shapes); j++ {
		if off := p.Shapes[j].FigureOffset; off >= 0 {
			end = int(off)
			break
		}
	}
	return start, end
}

func hasCompositeCurve(figures []Figure) bool {
	for _, f := range figures {
		if f.Attribute == FigureCompositeCurve {
			return true
		}
	}
	return false
}
