package codec

import (
	"fmt"
)

// Header is the fixed prefix of every payload plus the point count it
// declares or implies.
type Header struct {
	SRID       int32
	Version    byte
	Flags      Flags
	PointCount int
}

// tables holds the figure, shape and segment tables, read or synthesized.
type tables struct {
	figures  []Figure
	shapes   []Shape
	segments []Segment
}

// Parse decodes the structure of a serialized geometry.
//
// Reading is strictly forward and positional:
//
//	srid(4) version(1) flags(1) [pointCount(4)]
//	pointCount*(x(8) y(8)) [pointCount*z(8)] [pointCount*m(8)]
//	[figureCount(4) figures... shapeCount(4) shapes... [segmentCount(4) segments...]]
//
// Each stage parses into locals and the Payload is only assembled after all
// of them succeeded, so a failure never exposes a half-built structure.
func Parse(data []byte) (*Payload, error) {
	r := newReader(data)

	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	coords, err := parseCoordinates(r, h.PointCount)
	if err != nil {
		return nil, fmt.Errorf("coordinates: %w", err)
	}

	if h.Flags.HasZ() {
		if err := parseZ(r, coords); err != nil {
			return nil, fmt.Errorf("z values: %w", err)
		}
	}

	// M values are read to keep the cursor aligned, then dropped.
	if h.Flags.HasM() {
		if err := r.skipFloat64s(h.PointCount); err != nil {
			return nil, fmt.Errorf("m values: %w", err)
		}
	}

	var t tables
	switch {
	case h.Flags.IsSinglePoint():
		t = shortcutTables(TypePoint)
	case h.Flags.IsSingleLineSegment():
		t = shortcutTables(TypeLineString)
	default:
		t, err = parseTables(r)
		if err != nil {
			return nil, err
		}
	}

	p := &Payload{
		SRID:        h.SRID,
		Version:     h.Version,
		Flags:       h.Flags,
		Coordinates: coords,
		Figures:     t.figures,
		Shapes:      t.shapes,
		Segments:    t.segments,
	}
	if err := validatePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseHeader reads only the header and point count.
func ParseHeader(data []byte) (Header, error) {
	return parseHeader(newReader(data))
}

func parseHeader(r *reader) (Header, error) {
	var h Header
	var err error

	if h.SRID, err = r.readInt32(); err != nil {
		return Header{}, fmt.Errorf("srid: %w", err)
	}

	if h.Version, err = r.readByte(); err != nil {
		return Header{}, fmt.Errorf("version: %w", err)
	}
	if h.Version != Version {
		return Header{}, &ErrUnsupportedVersion{Version: h.Version}
	}

	flags, err := r.readByte()
	if err != nil {
		return Header{}, fmt.Errorf("flags: %w", err)
	}
	h.Flags = Flags(flags)

	switch {
	case h.Flags.IsSinglePoint():
		h.PointCount = 1
	case h.Flags.IsSingleLineSegment():
		h.PointCount = 2
	default:
		n, err := r.readInt32()
		if err != nil {
			return Header{}, fmt.Errorf("point count: %w", err)
		}
		if n < 0 {
			return Header{}, &ErrMalformedPayload{Reason: fmt.Sprintf("negative point count %d", n)}
		}
		h.PointCount = int(n)
	}

	return h, nil
}

// parseCoordinates reads the x/y block. The block size is checked before any
// allocation so a bogus point count cannot trigger a huge slice.
func parseCoordinates(r *reader, count int) ([]Coordinate, error) {
	if r.remaining()/16 < count {
		return nil, &ErrTruncatedInput{Offset: r.pos(), Need: count * 16, Have: r.remaining()}
	}
	coords := make([]Coordinate, count)
	for i := range coords {
		x, err := r.readFloat64()
		if err != nil {
			return nil, err
		}
		y, err := r.readFloat64()
		if err != nil {
			return nil, err
		}
		coords[i] = Coordinate{X: x, Y: y}
	}
	return coords, nil
}

// parseZ fills Z in index order. coords is local to Parse until it returns.
func parseZ(r *reader, coords []Coordinate) error {
	zs, err := r.readFloat64s(len(coords))
	if err != nil {
		return err
	}
	for i, z := range zs {
		coords[i].Z = z
	}
	return nil
}

func shortcutTables(t Type) tables {
	return tables{
		figures: []Figure{{Attribute: FigureStroke, PointOffset: 0}},
		shapes:  []Shape{{ParentOffset: -1, FigureOffset: 0, Type: t}},
	}
}

func parseTables(r *reader) (tables, error) {
	figures, err := parseFigures(r)
	if err != nil {
		return tables{}, fmt.Errorf("figures: %w", err)
	}

	shapes, err := parseShapes(r)
	if err != nil {
		return tables{}, fmt.Errorf("shapes: %w", err)
	}

	var segments []Segment
	if hasCompositeCurve(figures) {
		segments, err = parseSegments(r)
		if err != nil {
			return tables{}, fmt.Errorf("segments: %w", err)
		}
	}

	return tables{figures: figures, shapes: shapes, segments: segments}, nil
}

// readCount reads a table length and checks that the remaining input can
// hold that many records of recordSize bytes.
func readCount(r *reader, what string, recordSize int) (int, error) {
	n, err := r.readInt32()
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", what, err)
	}
	if n < 0 {
		return 0, &ErrMalformedPayload{Reason: fmt.Sprintf("negative %s count %d", what, n)}
	}
	if r.remaining()/recordSize < int(n) {
		return 0, &ErrTruncatedInput{Offset: r.pos(), Need: int(n) * recordSize, Have: r.remaining()}
	}
	return int(n), nil
}

// Figure record: attribute(1) pointOffset(4)
func parseFigures(r *reader) ([]Figure, error) {
	n, err := readCount(r, "figure", 5)
	if err != nil {
		return nil, err
	}
	figures := make([]Figure, n)
	for i := range figures {
		attr, err := r.readByte()
		if err != nil {
			return nil, err
		}
		offset, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		figures[i] = Figure{Attribute: FigureAttribute(attr), PointOffset: offset}
	}
	return figures, nil
}

// Shape record: parentOffset(4) figureOffset(4) type(1)
func parseShapes(r *reader) ([]Shape, error) {
	n, err := readCount(r, "shape", 9)
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, n)
	for i := range shapes {
		parent, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		figure, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		code, err := r.readByte()
		if err != nil {
			return nil, err
		}
		t, err := FindType(int(code))
		if err != nil {
			return nil, &ErrUnknownGeometryType{Shape: i, Code: int(code), Err: err}
		}
		shapes[i] = Shape{ParentOffset: parent, FigureOffset: figure, Type: t}
	}
	return shapes, nil
}

// Segment record: type(1)
func parseSegments(r *reader) ([]Segment, error) {
	n, err := readCount(r, "segment", 1)
	if err != nil {
		return nil, err
	}
	segments := make([]Segment, n)
	for i := range segments {
		code, err := r.readByte()
		if err != nil {
			return nil, err
		}
		s, err := FindSegment(int(code))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments[i] = Segment{Type: s}
	}
	return segments, nil
}
