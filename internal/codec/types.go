package codec

// Type is the OpenGIS geometry type code stored in a shape record.
type Type byte

const (
	TypePoint              Type = 1
	TypeLineString         Type = 2
	TypePolygon            Type = 3
	TypeMultiPoint         Type = 4
	TypeMultiLineString    Type = 5
	TypeMultiPolygon       Type = 6
	TypeGeometryCollection Type = 7
	// Curve types are declared by the format but cannot be assembled.
	TypeCircularString Type = 8
	TypeCompoundCurve  Type = 9
	TypeCurvePolygon   Type = 10
	TypeFullGlobe      Type = 11
)

var typeNames = map[Type]string{
	TypePoint:              "POINT",
	TypeLineString:         "LINESTRING",
	TypePolygon:            "POLYGON",
	TypeMultiPoint:         "MULTIPOINT",
	TypeMultiLineString:    "MULTILINESTRING",
	TypeMultiPolygon:       "MULTIPOLYGON",
	TypeGeometryCollection: "GEOMETRYCOLLECTION",
	TypeCircularString:     "CIRCULARSTRING",
	TypeCompoundCurve:      "COMPOUNDCURVE",
	TypeCurvePolygon:       "CURVEPOLYGON",
	TypeFullGlobe:          "FULLGLOBE",
}

// FindType maps a wire code to its Type. Codes outside 1-11 are rejected,
// never coerced.
func FindType(code int) (Type, error) {
	if code < int(TypePoint) || code > int(TypeFullGlobe) {
		return 0, &ErrIllegalArgument{Enum: "geometry type", Code: code}
	}
	return Type(code), nil
}

// String returns the OGC name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsCurve reports whether t is one of the curve-only types.
func (t Type) IsCurve() bool {
	return t >= TypeCircularString && t <= TypeFullGlobe
}

// SegmentType is the kind of a curve piece in a composite curve figure.
type SegmentType byte

const (
	SegmentLine      SegmentType = 0
	SegmentArc       SegmentType = 1
	SegmentFirstLine SegmentType = 2
	SegmentFirstArc  SegmentType = 3
)

// FindSegment maps a wire code to its SegmentType.
func FindSegment(code int) (SegmentType, error) {
	if code < int(SegmentLine) || code > int(SegmentFirstArc) {
		return 0, &ErrIllegalArgument{Enum: "segment type", Code: code}
	}
	return SegmentType(code), nil
}

// String returns the segment kind name.
func (s SegmentType) String() string {
	switch s {
	case SegmentLine:
		return "LINE"
	case SegmentArc:
		return "ARC"
	case SegmentFirstLine:
		return "FIRST_LINE"
	case SegmentFirstArc:
		return "FIRST_ARC"
	default:
		return "UNKNOWN"
	}
}
