package codec

import (
	"fmt"
)

// ErrTruncatedInput indicates the buffer ended before a required field
type ErrTruncatedInput struct {
	Offset int // Cursor position of the failed read
	Need   int // Bytes required by the read
	Have   int // Bytes remaining at Offset
}

func (e *ErrTruncatedInput) Error() string {
	return fmt.Sprintf("truncated input at offset %d: need %d bytes, have %d",
		e.Offset, e.Need, e.Have)
}

// ErrUnsupportedVersion indicates a serialization version other than 1
type ErrUnsupportedVersion struct {
	Version byte
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported serialization version %d (want %d)", e.Version, Version)
}

// ErrIllegalArgument indicates a code outside one of the closed enumerations
type ErrIllegalArgument struct {
	Enum string // "geometry type" or "segment type"
	Code int
}

func (e *ErrIllegalArgument) Error() string {
	return fmt.Sprintf("illegal %s code: %d", e.Enum, e.Code)
}

// ErrUnknownGeometryType indicates a shape record carried an unknown type code
type ErrUnknownGeometryType struct {
	Shape int // Index of the offending shape record
	Code  int
	Err   error // Lookup failure from FindType
}

func (e *ErrUnknownGeometryType) Error() string {
	return fmt.Sprintf("shape %d: unknown geometry type code %d", e.Shape, e.Code)
}

func (e *ErrUnknownGeometryType) Unwrap() error {
	return e.Err
}

// ErrUnsupportedGeometryType indicates a known type that cannot be assembled
// or encoded (curve types, full globe, go-geom values with no wire form).
type ErrUnsupportedGeometryType struct {
	Type Type   // Set when the type came from the wire
	Name string // Set when the type came from a go-geom value
}

func (e *ErrUnsupportedGeometryType) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unsupported geometry type: %s", e.Name)
	}
	return fmt.Sprintf("unsupported geometry type: %v", e.Type)
}

// ErrMalformedPayload indicates figure/shape tables that violate the
// structural invariants of the format
type ErrMalformedPayload struct {
	Reason string
}

func (e *ErrMalformedPayload) Error() string {
	return fmt.Sprintf("malformed payload: %s", e.Reason)
}

// ErrInvalidGeometry indicates the producer marked the geometry as invalid
type ErrInvalidGeometry struct {
	SRID int32
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("geometry (SRID %d) is flagged invalid by its producer", e.SRID)
}
