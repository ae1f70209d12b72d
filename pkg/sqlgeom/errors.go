package sqlgeom

import (
	"fmt"

	"github.com/beetlebugorg/sqlgeom/internal/codec"
)

// Error types returned by the codec. They are aliases, so errors.As works
// with either name.
type (
	// ErrTruncatedInput indicates the payload ended before a required field.
	ErrTruncatedInput = codec.ErrTruncatedInput
	// ErrUnsupportedVersion indicates a serialization version other than 1.
	ErrUnsupportedVersion = codec.ErrUnsupportedVersion
	// ErrIllegalArgument indicates a geometry or segment code outside its
	// enumeration.
	ErrIllegalArgument = codec.ErrIllegalArgument
	// ErrUnknownGeometryType indicates a shape record with an unknown type
	// code. It unwraps to the ErrIllegalArgument from the lookup.
	ErrUnknownGeometryType = codec.ErrUnknownGeometryType
	// ErrUnsupportedGeometryType indicates a curve type, FullGlobe, or a
	// go-geom value with no serialized form.
	ErrUnsupportedGeometryType = codec.ErrUnsupportedGeometryType
	// ErrMalformedPayload indicates figure or shape tables that are
	// internally inconsistent.
	ErrMalformedPayload = codec.ErrMalformedPayload
	// ErrInvalidGeometry is returned by DecodeWithOptions when RequireValid
	// is set and the producer did not mark the value as valid.
	ErrInvalidGeometry = codec.ErrInvalidGeometry
)

// RowError reports a row that failed to decode.
type RowError struct {
	ID  string // Row identifier as given in Row.ID
	Err error  // Underlying codec error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %s: %v", e.ID, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
