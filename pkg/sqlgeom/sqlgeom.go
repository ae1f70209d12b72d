package sqlgeom

import (
	"github.com/twpayne/go-geom"

	"github.com/beetlebugorg/sqlgeom/internal/codec"
)

// Codec decodes and encodes SQL Server spatial payloads.
//
// Create a codec with NewCodec. A Codec holds no mutable state and is safe
// for concurrent use.
type Codec interface {
	// Decode parses a serialized geometry and returns the go-geom value it
	// describes, with the payload's SRID attached.
	Decode(data []byte) (geom.T, error)

	// DecodeWithOptions decodes with custom options.
	//
	// Use DecodeOptions to reject payloads not flagged as valid.
	DecodeWithOptions(data []byte, opts DecodeOptions) (geom.T, error)

	// Encode serializes g. The SRID is taken from g.SRID().
	Encode(g geom.T) ([]byte, error)
}

// NewCodec creates a codec with default settings.
//
// Example:
//
//	c := sqlgeom.NewCodec()
//	g, err := c.Decode(columnValue)
func NewCodec() Codec {
	return &codecWrapper{}
}

// codecWrapper adapts the internal codec to the public interface
type codecWrapper struct{}

func (c *codecWrapper) Decode(data []byte) (geom.T, error) {
	return codec.Decode(data)
}

func (c *codecWrapper) DecodeWithOptions(data []byte, opts DecodeOptions) (geom.T, error) {
	if opts.RequireValid {
		if err := checkValid(data); err != nil {
			return nil, err
		}
	}
	return codec.Decode(data)
}

// checkValid reads the header and rejects payloads without the isValid flag.
func checkValid(data []byte) error {
	h, err := codec.ParseHeader(data)
	if err != nil {
		return err
	}
	if !h.Flags.IsValid() {
		return &ErrInvalidGeometry{SRID: h.SRID}
	}
	return nil
}

func (c *codecWrapper) Encode(g geom.T) ([]byte, error) {
	return codec.Encode(g)
}

var defaultCodec = NewCodec()

// Decode decodes data with the default codec.
func Decode(data []byte) (geom.T, error) {
	return defaultCodec.Decode(data)
}

// Encode encodes g with the default codec.
func Encode(g geom.T) ([]byte, error) {
	return defaultCodec.Encode(g)
}

// Header describes the fixed prefix of a payload.
type Header struct {
	SRID                int
	Version             int
	HasZ                bool
	HasM                bool
	IsValid             bool
	IsSinglePoint       bool
	IsSingleLineSegment bool
	PointCount          int
}

// ReadHeader reads only the header of a payload. It is cheap and does not
// look at coordinates or tables.
func ReadHeader(data []byte) (Header, error) {
	h, err := codec.ParseHeader(data)
	if err != nil {
		return Header{}, err
	}
	return convertHeader(h), nil
}

func convertHeader(h codec.Header) Header {
	return Header{
		SRID:                int(h.SRID),
		Version:             int(h.Version),
		HasZ:                h.Flags.HasZ(),
		HasM:                h.Flags.HasM(),
		IsValid:             h.Flags.IsValid(),
		IsSinglePoint:       h.Flags.IsSinglePoint(),
		IsSingleLineSegment: h.Flags.IsSingleLineSegment(),
		PointCount:          h.PointCount,
	}
}

// Info summarizes the structure of a payload without building a geometry.
type Info struct {
	Header
	Type     string // Root geometry type, e.g. "POLYGON"
	Figures  int    // Figure records, synthesized ones included
	Shapes   int    // Shape records, synthesized ones included
	Segments int    // Curve segment records
}

// Inspect parses data and reports its structure. Unlike Decode it succeeds
// for curve types, which makes it useful for triaging rows Decode rejects.
func Inspect(data []byte) (*Info, error) {
	p, err := codec.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Info{
		Header: convertHeader(codec.Header{
			SRID:       p.SRID,
			Version:    p.Version,
			Flags:      p.Flags,
			PointCount: len(p.Coordinates),
		}),
		Type:     p.RootType().String(),
		Figures:  len(p.Figures),
		Shapes:   len(p.Shapes),
		Segments: len(p.Segments),
	}, nil
}
