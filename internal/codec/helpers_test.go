package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// payloadBuilder assembles raw test payloads field by field.
type payloadBuilder struct {
	w *writer
}

func newPayload(srid int32, flags Flags) *payloadBuilder {
	b := &payloadBuilder{w: newWriter(64)}
	b.w.writeInt32(srid)
	b.w.writeByte(Version)
	b.w.writeByte(byte(flags))
	return b
}

func (b *payloadBuilder) count(n int32) *payloadBuilder {
	b.w.writeInt32(n)
	return b
}

func (b *payloadBuilder) raw(bs ...byte) *payloadBuilder {
	for _, v := range bs {
		b.w.writeByte(v)
	}
	return b
}

func (b *payloadBuilder) doubles(vs ...float64) *payloadBuilder {
	for _, v := range vs {
		b.w.writeFloat64(v)
	}
	return b
}

func (b *payloadBuilder) figure(attr FigureAttribute, pointOffset int32) *payloadBuilder {
	b.w.writeByte(byte(attr))
	b.w.writeInt32(pointOffset)
	return b
}

func (b *payloadBuilder) shape(parent, figureOffset int32, t Type) *payloadBuilder {
	b.w.writeInt32(parent)
	b.w.writeInt32(figureOffset)
	b.w.writeByte(byte(t))
	return b
}

func (b *payloadBuilder) bytes() []byte {
	return b.w.bytes()
}

// polygonWithHole is a 10x10 square with a triangular hole. Neither ring
// repeats its first point.
func polygonWithHole() []byte {
	return newPayload(4326, FlagIsValid).
		count(7).
		doubles(0, 0, 10, 0, 10, 10, 0, 10).
		doubles(2, 2, 4, 2, 4, 4).
		count(2).
		figure(FigureExteriorRing, 0).
		figure(FigureInteriorRing, 4).
		count(1).
		shape(-1, 0, TypePolygon).
		bytes()
}

func mustWKT(t *testing.T, g geom.T) string {
	t.Helper()
	s, err := wkt.Marshal(g)
	require.NoError(t, err)
	return s
}

func mustUnmarshalWKT(t *testing.T, s string) geom.T {
	t.Helper()
	g, err := wkt.Unmarshal(s)
	require.NoError(t, err)
	return g
}

// assertWKT compares g against the normalized form of want.
func assertWKT(t *testing.T, want string, g geom.T) {
	t.Helper()
	require.NotNil(t, g)
	require.Equal(t, mustWKT(t, mustUnmarshalWKT(t, want)), mustWKT(t, g))
}
