package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "single point",
			data: newPayload(4326, FlagIsValid|FlagSinglePoint).doubles(3, 4).bytes(),
			want: "POINT (3 4)",
		},
		{
			name: "single point z",
			data: newPayload(0, FlagSinglePoint|FlagHasZ).doubles(1, 2, 3).bytes(),
			want: "POINT Z (1 2 3)",
		},
		{
			name: "single line segment",
			data: newPayload(0, FlagSingleLineSegment).doubles(0, 0, 5, 5).bytes(),
			want: "LINESTRING (0 0, 5 5)",
		},
		{
			name: "polygon with hole",
			data: polygonWithHole(),
			want: "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 2))",
		},
		{
			name: "root point without shortcut",
			data: newPayload(0, FlagIsValid).
				count(1).doubles(1, 2).
				count(1).figure(FigureStroke, 0).
				count(1).shape(-1, 0, TypePoint).
				bytes(),
			want: "POINT EMPTY",
		},
		{
			name: "line string without figure",
			data: newPayload(0, FlagIsValid).
				count(0).count(0).
				count(1).shape(-1, -1, TypeLineString).
				bytes(),
			want: "LINESTRING EMPTY",
		},
		{
			name: "polygon without figure",
			data: newPayload(0, FlagIsValid).
				count(0).count(0).
				count(1).shape(-1, -1, TypePolygon).
				bytes(),
			want: "POLYGON EMPTY",
		},
		{
			name: "multipoint with empty member",
			data: newPayload(0, FlagIsValid).
				count(2).doubles(1, 2, 3, 4).
				count(2).figure(FigureStroke, 0).figure(FigureStroke, 1).
				count(4).
				shape(-1, 0, TypeMultiPoint).
				shape(0, 0, TypePoint).
				shape(0, -1, TypePoint).
				shape(0, 1, TypePoint).
				bytes(),
			want: "MULTIPOINT (1 2, EMPTY, 3 4)",
		},
		{
			name: "multilinestring",
			data: newPayload(0, FlagIsValid).
				count(5).doubles(0, 0, 1, 1, 2, 2, 3, 3, 4, 4).
				count(2).figure(FigureStroke, 0).figure(FigureStroke, 2).
				count(3).
				shape(-1, 0, TypeMultiLineString).
				shape(0, 0, TypeLineString).
				shape(0, 1, TypeLineString).
				bytes(),
			want: "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))",
		},
		{
			name: "multipolygon with empty member",
			data: newPayload(0, FlagIsValid).
				count(10).
				doubles(0, 0, 10, 0, 10, 10, 0, 10).
				doubles(2, 2, 4, 2, 4, 4).
				doubles(20, 20, 30, 20, 30, 30).
				count(3).
				figure(FigureExteriorRing, 0).
				figure(FigureInteriorRing, 4).
				figure(FigureExteriorRing, 7).
				count(4).
				shape(-1, 0, TypeMultiPolygon).
				shape(0, 0, TypePolygon).
				shape(0, -1, TypePolygon).
				shape(0, 2, TypePolygon).
				bytes(),
			want: "MULTIPOLYGON (((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 2)), EMPTY, ((20 20, 30 20, 30 30, 20 20)))",
		},
		{
			name: "collection with nested members",
			data: newPayload(0, FlagIsValid).
				count(4).doubles(0, 0, 1, 1, 5, 5, 6, 6).
				count(3).
				figure(FigureStroke, 0).
				figure(FigureStroke, 1).
				figure(FigureStroke, 2).
				count(5).
				shape(-1, 0, TypeGeometryCollection).
				shape(0, 0, TypeMultiPoint).
				shape(1, 0, TypePoint).
				shape(1, 1, TypePoint).
				shape(0, 2, TypeLineString).
				bytes(),
			want: "GEOMETRYCOLLECTION (MULTIPOINT (0 0, 1 1), LINESTRING (5 5, 6 6))",
		},
		{
			name: "empty collection",
			data: newPayload(0, FlagIsValid).
				count(0).count(0).
				count(1).shape(-1, -1, TypeGeometryCollection).
				bytes(),
			want: "GEOMETRYCOLLECTION EMPTY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(tt.data)
			require.NoError(t, err)
			assertWKT(t, tt.want, g)
		})
	}
}

func TestDecodeSRID(t *testing.T) {
	g, err := Decode(polygonWithHole())
	require.NoError(t, err)

	poly, ok := g.(*geom.Polygon)
	require.True(t, ok, "got %T", g)
	assert.Equal(t, 4326, poly.SRID())
	assert.Equal(t, geom.XY, poly.Layout())
}

func TestDecodeChildrenInTableOrder(t *testing.T) {
	// The second member of the collection comes after a grandchild, so the
	// members are not contiguous in the shape table.
	data := newPayload(0, FlagIsValid).
		count(3).doubles(1, 1, 2, 2, 3, 3).
		count(3).
		figure(FigureStroke, 0).
		figure(FigureStroke, 1).
		figure(FigureStroke, 2).
		count(5).
		shape(-1, 0, TypeGeometryCollection).
		shape(0, 0, TypeGeometryCollection).
		shape(1, 0, TypePoint).
		shape(0, 1, TypePoint).
		shape(1, 2, TypePoint).
		bytes()

	g, err := Decode(data)
	require.NoError(t, err)

	gc := g.(*geom.GeometryCollection)
	require.Equal(t, 2, gc.NumGeoms())
	assertWKT(t, "GEOMETRYCOLLECTION (POINT (1 1), POINT (3 3))", gc.Geom(0))
	assertWKT(t, "POINT (2 2)", gc.Geom(1))
}

func TestDecodeCurveTypes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Type
	}{
		{
			name: "root circular string",
			data: newPayload(0, FlagIsValid).
				count(3).doubles(0, 0, 1, 1, 2, 0).
				count(1).figure(FigureStroke, 0).
				count(1).shape(-1, 0, TypeCircularString).
				bytes(),
			want: TypeCircularString,
		},
		{
			name: "curve polygon inside collection",
			data: newPayload(0, FlagIsValid).
				count(3).doubles(0, 0, 1, 1, 2, 0).
				count(1).figure(FigureExteriorRing, 0).
				count(2).
				shape(-1, 0, TypeGeometryCollection).
				shape(0, 0, TypeCurvePolygon).
				bytes(),
			want: TypeCurvePolygon,
		},
		{
			name: "full globe",
			data: newPayload(4326, FlagIsValid).
				count(0).count(0).
				count(1).shape(-1, -1, TypeFullGlobe).
				bytes(),
			want: TypeFullGlobe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(tt.data)
			assert.Nil(t, g)

			var unsupported *ErrUnsupportedGeometryType
			require.True(t, errors.As(err, &unsupported), "got %v", err)
			assert.Equal(t, tt.want, unsupported.Type)
		})
	}
}

func TestDecodeMultipointZ(t *testing.T) {
	data := newPayload(0, FlagIsValid|FlagHasZ).
		count(2).doubles(1, 2, 3, 4).doubles(5, 6).
		count(2).figure(FigureStroke, 0).figure(FigureStroke, 1).
		count(3).
		shape(-1, 0, TypeMultiPoint).
		shape(0, 0, TypePoint).
		shape(0, 1, TypePoint).
		bytes()

	g, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, geom.XYZ, g.Layout())
	assertWKT(t, "MULTIPOINT Z (1 2 5, 3 4 6)", g)
}
