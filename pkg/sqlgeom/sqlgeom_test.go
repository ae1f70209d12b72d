package sqlgeom

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

// pointHex is POINT (3 4) in SRID 4326 as SQL Server prints it.
const pointHex = "0xE6100000010C00000000000008400000000000001040"

// compoundCurveHex is a two point COMPOUNDCURVE with one FIRST_LINE segment.
const compoundCurveHex = "00000000" + "01" + "04" + "02000000" +
	"0000000000000000" + "0000000000000000" +
	"000000000000F03F" + "000000000000F03F" +
	"01000000" + "03" + "00000000" +
	"01000000" + "FFFFFFFF" + "00000000" + "09" +
	"01000000" + "02"

func mustFromWKT(t testing.TB, s string, srid int) geom.T {
	t.Helper()
	g, err := FromWKT(s)
	require.NoError(t, err)
	g, err = geom.SetSRID(g, srid)
	require.NoError(t, err)
	return g
}

func mustEncode(t testing.TB, s string, srid int) []byte {
	t.Helper()
	data, err := Encode(mustFromWKT(t, s, srid))
	require.NoError(t, err)
	return data
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"prefixed", pointHex},
		{"upper prefix", "0X" + pointHex[2:]},
		{"bare", pointHex[2:]},
		{"lower case", "0xe6100000010c00000000000008400000000000001040"},
		{"surrounding space", "  " + pointHex + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DecodeHex(tt.input)
			require.NoError(t, err)

			text, err := ToWKT(g)
			require.NoError(t, err)
			assert.Equal(t, "POINT (3 4)", text)
			assert.Equal(t, 4326, g.SRID())
		})
	}
}

func TestDecodeHexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"odd length", pointHex[:len(pointHex)-1]},
		{"not hex", "0xZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DecodeHex(tt.input)
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}

func TestEncodeHex(t *testing.T) {
	s, err := EncodeHex(mustFromWKT(t, "POINT (3 4)", 4326))
	require.NoError(t, err)
	assert.Equal(t, pointHex, s)
}

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec()
	for _, s := range []string{
		"POINT (1 2)",
		"LINESTRING (0 0, 1 1, 2 2)",
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 4 2, 4 4, 2 2))",
		"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))",
		"GEOMETRYCOLLECTION (POINT (1 2), LINESTRING (3 4, 5 6))",
	} {
		t.Run(s, func(t *testing.T) {
			data, err := c.Encode(mustFromWKT(t, s, 3857))
			require.NoError(t, err)

			g, err := c.Decode(data)
			require.NoError(t, err)

			text, err := ToWKT(g)
			require.NoError(t, err)
			assert.Equal(t, s, text)
			assert.Equal(t, 3857, g.SRID())
		})
	}
}

func TestDecodeWithOptionsRequireValid(t *testing.T) {
	valid := mustEncode(t, "LINESTRING (0 0, 1 1, 2 2)", 4326)

	invalid := append([]byte(nil), valid...)
	invalid[5] &^= 0x04 // clear isValid

	c := NewCodec()
	opts := DecodeOptions{RequireValid: true}

	_, err := c.DecodeWithOptions(valid, opts)
	assert.NoError(t, err)

	g, err := c.DecodeWithOptions(invalid, opts)
	assert.Nil(t, g)
	var invalidErr *ErrInvalidGeometry
	require.True(t, errors.As(err, &invalidErr), "got %v", err)
	assert.Equal(t, int32(4326), invalidErr.SRID)

	// Without the option the flag is informational only.
	_, err = c.DecodeWithOptions(invalid, DefaultDecodeOptions())
	assert.NoError(t, err)
}

func TestReadHeader(t *testing.T) {
	data := mustEncode(t, "POLYGON Z ((0 0 1, 1 0 1, 1 1 1, 0 0 1))", 4326)

	h, err := ReadHeader(data)
	require.NoError(t, err)

	assert.Equal(t, Header{
		SRID:       4326,
		Version:    1,
		HasZ:       true,
		IsValid:    true,
		PointCount: 4,
	}, h)
}

func TestInspect(t *testing.T) {
	data, err := hex.DecodeString(compoundCurveHex)
	require.NoError(t, err)

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, "COMPOUNDCURVE", info.Type)
	assert.Equal(t, 1, info.Figures)
	assert.Equal(t, 1, info.Shapes)
	assert.Equal(t, 1, info.Segments)
	assert.Equal(t, 2, info.PointCount)

	_, err = Decode(data)
	var unsupported *ErrUnsupportedGeometryType
	assert.True(t, errors.As(err, &unsupported), "got %v", err)
}

func TestDecodeErrors(t *testing.T) {
	data := mustEncode(t, "LINESTRING (0 0, 1 1, 2 2)", 0)

	t.Run("truncated", func(t *testing.T) {
		_, err := Decode(data[:len(data)-1])
		var trunc *ErrTruncatedInput
		assert.True(t, errors.As(err, &trunc), "got %v", err)
	})

	t.Run("version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 2
		_, err := Decode(bad)
		var version *ErrUnsupportedVersion
		assert.True(t, errors.As(err, &version), "got %v", err)
	})

	t.Run("unknown type", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] = 12
		_, err := Decode(bad)
		var unknown *ErrUnknownGeometryType
		require.True(t, errors.As(err, &unknown), "got %v", err)
		var illegal *ErrIllegalArgument
		assert.True(t, errors.As(err, &illegal))
	})

	t.Run("linear ring", func(t *testing.T) {
		ring := geom.NewLinearRing(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}, {0, 1}, {0, 0}})
		_, err := Encode(ring)
		var unsupported *ErrUnsupportedGeometryType
		assert.True(t, errors.As(err, &unsupported), "got %v", err)
	})
}
