package sqlgeom

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// DecodeHex decodes a payload written as hex, the form SQL Server prints
// for geometry columns. A leading "0x" is optional.
func DecodeHex(s string) (geom.T, error) {
	data, err := ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodeHex encodes g and formats it as an upper-case 0x literal that can
// be pasted into T-SQL.
func EncodeHex(g geom.T) (string, error) {
	data, err := Encode(g)
	if err != nil {
		return "", err
	}
	return "0x" + strings.ToUpper(hex.EncodeToString(data)), nil
}

// ParseHex converts a hex literal to payload bytes without decoding it.
// Surrounding space and a leading "0x" are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hex payload has odd length %d", len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex payload: %w", err)
	}
	return data, nil
}

// ToWKT formats g as Well Known Text. The SRID is not part of WKT.
func ToWKT(g geom.T) (string, error) {
	return wkt.Marshal(g)
}

// FromWKT parses Well Known Text. The result has SRID 0.
func FromWKT(s string) (geom.T, error) {
	return wkt.Unmarshal(s)
}

// ToEWKB transcodes g to little-endian PostGIS extended WKB, carrying the
// SRID when it is set.
func ToEWKB(g geom.T) ([]byte, error) {
	return ewkb.Marshal(g, ewkb.NDR)
}

// ToEWKBHex is ToEWKB as a hex string, the text form PostGIS accepts.
func ToEWKBHex(g geom.T) (string, error) {
	return ewkbhex.Encode(g, ewkbhex.NDR)
}

// FromEWKB parses PostGIS extended WKB in either byte order.
func FromEWKB(data []byte) (geom.T, error) {
	return ewkb.Unmarshal(data)
}

// ToGeoJSON formats g as a GeoJSON geometry object. A non-zero SRID is
// written as a named "EPSG:<srid>" crs member.
func ToGeoJSON(g geom.T) ([]byte, error) {
	var opts []geojson.EncodeGeometryOption
	if g != nil && g.SRID() != 0 {
		opts = append(opts, geojson.EncodeGeometryWithCRS(&geojson.CRS{
			Type: "name",
			Properties: map[string]interface{}{
				"name": fmt.Sprintf("EPSG:%d", g.SRID()),
			},
		}))
	}
	return geojson.Marshal(g, opts...)
}
