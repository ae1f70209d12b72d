// Package sqlgeom reads and writes the binary serialization SQL Server uses
// for its native geometry and geography columns.
//
// Values are decoded into github.com/twpayne/go-geom geometries, so anything
// that understands go-geom (WKT, EWKB, GeoJSON encoders, spatial libraries)
// can consume them directly.
//
// # Basic Usage
//
//	// Column value as returned by a driver, or a 0x... literal from SSMS
//	g, err := sqlgeom.DecodeHex("0xE6100000010C00000000000008400000000000001040")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, _ := sqlgeom.ToWKT(g)
//	fmt.Println(text, g.SRID()) // POINT (3 4) 4326
//
// # Encoding
//
// Encode is the inverse of Decode. Points and two point line strings use the
// compact single-figure forms; everything else carries explicit figure and
// shape tables:
//
//	poly, _ := sqlgeom.FromWKT("POLYGON ((0 0, 10 0, 10 10, 0 0))")
//	data, err := sqlgeom.Encode(poly)
//
// # Supported Types
//
// Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon and
// GeometryCollection, in XY and XYZ. M values are accepted on input and
// written by Encode, but the decoder drops them. The curve types
// (CircularString, CompoundCurve, CurvePolygon) and FullGlobe are recognized
// and rejected with ErrUnsupportedGeometryType.
//
// # Row Sets
//
// DecodeRows decodes many column values concurrently, keeps their order and
// reports failed rows as RowError values. The resulting RecordSet can be
// turned into an R-tree backed Index for bounding box and nearest neighbour
// queries. A DecodeCache avoids decoding identical payloads twice.
//
// # Error Handling
//
// All failures are typed errors and can be matched with errors.As:
//
//	var trunc *sqlgeom.ErrTruncatedInput
//	if errors.As(err, &trunc) {
//	    fmt.Printf("payload cut at byte %d\n", trunc.Offset)
//	}
//
// No partially built geometry is ever returned together with an error.
package sqlgeom
