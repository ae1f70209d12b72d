package sqlgeom

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Index provides fast bounding box queries over decoded records.
//
// Each non-empty record is stored in an R-tree under its planar bounds.
// Queries return candidates whose bounds intersect; no exact geometry test
// is made.
//
// Example:
//
//	rs, _ := sqlgeom.DecodeRows(rows, sqlgeom.NewCodec(), sqlgeom.DefaultLoadOptions())
//	idx := sqlgeom.BuildIndex(rs)
//
//	hits := idx.Query(sqlgeom.Bounds{MinX: -71.5, MinY: 42.0, MaxX: -71.0, MaxY: 42.5})
//	fmt.Printf("%d of %d records in view\n", len(hits), idx.Count())
type Index struct {
	entries []*indexedRecord
	rtree   *rtreego.Rtree // Spatial index for fast queries
}

// indexedRecord wraps a record for R-tree storage.
type indexedRecord struct {
	ordinal int // Position in the record set, used to order results
	record  Record
	bounds  Bounds
}

// Bounds implements rtreego.Spatial.
func (r *indexedRecord) Bounds() rtreego.Rect {
	return paddedRect(r.bounds)
}

// paddedRect converts b to an R-tree rectangle grown by epsilon on every
// side. rtreego treats touching rectangles as disjoint and points as zero
// sized, so both entries and queries are padded and Query filters the
// candidates with the exact, inclusive test afterwards.
func paddedRect(b Bounds) rtreego.Rect {
	const epsilon = 0.0001
	rect, _ := rtreego.NewRectFromPoints(
		rtreego.Point{b.MinX - epsilon, b.MinY - epsilon},
		rtreego.Point{b.MaxX + epsilon, b.MaxY + epsilon},
	)
	return rect
}

// BuildIndex creates an index over a decoded RecordSet.
//
// Records with empty geometries have no extent and are left out; Count
// reports only indexed records.
func BuildIndex(rs *RecordSet) *Index {
	// Create R-tree (2D, min=25 children, max=50 children)
	rtree := rtreego.NewTree(2, 25, 50)

	var entries []*indexedRecord
	for i, rec := range rs.Records {
		b, ok := BoundsOf(rec.Geometry)
		if !ok {
			continue
		}
		entry := &indexedRecord{
			ordinal: i,
			record:  rec,
			bounds:  b,
		}
		entries = append(entries, entry)
		rtree.Insert(entry)
	}

	return &Index{
		entries: entries,
		rtree:   rtree,
	}
}

// Query returns records whose bounds intersect b, in record set order.
func (idx *Index) Query(b Bounds) []Record {
	queryRect := paddedRect(b)
	spatials := idx.rtree.SearchIntersect(queryRect)

	hits := make([]*indexedRecord, 0, len(spatials))
	for _, spatial := range spatials {
		entry := spatial.(*indexedRecord)
		if !b.Intersects(entry.bounds) {
			continue
		}
		hits = append(hits, entry)
	}
	return sortedRecords(hits)
}

// Nearest returns up to k records closest to (x, y), nearest first.
// Distance is measured to each record's bounding box.
func (idx *Index) Nearest(x, y float64, k int) []Record {
	if k <= 0 || len(idx.entries) == 0 {
		return nil
	}
	spatials := idx.rtree.NearestNeighbors(k, rtreego.Point{x, y})

	result := make([]Record, 0, len(spatials))
	for _, spatial := range spatials {
		if spatial == nil {
			continue
		}
		result = append(result, spatial.(*indexedRecord).record)
	}
	return result
}

// Count returns the number of indexed records.
func (idx *Index) Count() int {
	return len(idx.entries)
}

// Bounds returns the union of all indexed record bounds.
func (idx *Index) Bounds() Bounds {
	if len(idx.entries) == 0 {
		return Bounds{}
	}

	bounds := idx.entries[0].bounds
	for i := 1; i < len(idx.entries); i++ {
		bounds = bounds.Union(idx.entries[i].bounds)
	}

	return bounds
}

func sortedRecords(entries []*indexedRecord) []Record {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ordinal < entries[j].ordinal
	})
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = e.record
	}
	return records
}
