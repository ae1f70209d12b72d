package sqlgeom

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// Row is one serialized column value with an identifier for error reports.
type Row struct {
	ID   string // Primary key or other identifier; the row index if empty
	Data []byte // Raw column value
}

// Record is a successfully decoded row.
type Record struct {
	ID       string
	Geometry geom.T
}

// RecordSet holds decoded rows in input order.
type RecordSet struct {
	Records []Record
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// DecodeRows decodes a batch of column values with progress reporting.
//
// Rows are decoded by a worker pool when opts.Parallel is set. Successful
// records keep the order of rows regardless of which worker decoded them.
//
// The function respects LoadOptions:
//   - Parallel: Enable/disable the worker pool
//   - Workers: Number of concurrent decoders (defaults to NumCPU)
//   - SkipErrors: Continue past rows that fail to decode
//   - Progress: Optional callback for progress updates
//   - Logger: Optional zap logger for skipped rows
//   - Decode: Options applied to every row
//   - Cache: Optional DecodeCache shared across calls
//
// Each failure is returned as a *RowError. With SkipErrors false the first
// failure stops the run and the result set is nil.
//
// Example:
//
//	rs, errs := sqlgeom.DecodeRows(rows, sqlgeom.NewCodec(), sqlgeom.LoadOptions{
//	    Parallel:   true,
//	    SkipErrors: true,
//	    Logger:     logger,
//	})
//	fmt.Printf("decoded %d rows, skipped %d\n", rs.Len(), len(errs))
func DecodeRows(rows []Row, c Codec, opts LoadOptions) (*RecordSet, []error) {
	if len(rows) == 0 {
		return &RecordSet{Records: []Record{}}, nil
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if !opts.Parallel {
		return decodeRowsSerial(rows, c, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(rows) {
		workers = len(rows)
	}

	type decodeResult struct {
		index int
		g     geom.T
		err   error
	}

	jobs := make(chan int, len(rows))
	results := make(chan decodeResult, len(rows))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				g, err := decodeRow(rows[index].Data, c, opts)
				results <- decodeResult{
					index: index,
					g:     g,
					err:   err,
				}
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	decoded := make(map[int]geom.T, len(rows))
	var errs []error
	done := 0

	for result := range results {
		done++

		if opts.Progress != nil {
			opts.Progress(done, len(rows))
		}

		if result.err != nil {
			err := &RowError{ID: rowID(rows, result.index), Err: result.err}
			opts.Logger.Warn("row failed to decode", zap.String("row", err.ID), zap.Error(result.err))

			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}

		decoded[result.index] = result.g
	}

	records := make([]Record, 0, len(decoded))
	for i := range rows {
		if g, ok := decoded[i]; ok {
			records = append(records, Record{ID: rowID(rows, i), Geometry: g})
		}
	}

	opts.Logger.Debug("decoded rows",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(records)),
		zap.Int("failed", len(errs)),
		zap.Int("workers", workers))

	return &RecordSet{Records: records}, errs
}

// decodeRowsSerial decodes rows one at a time (Parallel=false).
func decodeRowsSerial(rows []Row, c Codec, opts LoadOptions) (*RecordSet, []error) {
	records := make([]Record, 0, len(rows))
	var errs []error

	for i, row := range rows {
		g, err := decodeRow(row.Data, c, opts)

		if opts.Progress != nil {
			opts.Progress(i+1, len(rows))
		}

		if err != nil {
			err := &RowError{ID: rowID(rows, i), Err: err}
			opts.Logger.Warn("row failed to decode", zap.String("row", err.ID), zap.Error(err.Err))

			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}

		records = append(records, Record{ID: rowID(rows, i), Geometry: g})
	}

	opts.Logger.Debug("decoded rows",
		zap.Int("rows", len(rows)),
		zap.Int("records", len(records)),
		zap.Int("failed", len(errs)))

	return &RecordSet{Records: records}, errs
}

// decodeRow applies the validity check before the cache so a cached value
// is never handed to a caller whose options would have rejected it.
func decodeRow(data []byte, c Codec, opts LoadOptions) (geom.T, error) {
	if opts.Decode.RequireValid {
		if err := checkValid(data); err != nil {
			return nil, err
		}
	}
	if opts.Cache != nil {
		return opts.Cache.Get(data, c.Decode)
	}
	return c.Decode(data)
}

func rowID(rows []Row, i int) string {
	if id := rows[i].ID; id != "" {
		return id
	}
	return strconv.Itoa(i)
}
