package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/beetlebugorg/sqlgeom/pkg/sqlgeom"
)

type decodeFlags struct {
	format       string
	requireValid bool
	workers      int
	cacheMB      int64
	within       []float64
}

func newDecodeCmd(a *app) *cobra.Command {
	var f decodeFlags

	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode hex payloads to WKT, GeoJSON or EWKB",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, a, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "wkt", "Output format, one of [wkt, geojson, ewkb-hex]")
	flags.BoolVar(&f.requireValid, "require-valid", false, "Reject payloads without the valid flag")
	flags.IntVar(&f.workers, "workers", 0, "Decoder goroutines, 0 for one per CPU")
	flags.Int64Var(&f.cacheMB, "cache-mb", 0, "Size of the decode cache in MB, 0 disables it")
	flags.Float64SliceVar(&f.within, "within", nil, "Only print geometries intersecting minx,miny,maxx,maxy")
	return cmd
}

func runDecode(cmd *cobra.Command, a *app, f decodeFlags, args []string) error {
	format, err := formatter(f.format)
	if err != nil {
		return err
	}

	var filter *sqlgeom.Bounds
	if f.within != nil {
		if len(f.within) != 4 {
			return fmt.Errorf("--within needs 4 values, got %d", len(f.within))
		}
		filter = &sqlgeom.Bounds{MinX: f.within[0], MinY: f.within[1], MaxX: f.within[2], MaxY: f.within[3]}
	}

	lines, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var failed []error
	rows := make([]sqlgeom.Row, 0, len(lines))
	for i, line := range lines {
		id := strconv.Itoa(i + 1)
		data, err := sqlgeom.ParseHex(line)
		if err != nil {
			failed = append(failed, &sqlgeom.RowError{ID: id, Err: err})
			continue
		}
		rows = append(rows, sqlgeom.Row{ID: id, Data: data})
	}

	opts := sqlgeom.DefaultLoadOptions()
	opts.Logger = a.logger
	opts.Decode.RequireValid = f.requireValid
	if f.workers > 0 {
		opts.Workers = f.workers
	}
	if f.cacheMB > 0 {
		cacheOpts := sqlgeom.DefaultCacheOptions()
		cacheOpts.MaxBytes = f.cacheMB << 20
		cache, err := sqlgeom.NewDecodeCache(cacheOpts)
		if err != nil {
			return err
		}
		defer cache.Close()
		opts.Cache = cache
	}

	rs, errs := sqlgeom.DecodeRows(rows, sqlgeom.NewCodec(), opts)
	failed = append(failed, errs...)

	records := rs.Records
	if filter != nil {
		records = sqlgeom.BuildIndex(rs).Query(*filter)
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		text, err := format(rec.Geometry)
		if err != nil {
			failed = append(failed, &sqlgeom.RowError{ID: rec.ID, Err: err})
			continue
		}
		fmt.Fprintln(out, text)
	}

	if opts.Cache != nil {
		stats := opts.Cache.Stats()
		a.logger.Debug("decode cache",
			zap.Uint64("hits", stats.Hits),
			zap.Uint64("misses", stats.Misses),
			zap.Float64("hit_ratio", stats.HitRatio))
	}

	for _, err := range failed {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d payloads failed", len(failed), len(lines))
	}
	return nil
}

func formatter(name string) (func(geom.T) (string, error), error) {
	switch name {
	case "wkt":
		return sqlgeom.ToWKT, nil
	case "geojson":
		return func(g geom.T) (string, error) {
			b, err := sqlgeom.ToGeoJSON(g)
			return string(b), err
		}, nil
	case "ewkb-hex":
		return sqlgeom.ToEWKBHex, nil
	default:
		return nil, fmt.Errorf("unknown format %q, want one of [wkt, geojson, ewkb-hex]", name)
	}
}
