package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/beetlebugorg/sqlgeom/pkg/sqlgeom"
)

func newEncodeCmd(a *app) *cobra.Command {
	var srid int

	cmd := &cobra.Command{
		Use:   "encode [wkt...]",
		Short: "Encode WKT as a hex payload",
		Long: `
Each argument, or each line of stdin, is parsed as WKT and printed as a 0x
literal. The SRID is not part of WKT and is set with --srid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, line := range lines {
				s, err := encodeWKT(line, srid)
				if err != nil {
					return &sqlgeom.RowError{ID: fmt.Sprint(i + 1), Err: err}
				}
				fmt.Fprintln(out, s)
			}
			a.logger.Debug("encoded", zap.Int("count", len(lines)))
			return nil
		},
	}
	cmd.Flags().IntVar(&srid, "srid", 0, "Spatial reference id written into the header")
	return cmd
}

func encodeWKT(text string, srid int) (string, error) {
	g, err := sqlgeom.FromWKT(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	if g, err = geom.SetSRID(g, srid); err != nil {
		return "", err
	}
	return sqlgeom.EncodeHex(g)
}
