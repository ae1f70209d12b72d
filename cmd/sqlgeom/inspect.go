package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beetlebugorg/sqlgeom/pkg/sqlgeom"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [hex...]",
		Short: "Print the header and table sizes of hex payloads",
		Long: `
inspect parses the structure of each payload without building a geometry, so
it also reports curve types that decode rejects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var failed int
			for i, line := range lines {
				info, err := inspectHex(line)
				if err != nil {
					failed++
					a.logger.Warn("payload failed to parse", zap.Int("line", i+1), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %v\n", i+1, err)
					continue
				}
				printInfo(out, info)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d payloads failed", failed, len(lines))
			}
			return nil
		},
	}
}

func inspectHex(s string) (*sqlgeom.Info, error) {
	data, err := sqlgeom.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return sqlgeom.Inspect(data)
}

func printInfo(w io.Writer, info *sqlgeom.Info) {
	fmt.Fprintf(w, "%s srid=%d points=%d figures=%d shapes=%d segments=%d z=%v m=%v valid=%v\n",
		info.Type, info.SRID, info.PointCount, info.Figures, info.Shapes, info.Segments,
		info.HasZ, info.HasM, info.IsValid)
}
