package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "sqlgeom",
		Short: "Convert SQL Server geometry column values",
		Long: `
sqlgeom reads the binary form SQL Server uses for geometry columns, written as
hex literals, and converts it to WKT, GeoJSON or PostGIS EWKB. It also encodes
WKT back into a literal that can be pasted into T-SQL.

Payloads are taken from the arguments, or one per line from stdin when no
arguments are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Log each failed payload and a summary to stderr")

	root.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newInspectCmd(a),
	)
	return root
}

// inputs returns args, or the non-blank lines of in when args is empty.
func inputs(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 64<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
