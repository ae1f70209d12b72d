// Command sqlgeom decodes, encodes and inspects SQL Server geometry column
// values.
//
//	sqlgeom decode 0xE6100000010C00000000000008400000000000001040
//	sqlgeom encode --srid 4326 "POINT (3 4)"
//	sqlgeom inspect < payloads.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
