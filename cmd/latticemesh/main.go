// Command latticemesh loads a raw scalar volume into a lattice mesh and
// reports on it: statistics and sorted extremes, the ordered neighbors of a
// vertex, or the connected components of the active nodes. It also writes
// synthetic volumes for experiments.
//
// Every subcommand except synth reads a YAML job file:
//
//	volume:
//	  path: cells.raw.zst
//	  type: uint16
//	  compression: zstd
//	  dims: [512, 512, 40]
//	  voxel: [0.2, 0.2, 1]
//	threshold: 120
//	connectivity: edge
//	interpretation: spatiotemporal
//	deformation:
//	  backward: {path: back.raw}
//	  forward: {path: fwd.raw}
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "latticemesh:", err)
		os.Exit(1)
	}
}
