// SPDX-License-Identifier: MIT

// Command mathguru runs the symbolic derivations of package derive and prints
// the resulting polynomials.
//
//	mathguru rotation                 # quaternion rotation matrix
//	mathguru rodrigues --axis generic # Rodrigues rotation of a planar point
//	mathguru normal --print           # triple product of three plane normals
//
// Configuration is read from the YAML file named by --config (see config.go);
// flags override the file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mathguru:", err)
		os.Exit(1)
	}
}
