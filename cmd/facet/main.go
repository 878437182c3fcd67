// facet renders flat-shaded 3D scenes in software, either live in the
// terminal or headless to PNG.
//
// Usage:
//
//	facet view                 live terminal viewer
//	facet snapshot --out f.png render frames to a PNG
//	facet bench --frames 300   time the pipeline
//	facet config init [path]   write the default config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
