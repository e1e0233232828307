package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sdfnets",
	Short: "Sample signed-distance fields and extract surface-nets meshes",
	Long: `sdfnets samples implicit signed-distance functions onto a regular
voxel grid and extracts a triangle mesh approximating the zero-level
surface with a surface-nets dual-contouring pass. Scenes are described
in a small Lisp DSL or built from the embedded demo shapes.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
