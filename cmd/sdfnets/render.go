package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maku693/3d-sdf-surface-nets/pkg/engine"
	"github.com/maku693/3d-sdf-surface-nets/pkg/field"
	"github.com/maku693/3d-sdf-surface-nets/pkg/mesh"
	"github.com/maku693/3d-sdf-surface-nets/pkg/surfacenets"
)

var renderSize int

var renderCmd = &cobra.Command{
	Use:   "render [script]",
	Short: "Evaluate a shape script and extract its surface mesh",
	Long: `Evaluate a Lisp shape script, sample the scene into a voxel grid,
run the surface-nets extraction, and print mesh statistics.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderSize, "size", 64, "grid resolution along each axis")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
		os.Exit(1)
	}

	sc, evalErrs, err := engine.NewEngine().Evaluate(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating script: %v\n", err)
		os.Exit(1)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e.Error())
		}
		os.Exit(1)
	}

	f, err := field.New(renderSize, renderSize, renderSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := sc.Draw(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := surfacenets.Extract(f)
	printMeshInfo(args[0], f, m)
}

func printMeshInfo(name string, f *field.Field, m *mesh.Mesh) {
	fmt.Println("Surface Extraction")
	fmt.Println("==================")
	fmt.Printf("Scene: %s\n", name)
	fmt.Printf("Grid: %dx%dx%d (%d samples)\n\n",
		f.Width, f.Height, f.Depth, len(f.Samples))

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", m.VertexCount())
	fmt.Printf("  Triangles: %d\n", m.TriangleCount())

	if min, max, ok := m.Bounds(); ok {
		fmt.Println("\nBounding Box:")
		fmt.Printf("  Min: (%.3f, %.3f, %.3f)\n", min[0], min[1], min[2])
		fmt.Printf("  Max: (%.3f, %.3f, %.3f)\n", max[0], max[1], max[2])
		fmt.Printf("\nEnclosed Volume: %.3f cubic units\n", m.SignedVolume())
	} else {
		fmt.Println("\nMesh is empty (no surface crossings in the grid).")
	}
}
