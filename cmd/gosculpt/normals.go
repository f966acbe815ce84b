package main

import (
	"fmt"
	"math"
	"os"

	"github.com/philipparndt/gosculpt/pkg/mesh"
	"github.com/philipparndt/gosculpt/pkg/stl"
	"github.com/spf13/cobra"
)

var normalsLimit int

var normalsCmd = &cobra.Command{
	Use:   "normals [file]",
	Short: "Compute and display vertex normals for an STL file",
	Long:  "Weld the triangle soup into an indexed mesh, compute area-weighted vertex normals, and report them with basic statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runNormals,
}

func init() {
	normalsCmd.Flags().IntVarP(&normalsLimit, "limit", "n", 10, "Maximum number of vertex normals to print (0 = all)")
	rootCmd.AddCommand(normalsCmd)
}

func runNormals(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	indexed := model.Index()

	store := mesh.NewStore()
	if err := store.Load(indexed.Positions, indexed.Triangles); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	normals := store.Normals()

	// Degenerate vertices end up with a zero normal
	zeroCount := 0
	for _, n := range normals {
		if n.Length() < 1e-12 {
			zeroCount++
		}
	}

	fmt.Println("Vertex Normals")
	fmt.Println("==============")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Welded vertices: %d (from %d triangles)\n", store.VertexCount(), store.TriangleCount())
	fmt.Printf("Zero-length normals: %d\n\n", zeroCount)

	limit := normalsLimit
	if limit <= 0 || limit > len(normals) {
		limit = len(normals)
	}

	positions := store.Positions()
	for i := 0; i < limit; i++ {
		p := positions[i]
		n := normals[i]
		fmt.Printf("  [%d] position (%.4f, %.4f, %.4f)  normal (%.4f, %.4f, %.4f)  |n| = %.4f\n",
			i, p.X, p.Y, p.Z, n.X, n.Y, n.Z, math.Sqrt(n.Dot(n)))
	}
	if limit < len(normals) {
		fmt.Printf("  ... %d more (use --limit 0 to print all)\n", len(normals)-limit)
	}
}
