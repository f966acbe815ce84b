package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosculpt",
	Short: "A CLI tool for inspecting sculptable STL meshes",
	Long: `gosculpt prepares and inspects STL (Stereolithography) files for
interactive sculpting. It supports both ASCII and binary STL formats and
reports the welded mesh topology and vertex normals that the sculpting
tools operate on.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
