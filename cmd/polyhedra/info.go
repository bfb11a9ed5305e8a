package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var infoCmd = &cobra.Command{
	Use:   "info [mesh]",
	Short: "Print volume, surface area, centroid and extents of a mesh",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	ms := polyhedra.Measure(m)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vertices: %d\n", ms.Vertices)
	fmt.Fprintf(out, "Edges: %d\n", ms.Edges)
	fmt.Fprintf(out, "Faces: %d\n", ms.Faces)
	fmt.Fprintf(out, "Volume of the polyhedron: %f\n", ms.Volume)
	fmt.Fprintf(out, "Surface area of the polyhedron: %f\n", ms.SurfaceArea)
	fmt.Fprintf(out, "Centroid: %s\n", ms.Centroid)
	fmt.Fprintf(out, "Extents: X: %.2f, Y: %.2f, Z: %.2f\n", ms.Extents.X, ms.Extents.Y, ms.Extents.Z)

	queueMesh(args[0], m)
	return nil
}
