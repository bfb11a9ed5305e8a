package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var (
	planeA, planeB, planeC, planeD float64
	sliceOut1, sliceOut2           string
	sliceFormat                    string
)

var sliceCmd = &cobra.Command{
	Use:   "slice [mesh]",
	Short: "Split a mesh into two parts with the plane Ax + By + Cz + D = 0",
	Long: `Split a mesh with the plane Ax + By + Cz + D = 0. Vertices with
Ax + By + Cz + D >= 0 go to part 1, the rest to part 2, and every edge crossing
the plane adds its intersection point to both parts.

The cut is not capped and faces crossing the plane are dropped, so each part
is an open shell. A part without vertices is not written.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().Float64Var(&planeA, "a", 0.0, "plane normal X component (A)")
	sliceCmd.Flags().Float64Var(&planeB, "b", 0.0, "plane normal Y component (B)")
	sliceCmd.Flags().Float64Var(&planeC, "c", 0.0, "plane normal Z component (C)")
	sliceCmd.Flags().Float64Var(&planeD, "d", 0.0, "plane offset (D)")
	sliceCmd.Flags().StringVar(&sliceOut1, "out1", "part1_sliced.txt", "output file for part 1")
	sliceCmd.Flags().StringVar(&sliceOut2, "out2", "part2_sliced.txt", "output file for part 2")
	sliceCmd.Flags().StringVar(&sliceFormat, "format", "mesh", "output format: mesh, ply or stl")
}

func runSlice(cmd *cobra.Command, args []string) error {
	plane := polyhedra.NewPlane(planeA, planeB, planeC, planeD)
	if plane.IsDegenerate() {
		return fmt.Errorf("slicing plane %s: %w", plane, polyhedra.ErrDegeneratePlane)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	part1, part2 := polyhedra.Slice(m, plane)
	log.Printf("Polyhedron sliced by %s", plane)

	parts := []struct {
		name string
		mesh *polyhedra.Mesh
		out  string
	}{
		{"part 1", part1, sliceOut1},
		{"part 2", part2, sliceOut2},
	}

	out := cmd.OutOrStdout()
	for _, p := range parts {
		if p.mesh == nil {
			log.Printf("%s is empty, not saved", p.name)
			continue
		}
		if err := saveMesh(p.out, sliceFormat, p.mesh); err != nil {
			return err
		}
		log.Printf("%s (%d vertices, %d edges, %d faces) saved to %s",
			p.name, p.mesh.VertexCount(), p.mesh.EdgeCount(), p.mesh.FaceCount(), p.out)

		fmt.Fprintf(out, "%s:\n", p.name)
		printMeasurements(out, p.mesh)
		queueMesh(p.out, p.mesh)
	}
	return nil
}
