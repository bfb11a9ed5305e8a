package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var (
	rotateAxis   string
	rotateAngle  float64
	rotateOut    string
	rotateFormat string
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [mesh]",
	Short: "Rotate a mesh about an axis through its centroid",
	Long: `Rotate a mesh by an angle in degrees about the X, Y or Z axis passing
through the mesh's centroid, and save the result.
The output defaults to <mesh>_rotated_<axis>_object.txt.`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().StringVar(&rotateAxis, "axis", "z", "rotation axis: x, y or z")
	rotateCmd.Flags().Float64Var(&rotateAngle, "angle", 0.0, "rotation angle in degrees")
	rotateCmd.Flags().StringVarP(&rotateOut, "out", "o", "", "output file")
	rotateCmd.Flags().StringVar(&rotateFormat, "format", "mesh", "output format: mesh, ply or stl")
}

func runRotate(cmd *cobra.Command, args []string) error {
	input := args[0]
	axis, err := polyhedra.ParseAxis(rotateAxis)
	if err != nil {
		return err
	}

	m, err := loadMesh(input)
	if err != nil {
		return err
	}

	if err := polyhedra.RotateAxis(m, axis, rotateAngle); err != nil {
		return fmt.Errorf("cannot rotate %s: %w", input, err)
	}
	log.Printf("Polyhedron rotated around %s-axis by %f degrees", axis, rotateAngle)

	out := rotateOut
	if out == "" {
		out = fmt.Sprintf("%s_rotated_%s_object.txt", input, strings.ToLower(axis.String()))
	}
	if err := saveMesh(out, rotateFormat, m); err != nil {
		return err
	}
	log.Printf("Rotated polyhedron saved to %s", out)

	printMeasurements(cmd.OutOrStdout(), m)
	queueMesh(out, m)
	return nil
}
