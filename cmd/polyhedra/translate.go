package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var (
	deltaX, deltaY, deltaZ float64
	translateOut           string
	translateFormat        string
)

var translateCmd = &cobra.Command{
	Use:   "translate [mesh]",
	Short: "Move every vertex of a mesh by an offset",
	Long: `Move every vertex of a mesh by (dx, dy, dz) and save the result.
The output defaults to <mesh>_translated_object.txt.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().Float64Var(&deltaX, "dx", 0.0, "offset along X")
	translateCmd.Flags().Float64Var(&deltaY, "dy", 0.0, "offset along Y")
	translateCmd.Flags().Float64Var(&deltaZ, "dz", 0.0, "offset along Z")
	translateCmd.Flags().StringVarP(&translateOut, "out", "o", "", "output file")
	translateCmd.Flags().StringVar(&translateFormat, "format", "mesh", "output format: mesh, ply or stl")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	input := args[0]
	m, err := loadMesh(input)
	if err != nil {
		return err
	}

	polyhedra.Translate(m, deltaX, deltaY, deltaZ)
	log.Printf("Polyhedron translated by (%f, %f, %f)", deltaX, deltaY, deltaZ)

	out := translateOut
	if out == "" {
		out = fmt.Sprintf("%s_translated_object.txt", input)
	}
	if err := saveMesh(out, translateFormat, m); err != nil {
		return err
	}
	log.Printf("Translated polyhedron saved to %s", out)

	printMeasurements(cmd.OutOrStdout(), m)
	queueMesh(out, m)
	return nil
}
