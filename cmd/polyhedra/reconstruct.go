package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var (
	frontFile, topFile, sideFile string
	reconstructOut               string
	reconstructFormat            string
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct [views]",
	Short: "Rebuild a vertex cloud from front, top and side views",
	Long: `Rebuild a mesh from a view file (sections tagged f, t and s) or from
separate --front, --top and --side point files.

Only the vertices are derived from the views. The edges chain the vertices in
order and the faces group every four vertices, so the topology is a
placeholder and will not match the real solid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReconstruct,
}

func init() {
	rootCmd.AddCommand(reconstructCmd)

	reconstructCmd.Flags().StringVar(&frontFile, "front", "", "file of front view (y z) pairs")
	reconstructCmd.Flags().StringVar(&topFile, "top", "", "file of top view (x z) pairs")
	reconstructCmd.Flags().StringVar(&sideFile, "side", "", "file of side view (x y) pairs")
	reconstructCmd.Flags().StringVarP(&reconstructOut, "out", "o", "reconstructed_object.txt", "output file")
	reconstructCmd.Flags().StringVar(&reconstructFormat, "format", "mesh", "output format: mesh, ply or stl")
}

func loadPoints(fileName string) ([]polyhedra.Point2, error) {
	if fileName == "" {
		return nil, nil
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open view file %s: %w", fileName, err)
	}
	defer file.Close()

	pts, err := polyhedra.ReadPoints(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing view file %s: %w", fileName, err)
	}
	return pts, nil
}

func loadViews(args []string) (*polyhedra.ViewSet, error) {
	vs := &polyhedra.ViewSet{}
	if len(args) == 1 {
		loaded, err := polyhedra.LoadViewSetFile(args[0])
		if err != nil {
			return nil, err
		}
		vs = loaded
	}

	for _, extra := range []struct {
		view polyhedra.View
		file string
	}{
		{polyhedra.Front, frontFile},
		{polyhedra.Top, topFile},
		{polyhedra.Side, sideFile},
	} {
		pts, err := loadPoints(extra.file)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			vs.Add(extra.view, p)
		}
	}
	return vs, nil
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && frontFile == "" && topFile == "" && sideFile == "" {
		return fmt.Errorf("no views given: pass a view file or --front/--top/--side")
	}

	vs, err := loadViews(args)
	if err != nil {
		return err
	}

	correlated := polyhedra.CorrelateViews(vs.Front, vs.Top, vs.Side)
	matched := 0
	for _, c := range correlated {
		if c.Matched {
			matched++
		}
	}
	log.Printf("Read %d front, %d top and %d side points; %d vertices accepted, %d matched across views",
		len(vs.Front), len(vs.Top), len(vs.Side), len(correlated), matched)

	m := polyhedra.MeshFromCorrelated(correlated)
	if err := saveMesh(reconstructOut, reconstructFormat, m); err != nil {
		return err
	}
	log.Printf("Reconstructed polyhedron saved to %s", reconstructOut)

	printMeasurements(cmd.OutOrStdout(), m)
	queueMesh(reconstructOut, m)
	return nil
}
