package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
	"github.com/smasonuk/polyhedra/render"
)

var (
	// pages collects what the command wants shown; the window opens once,
	// after the command has run.
	pages []render.Page

	quiet   bool
	show    bool
	filled  bool
	showFor time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "polyhedra",
	Short: "Transform, slice, measure and project polyhedral meshes",
	Long: `polyhedra reads meshes stored as explicit vertex, edge and face lists and
translates, rotates, slices, measures and projects them. It can also rebuild
a vertex cloud from front, top and side views.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		if quiet {
			log.SetOutput(io.Discard)
		}
		pages = nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !show || len(pages) == 0 {
			return nil
		}
		log.Printf("Visualizing %d view(s); space moves to the next, Q or Esc closes", len(pages))
		return render.Show(pages, renderOptions())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress messages")
	rootCmd.PersistentFlags().BoolVar(&show, "show", false, "open a window showing the result")
	rootCmd.PersistentFlags().BoolVar(&filled, "filled", false, "draw shaded faces under the wireframe")
	rootCmd.PersistentFlags().DurationVar(&showFor, "show-for", 0, "close the window after this long (0 keeps it open)")
}

// loadMesh picks the reader from the file extension: .ply is PLY, anything
// else the mesh text format.
func loadMesh(fileName string) (*polyhedra.Mesh, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".ply") {
		return polyhedra.LoadPLYFile(fileName)
	}
	return polyhedra.LoadMeshFile(fileName)
}

func saveMesh(fileName, format string, m *polyhedra.Mesh) error {
	switch strings.ToLower(format) {
	case "", "mesh", "txt":
		return polyhedra.SaveMeshFile(fileName, m)
	case "ply":
		return polyhedra.SavePLYFile(fileName, m)
	case "stl":
		return polyhedra.SaveSTL(fileName, m)
	}
	return fmt.Errorf("unknown output format %q (expected mesh, ply or stl)", format)
}

func printMeasurements(w io.Writer, m *polyhedra.Mesh) {
	ms := polyhedra.Measure(m)
	fmt.Fprintf(w, "Volume of the polyhedron: %f\n", ms.Volume)
	fmt.Fprintf(w, "Surface area of the polyhedron: %f\n", ms.SurfaceArea)
}

func renderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Duration = showFor
	opts.Filled = filled
	return opts
}

func queueMesh(title string, m *polyhedra.Mesh) {
	if show {
		pages = append(pages, render.Page{Title: title, Scene: render.NewMeshScene(m)})
	}
}

func queueProjection(p polyhedra.Projection) {
	if show {
		pages = append(pages, render.Page{Title: p.View.String(), Scene: render.NewProjectionScene(p)})
	}
}
