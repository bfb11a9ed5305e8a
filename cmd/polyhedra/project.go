package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smasonuk/polyhedra"
)

var (
	projectView string
	projectOut  string
)

var projectCmd = &cobra.Command{
	Use:   "project [mesh]",
	Short: "Project a mesh onto the front (YZ), top (XZ) or side (XY) plane",
	Long: `Print the orthographic projection of every vertex onto a coordinate plane.
With --out, all three projections are written as a view file that the
reconstruct command reads back.`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().StringVar(&projectView, "view", "all", "view to print: f, t, s or all")
	projectCmd.Flags().StringVarP(&projectOut, "out", "o", "", "write all three views to this view file")
}

func selectedViews(name string) ([]polyhedra.View, error) {
	if strings.EqualFold(name, "all") {
		return polyhedra.Views, nil
	}
	v, err := polyhedra.ParseView(name)
	if err != nil {
		return nil, err
	}
	return []polyhedra.View{v}, nil
}

func runProject(cmd *cobra.Command, args []string) error {
	views, err := selectedViews(projectView)
	if err != nil {
		return err
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range views {
		p := polyhedra.Project(m, v)
		fmt.Fprintf(out, "%s\n", v)
		for i, pt := range p.Points() {
			fmt.Fprintf(out, "  %d: %s\n", i, pt)
		}
		queueProjection(p)
	}

	if projectOut != "" {
		if err := polyhedra.SaveViewSetFile(projectOut, polyhedra.ProjectAll(m)); err != nil {
			return err
		}
		log.Printf("Views saved to %s", projectOut)
	}
	return nil
}
