package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	convertOut    string
	convertFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert [mesh]",
	Short: "Convert a mesh between the text, PLY and STL formats",
	Long: `Convert a mesh. The input format follows the file extension (.ply is PLY,
anything else the mesh text format). STL output holds only the triangulated
faces.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file")
	convertCmd.Flags().StringVar(&convertFormat, "format", "ply", "output format: mesh, ply or stl")
	_ = convertCmd.MarkFlagRequired("out")
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	if err := saveMesh(convertOut, convertFormat, m); err != nil {
		return err
	}
	log.Printf("%s converted to %s (%s)", args[0], convertOut, convertFormat)
	return nil
}
