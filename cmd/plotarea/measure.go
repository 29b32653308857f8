package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/plotarea/pkg/analysis"
	"github.com/philipparndt/plotarea/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	measurePoints string
	pixelsPerUnit float64
	unitName      string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure area and perimeter of a polygon",
	Long: `Measure the area, perimeter and edge lengths of a polygon given as
image pixel coordinates. With --ppu the values are converted to units.`,
	Example: `  plotarea measure --points "0,0 100,0 100,100 0,100" --ppu 5 --unit ft`,
	Args:    cobra.NoArgs,
	RunE:    runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().StringVarP(&measurePoints, "points", "p", "", "Vertices as \"x,y x,y ...\"")
	measureCmd.Flags().Float64Var(&pixelsPerUnit, "ppu", 0, "Pixels per unit (0 keeps pixels)")
	measureCmd.Flags().StringVar(&unitName, "unit", "", "Unit name (defaults to the configured unit)")
	_ = measureCmd.MarkFlagRequired("points")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	points, err := parsePoints(measurePoints)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return errors.New("at least 2 points are required")
	}
	if pixelsPerUnit < 0 {
		return fmt.Errorf("--ppu must not be negative, got %g", pixelsPerUnit)
	}

	scale := geometry.NewScale(pixelsPerUnit)
	unit := reportUnit(scale)
	metrics := analysis.MeasurePolygon(points, scale)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Polygon Measurement")
	fmt.Fprintln(out, "===================")
	fmt.Fprintf(out, "\nVertices:  %d\n", metrics.Vertices)
	fmt.Fprintf(out, "Centroid:  %s\n", analysis.FormatPoint(geometry.Centroid(points)))
	fmt.Fprintf(out, "Area:      %s\n", analysis.FormatArea(metrics.Area, unit))
	fmt.Fprintf(out, "Perimeter: %s\n", analysis.FormatMeasurement(metrics.Perimeter, unit))
	if scale.Calibrated() {
		fmt.Fprintf(out, "           (%.2f sq px, %.2f px)\n", metrics.AreaPixels, metrics.PerimeterPixels)
	}

	fmt.Fprintln(out, "\nEdges:")
	for i, length := range geometry.EdgeLengths(points) {
		j := (i + 1) % len(points)
		fmt.Fprintf(out, "  %d-%d: %s\n", i, j, analysis.FormatMeasurement(scale.PixelsToUnits(length), unit))
	}
	return nil
}

// reportUnit picks the unit label for a scale
func reportUnit(scale geometry.Scale) string {
	if !scale.Calibrated() {
		return "px"
	}
	if unitName != "" {
		return unitName
	}
	return cfg.Units.Name
}
