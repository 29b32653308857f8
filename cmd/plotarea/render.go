package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/philipparndt/plotarea/pkg/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	renderOutput     string
	renderBackground string
	renderWidth      int
	renderHeight     int
	renderMaxSize    int
)

var renderCmd = &cobra.Command{
	Use:   "render <script.yaml>",
	Short: "Replay a script and render the result to PNG",
	Long: `Replay an event script and draw the layers, polygons, labels and pending
selections over an optional background image (PNG, JPEG, BMP or WebP).`,
	Example: `  plotarea render survey.yaml -o survey.png --background site-plan.jpg`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output PNG file")
	renderCmd.Flags().StringVar(&renderBackground, "background", "", "Background image drawn under the polygons")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Output width in pixels (0 fits the content)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Output height in pixels (0 fits the content)")
	renderCmd.Flags().IntVar(&renderMaxSize, "max-size", render.DefaultMaxSize, "Largest allowed output side in pixels")
	_ = renderCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth < 0 || renderHeight < 0 || renderMaxSize < 0 {
		return errors.New("--width, --height and --max-size must not be negative")
	}

	e, err := replayEngine(args[0])
	if err != nil {
		return err
	}

	var background image.Image
	if renderBackground != "" {
		background, err = render.LoadImage(renderBackground)
		if err != nil {
			return err
		}
	}

	img, err := render.Render(e.State(), render.Options{
		Width:      renderWidth,
		Height:     renderHeight,
		Background: background,
		Unit:       cfg.Units.Name,
		MaxSize:    renderMaxSize,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", args[0], err)
	}
	if err := render.SavePNG(renderOutput, img); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"output": renderOutput,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Info("rendered")
	return nil
}
