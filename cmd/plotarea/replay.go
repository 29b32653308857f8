package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/plotarea/internal/engine"
	"github.com/philipparndt/plotarea/pkg/analysis"
	"github.com/philipparndt/plotarea/pkg/script"
	"github.com/philipparndt/plotarea/pkg/watcher"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	replayFormat string
	replayWatch  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a recorded input script and report the measurements",
	Long: `Replay a YAML (or JSON) event script through a fresh engine and print the
resulting layers and polygons with their areas and perimeters.

With --watch the script is replayed again every time it is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayFormat, "format", "f", "text", "Output format: text, json or yaml")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "Replay again when the script changes")
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := validateFormat(replayFormat); err != nil {
		return err
	}

	if err := replayOnce(cmd.OutOrStdout(), path); err != nil {
		if !replayWatch {
			return err
		}
		logger.WithError(err).Error("replay failed")
	}
	if !replayWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch([]string{path}, func(string) {
		if err := replayOnce(cmd.OutOrStdout(), path); err != nil {
			logger.WithError(err).Error("replay failed")
		}
	}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithField("file", path).Info("watching for changes, press Ctrl+C to stop")
	fw.Run(ctx)
	return nil
}

// replayEngine loads a script and replays it through a new engine
func replayEngine(path string) (*engine.Engine, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}

	e := engine.New(cfg, engine.WithLogger(logger))
	logger.WithFields(logrus.Fields{"file": path, "session": e.Session(), "events": len(s.Events)}).Debug("replaying script")
	if err := s.Replay(e); err != nil {
		return nil, fmt.Errorf("failed to replay %s: %w", path, err)
	}
	return e, nil
}

func replayOnce(w io.Writer, path string) error {
	e, err := replayEngine(path)
	if err != nil {
		return err
	}
	return writeReport(w, e.Report(), replayFormat)
}

func validateFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
}

func writeReport(w io.Writer, report *analysis.DocumentReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	writeTextReport(w, report)
	return nil
}

func writeTextReport(w io.Writer, report *analysis.DocumentReport) {
	if report.PixelsPerUnit > 0 {
		fmt.Fprintf(w, "Scale: %.4f px per %s\n", report.PixelsPerUnit, report.Unit)
	} else {
		fmt.Fprintln(w, "Scale: not calibrated (pixels)")
	}

	for _, layer := range report.Layers {
		flags := ""
		if layer.Active {
			flags += " [active]"
		}
		if !layer.Visible {
			flags += " [hidden]"
		}
		fmt.Fprintf(w, "\n%s (id %d)%s\n", layer.Name, layer.ID, flags)

		for _, poly := range layer.Polygons {
			fmt.Fprintf(w, "  #%d %-20s area %-18s perimeter %s\n",
				poly.ID, poly.Label,
				analysis.FormatArea(poly.Metrics.Area, report.Unit),
				analysis.FormatMeasurement(poly.Metrics.Perimeter, report.Unit))
		}
		if layer.Chain != (analysis.ChainStats{}) {
			fmt.Fprintf(w, "  in progress: last segment %s, perimeter %s\n",
				analysis.FormatMeasurement(layer.Chain.LastSegment, report.Unit),
				analysis.FormatMeasurement(layer.Chain.Perimeter, report.Unit))
		}
		fmt.Fprintf(w, "  layer total: %s\n", analysis.FormatArea(layer.TotalArea, report.Unit))
	}

	fmt.Fprintf(w, "\nTotal area: %s\n", analysis.FormatArea(report.TotalArea, report.Unit))
}
