// Package cmd implements the kig command-line entry point: one
// optional positional document URL, falling back to the standard
// session-restore protocol when none is given.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/formats"
	"github.com/gokig/kigcore/internal/session"
)

var verbose bool

// euclideanDoc is the imp.Doc context the CLI calculates against; kig
// has no UI-level coordinate-system switch, so Euclidean is the only
// choice a command-line open needs to make.
type euclideanDoc struct{}

func (euclideanDoc) CoordinateSystem() string { return "Euclidean" }

var rootCmd = &cobra.Command{
	Use:   "kig [file]",
	Short: "Open and inspect a Kig-style dependency-graph document",
	Long: `kig loads a geometry construction document and reports the
objects it contains, the way the original application's session
restore does at startup.

Native (.kig/.xml) documents and legacy KGeo (.kgeo) imports are both
understood; the format is chosen from the file's extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runOpen(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	file, restored, err := resolveTarget(args)
	if err != nil {
		return err
	}
	if file == "" {
		logger.Info("no document given and no prior session found; nothing to open")
		return nil
	}
	if restored {
		logger.Debug("restoring last session", "file", file)
	}

	doc, err := openDocument(file, logger)
	if err != nil {
		return fmt.Errorf("kig: %w", err)
	}

	if err := session.Save(file); err != nil {
		logger.Warn("could not persist session", "error", err)
	}

	printSummary(cmd, file, doc)
	return nil
}

func resolveTarget(args []string) (file string, restored bool, err error) {
	if len(args) == 1 {
		return args[0], false, nil
	}
	last, ok, err := session.Restore()
	if err != nil {
		return "", false, fmt.Errorf("kig: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return last, true, nil
}

func openDocument(file string, logger *slog.Logger) (*document.Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(file), ".kgeo") {
		logger.Debug("importing as KGeo", "file", file)
		kd, err := formats.LoadKGeo(data, euclideanDoc{})
		if err != nil {
			return nil, err
		}
		logger.Debug("KGeo canvas extent", "width", kd.CanvasWidth, "height", kd.CanvasHeight)
		return kd.Document, nil
	}
	logger.Debug("loading as native document", "file", file)
	return formats.LoadDocument(data, euclideanDoc{})
}

func printSummary(cmd *cobra.Command, file string, doc *document.Document) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d object(s)\n", file, len(doc.Holders()))
	for _, h := range doc.Holders() {
		state := "valid"
		if !h.Node.Imp().Valid() {
			state = "invalid"
		}
		shown := ""
		if !h.Shown {
			shown = " (hidden)"
		}
		fmt.Fprintf(out, "  %-20s %-8s %s%s\n", h.Label, h.Node.Kind(), state, shown)
	}
}
