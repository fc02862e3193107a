package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/refgraph/internal/ctxlog"
	"github.com/vk/refgraph/internal/fsutil"
	"github.com/vk/refgraph/internal/graph"
	"github.com/vk/refgraph/internal/latex"
	"github.com/vk/refgraph/internal/render"
	"github.com/vk/refgraph/internal/scan"
)

// Run executes the pipeline: read each source file, scan it for references,
// assemble the graph, and write the DOT description. Input errors surface
// before any traversal begins.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	info, err := os.Stat(a.config.OutputDir)
	if err != nil {
		return fmt.Errorf("output directory %s is not usable: %w", a.config.OutputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %s is not a directory", a.config.OutputDir)
	}

	files, err := fsutil.ResolveInputs(a.config.InputPaths, ".tex")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no .tex files found in the given paths")
	}
	a.logger.Debug("Input files resolved.", "count", len(files))

	walker := scan.New(a.scanConf)
	var refs []scan.Reference
	for _, file := range files {
		a.logger.Info("Reading source file.", "path", file)
		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		nodes, err := latex.Parse(string(src))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		_, fileRefs := walker.Walk(ctx, nodes, "")
		a.logger.Debug("File scanned.", "path", file, "references_found", len(fileRefs))
		refs = append(refs, fileRefs...)
	}

	g := graph.Build(refs)
	a.logger.Info("Reference graph assembled.", "nodes", len(g.Nodes), "edges", len(g.Edges))

	path, err := render.WriteDOT(g, a.config.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	a.logger.Info("Graph description written.", "path", path)

	a.logger.Debug("App.Run method finished.")
	return nil
}
