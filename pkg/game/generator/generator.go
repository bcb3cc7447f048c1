// Package generator exposes the level pipeline to the host as the
// GridGenerator interface the teacher's packages were built around,
// wired to pkg/levelgen's BSP/MST/A*/cellular-automata pipeline instead
// of the teacher's single-algorithm generator.
package generator

import (
	"log/slog"

	"dungeonflow/pkg/engine/world"
	"dungeonflow/pkg/levelgen"
)

// GridGenerator is an interface for map generation algorithms.
type GridGenerator interface {
	Generate(level int) (*world.Grid, levelgen.LevelConstants, error)
	Name() string
}

// PipelineGenerator adapts levelgen.GenerateLevel to GridGenerator,
// carrying the Config and seed a concrete instance generates with.
type PipelineGenerator struct {
	Config levelgen.Config
	Seed   int64
	Logger *slog.Logger
}

// NewPipelineGenerator builds a PipelineGenerator with cfg and seed fixed
// for the process lifetime, matching the source's single pseudo-random
// stream (spec.md §5).
func NewPipelineGenerator(cfg levelgen.Config, seed int64, logger *slog.Logger) *PipelineGenerator {
	return &PipelineGenerator{Config: cfg, Seed: seed, Logger: logger}
}

// Generate runs the full pipeline for level.
func (g *PipelineGenerator) Generate(level int) (*world.Grid, levelgen.LevelConstants, error) {
	return levelgen.GenerateLevel(g.Config, level, g.Seed, g.Logger)
}

// Name identifies this generator for logging/diagnostics.
func (g *PipelineGenerator) Name() string {
	return "bsp-mst-astar-ca"
}

// DefaultGenerator is the default map generator, seeded from the default
// configuration and a fixed seed. Hosts that need a reproducible-but-
// different stream should build their own PipelineGenerator.
var DefaultGenerator GridGenerator = NewPipelineGenerator(levelgen.DefaultConfig(), 1, nil)
