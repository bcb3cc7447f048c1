// Command dungeonflow is the demo host for the generation/navigation core:
// it generates a level, builds a flow field to a destination, and renders
// the result either to the terminal (default) or an Ebiten window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"dungeonflow/pkg/dlog"
	"dungeonflow/pkg/engine/world"
	"dungeonflow/pkg/flowfield"
	"dungeonflow/pkg/game/generator"
	"dungeonflow/pkg/game/render/ascii"
	"dungeonflow/pkg/game/render/ebitenview"
	"dungeonflow/pkg/levelgen"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func initGettext() {
	gotext.Configure("mo", "en_US.utf8", "default")
}

func main() {
	level := flag.Int("level", 0, "dungeon level to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	configPath := flag.String("config", "", "path to a YAML level-generation config")
	visual := flag.String("render", "ascii", "render mode: ascii or ebiten")
	logLevel := flag.String("log-level", "INFO", "log level: DEBUG, INFO, WARN, ERROR")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dungeonflow %s (%s)\n", version, commit)
		return
	}

	initGettext()

	logCfg := dlog.DefaultConfig()
	logCfg.Level = strings.ToUpper(*logLevel)
	logger := dlog.New(logCfg)
	slog.SetDefault(logger)

	cfg := levelgen.DefaultConfig()
	if *configPath != "" {
		loaded, err := levelgen.LoadConfig(*configPath)
		if err != nil {
			logger.Error(gotext.Get("failed to load config"), "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	gen := generator.NewPipelineGenerator(cfg, *seed, logger)
	grid, lc, err := gen.Generate(*level)
	if err != nil {
		logger.Error(gotext.Get("level generation failed"), "level", *level, "error", err)
		os.Exit(1)
	}

	player, found := grid.FindFirst(world.Player)
	if !found {
		logger.Error(gotext.Get("generated level has no player spawn"))
		os.Exit(1)
	}

	ff := flowfield.New(grid)
	if err := ff.Rebuild(player); err != nil {
		logger.Error(gotext.Get("flow field rebuild failed"), "error", err)
		os.Exit(1)
	}

	switch strings.ToLower(*visual) {
	case "ebiten":
		runEbiten(grid, ff, *level, *seed)
	default:
		runASCII(grid, ff, lc)
	}
}

func runASCII(grid *world.Grid, ff *flowfield.FlowField, lc levelgen.LevelConstants) {
	renderer := ascii.New()
	var buf strings.Builder
	buf.WriteString(ascii.Status(lc.Level, lc.Width, lc.Height))
	buf.WriteByte('\n')
	renderer.RenderWithFlowField(&buf, grid, ff)
	fmt.Print(buf.String())
}

func runEbiten(grid *world.Grid, ff *flowfield.FlowField, level int, seed int64) {
	view := ebitenview.New(grid)
	view.SetFlowField(ff)
	view.SetStatus(ebitenview.Title(level, seed))

	ebiten.SetWindowTitle(ebitenview.Title(level, seed))
	ebiten.SetWindowSize(grid.Cols()*16, grid.Rows()*16)
	if err := ebiten.RunGame(view); err != nil {
		slog.Default().Error(gotext.Get("ebiten run failed"), "error", err)
		os.Exit(1)
	}
}
