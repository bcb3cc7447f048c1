// Package ascii renders a generated grid and its flow field to the
// terminal, adapted from the teacher's tui package idiom: fixed icon
// glyphs per tile type, coloured via gookit/color styles, sized against
// the real terminal via the engine's terminal package.
package ascii

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"dungeonflow/pkg/engine/terminal"
	"dungeonflow/pkg/engine/world"
	"dungeonflow/pkg/flowfield"
)

// Icon constants, one glyph per TileType.
const (
	IconEmpty               = " "
	IconFloor               = "·"
	IconWall                = "▒"
	IconObstacle            = "▲"
	IconDebugWall           = "▓"
	IconPlayer              = "@"
	IconEnemy               = "e"
	IconHealthPotion        = "h"
	IconArmourPotion        = "a"
	IconHealthBoostPotion   = "H"
	IconArmourBoostPotion   = "A"
	IconSpeedBoostPotion    = "s"
	IconFireRateBoostPotion = "f"
)

var tileIcons = map[world.TileType]string{
	world.Empty:               IconEmpty,
	world.Floor:               IconFloor,
	world.Wall:                IconWall,
	world.Obstacle:            IconObstacle,
	world.DebugWall:           IconDebugWall,
	world.Player:              IconPlayer,
	world.Enemy1:              IconEnemy,
	world.HealthPotion:        IconHealthPotion,
	world.ArmourPotion:        IconArmourPotion,
	world.HealthBoostPotion:   IconHealthBoostPotion,
	world.ArmourBoostPotion:   IconArmourBoostPotion,
	world.SpeedBoostPotion:    IconSpeedBoostPotion,
	world.FireRateBoostPotion: IconFireRateBoostPotion,
}

// Renderer draws a Grid (and optionally a FlowField overlay) to the
// terminal using gookit/color styles, one per tile kind.
type Renderer struct {
	colorWall     color.Style
	colorFloor    color.Style
	colorObstacle color.Style
	colorPlayer   color.Style
	colorEnemy    color.Style
	colorItem     color.Style
	colorArrow    color.Style
}

// New builds a Renderer with the teacher's palette conventions: subdued
// grays for structure, a bold green player, red enemies, magenta items.
func New() *Renderer {
	return &Renderer{
		colorWall:     color.Style{color.FgGray},
		colorFloor:    color.Style{color.FgGray, color.OpBold},
		colorObstacle: color.Style{color.FgYellow, color.OpBold},
		colorPlayer:   color.Style{color.FgGreen, color.OpBold},
		colorEnemy:    color.Style{color.FgRed, color.OpBold},
		colorItem:     color.Style{color.FgMagenta},
		colorArrow:    color.Style{color.FgCyan},
	}
}

// TerminalSize reports the current terminal's columns and rows, via the
// engine's terminal package (falls back to 80x24 when stdout is not a
// terminal).
func TerminalSize() (cols, rows int) {
	return terminal.GetSize()
}

// Render writes grid to w, one colored glyph per tile.
func (r *Renderer) Render(w *strings.Builder, grid *world.Grid) {
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if col == 0 && row > 0 {
			w.WriteByte('\n')
		}
		w.WriteString(r.glyph(c.Type))
	})
	w.WriteByte('\n')
}

// RenderWithFlowField overlays direction arrows from ff onto every FLOOR
// tile that is not occupied by the player or an entity, letting a demo
// host visualise the flow field pursuers would follow.
func (r *Renderer) RenderWithFlowField(w *strings.Builder, grid *world.Grid, ff *flowfield.FlowField) {
	grid.ForEachCell(func(row, col int, c *world.Cell) {
		if col == 0 && row > 0 {
			w.WriteByte('\n')
		}
		if c.Type != world.Floor {
			w.WriteString(r.glyph(c.Type))
			return
		}
		dir, err := ff.Direction(world.Point{X: col, Y: row})
		if err != nil {
			w.WriteString(r.glyph(c.Type))
			return
		}
		w.WriteString(r.colorArrow.Sprint(arrowGlyph(dir)))
	})
	w.WriteByte('\n')
}

func (r *Renderer) glyph(t world.TileType) string {
	icon, ok := tileIcons[t]
	if !ok {
		icon = IconEmpty
	}
	switch t {
	case world.Wall, world.DebugWall:
		return r.colorWall.Sprint(icon)
	case world.Floor, world.Empty:
		return r.colorFloor.Sprint(icon)
	case world.Obstacle:
		return r.colorObstacle.Sprint(icon)
	case world.Player:
		return r.colorPlayer.Sprint(icon)
	case world.Enemy1:
		return r.colorEnemy.Sprint(icon)
	default:
		return r.colorItem.Sprint(icon)
	}
}

func arrowGlyph(dir world.Point) string {
	switch {
	case dir.X == 0 && dir.Y == 0:
		return "·"
	case dir.X == 0 && dir.Y < 0:
		return "↑"
	case dir.X == 0 && dir.Y > 0:
		return "↓"
	case dir.Y == 0 && dir.X < 0:
		return "←"
	case dir.Y == 0 && dir.X > 0:
		return "→"
	case dir.X < 0 && dir.Y < 0:
		return "↖"
	case dir.X > 0 && dir.Y < 0:
		return "↗"
	case dir.X < 0 && dir.Y > 0:
		return "↙"
	default:
		return "↘"
	}
}

// Status formats a one-line status string, mirroring the teacher's
// level-indicator line in tui.go.
func Status(level, width, height int) string {
	return fmt.Sprintf("level %d  (%dx%d)", level, width, height)
}
