// Package ebitenview draws a generated grid and flow field as a 2D
// Ebiten window: one filled rect per tile, coloured by TileType, with an
// optional arrow overlay for the flow field. Adapted from the teacher's
// renderer/ebiten package idiom (an ebiten.Game implementation drawing
// with vector.DrawFilledRect onto an *ebiten.Image), scaled down to what
// this core needs to demonstrate rather than the teacher's full
// console/menu/callout UI.
package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeonflow/pkg/engine/world"
	"dungeonflow/pkg/flowfield"
)

const defaultTileSize = 16

var tileColors = map[world.TileType]color.Color{
	world.Empty:               color.RGBA{R: 10, G: 10, B: 10, A: 255},
	world.Floor:               color.RGBA{R: 60, G: 60, B: 70, A: 255},
	world.Wall:                color.RGBA{R: 110, G: 110, B: 120, A: 255},
	world.Obstacle:            color.RGBA{R: 150, G: 120, B: 40, A: 255},
	world.DebugWall:           color.RGBA{R: 200, G: 30, B: 180, A: 255},
	world.Player:              color.RGBA{R: 50, G: 200, B: 90, A: 255},
	world.Enemy1:              color.RGBA{R: 200, G: 50, B: 50, A: 255},
	world.HealthPotion:        color.RGBA{R: 220, G: 90, B: 160, A: 255},
	world.ArmourPotion:        color.RGBA{R: 90, G: 160, B: 220, A: 255},
	world.HealthBoostPotion:   color.RGBA{R: 240, G: 130, B: 190, A: 255},
	world.ArmourBoostPotion:   color.RGBA{R: 130, G: 190, B: 240, A: 255},
	world.SpeedBoostPotion:    color.RGBA{R: 240, G: 220, B: 90, A: 255},
	world.FireRateBoostPotion: color.RGBA{R: 240, G: 140, B: 40, A: 255},
}

var arrowColor = color.RGBA{R: 90, G: 220, B: 220, A: 255}

// View is an ebiten.Game that renders a Grid and, when present, a
// FlowField's direction arrows on top of it.
type View struct {
	grid     *world.Grid
	flow     *flowfield.FlowField
	tileSize int
	face     *text.GoTextFace
	status   string
}

// New builds a View over grid. Call SetFlowField to enable the arrow
// overlay, and SetStatus to set the title-bar style status line.
func New(grid *world.Grid) *View {
	return &View{grid: grid, tileSize: defaultTileSize}
}

// SetFlowField attaches (or clears, with nil) the flow field overlay.
func (v *View) SetFlowField(ff *flowfield.FlowField) {
	v.flow = ff
}

// SetStatus sets the one-line status string for the top of the window,
// mirroring the ascii renderer's Status helper. Draw renders it only when
// the view has a font face, and nothing in this package sets one, so the
// line is not drawn.
func (v *View) SetStatus(status string) {
	v.status = status
}

// Update advances game state. The core has nothing to tick per frame; the
// demo host drives regeneration and destination changes externally and
// calls SetFlowField/SetStatus as needed.
func (v *View) Update() error {
	return nil
}

// Layout reports the window's logical pixel size for the bound grid.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.grid.Cols() * v.tileSize, v.grid.Rows()*v.tileSize + statusBarHeight
}

const statusBarHeight = 24

// Draw paints one filled rect per tile, then the flow field arrows (if
// attached) on top of every FLOOR tile.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	v.grid.ForEachCell(func(row, col int, c *world.Cell) {
		x := float32(col * v.tileSize)
		y := float32(row*v.tileSize + statusBarHeight)
		size := float32(v.tileSize)

		tileColor, ok := tileColors[c.Type]
		if !ok {
			tileColor = tileColors[world.Empty]
		}
		vector.DrawFilledRect(screen, x, y, size-1, size-1, tileColor, false)

		if v.flow != nil && c.Type == world.Floor {
			if dir, err := v.flow.Direction(world.Point{X: col, Y: row}); err == nil {
				drawArrow(screen, x, y, size, dir)
			}
		}
	})

	if v.status != "" {
		drawStatusLine(screen, v.status, v.face)
	}
}

func drawArrow(screen *ebiten.Image, x, y, size float32, dir world.Point) {
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	cx, cy := x+size/2, y+size/2
	tip := size * 0.35
	tx, ty := cx+float32(dir.X)*tip, cy+float32(dir.Y)*tip
	vector.StrokeLine(screen, cx, cy, tx, ty, 2, arrowColor, false)
}

func drawStatusLine(screen *ebiten.Image, status string, face *text.GoTextFace) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	text.Draw(screen, status, face, op)
}

// Title formats the window title for level/seed, mirroring the host's
// gotext-localized status strings.
func Title(level int, seed int64) string {
	return fmt.Sprintf("dungeonflow - level %d - seed %d", level, seed)
}
