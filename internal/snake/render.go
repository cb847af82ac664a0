package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Zoom limits: horizontal screen characters per grid cell.
const (
	MinZoom = 1
	MaxZoom = 4
)

const hudHeight = 2 // Score line + separator

// Palette holds the colors used to draw the field.
type Palette struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Border core.Color
}

// DefaultPalette matches the classic green snake and yellow food.
func DefaultPalette() Palette {
	return Palette{
		Head:   core.ColorBrightGreen,
		Body:   core.ColorGreen,
		Food:   core.ColorBrightYellow,
		Border: core.ColorGray,
	}
}

// Renderer draws snapshots into a screen buffer. Grids larger than the screen
// are shown through a viewport that follows the head.
type Renderer struct {
	Palette Palette
	Zoom    int
	Help    string // Optional key help shown under the field
}

// NewRenderer creates a renderer with the given palette and zoom.
func NewRenderer(p Palette, zoom int) *Renderer {
	return &Renderer{Palette: p, Zoom: core.Clamp(zoom, MinZoom, MaxZoom)}
}

// ZoomIn widens each grid cell by one character, up to MaxZoom.
func (r *Renderer) ZoomIn() {
	r.Zoom = core.Clamp(r.Zoom+1, MinZoom, MaxZoom)
}

// ZoomOut narrows each grid cell by one character, down to MinZoom.
func (r *Renderer) ZoomOut() {
	r.Zoom = core.Clamp(r.Zoom-1, MinZoom, MaxZoom)
}

// Render draws the HUD, field, snake, food and any overlay.
func (r *Renderer) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	r.renderHUD(dst, snap)

	view, ok := r.layout(dst, snap.Grid)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	origin := core.Cell{
		X: cameraOrigin(snap.Grid.Width, view.cols, snap.Head().X),
		Y: cameraOrigin(snap.Grid.Height, view.rows, snap.Head().Y),
	}

	r.drawBorder(dst, view.frame)
	r.drawCell(dst, view, origin, snap.Food, '*', r.Palette.Food)
	// Tail first so the head is drawn on top when segments overlap.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(dst, view, origin, snap.Body[i], '@', r.Palette.Head)
		} else {
			r.drawCell(dst, view, origin, snap.Body[i], 'o', r.Palette.Body)
		}
	}

	if r.Help != "" && view.frame.Bottom() < dst.Height() {
		dst.DrawTextCentered(view.frame.Bottom(), r.Help)
	}

	if snap.Status == StatusOver {
		renderOverlay(dst, fmt.Sprintf("Game Over: %s", snap.Reason), fmt.Sprintf("Score: %d", snap.Score), "R restart  |  Q quit")
	}
}

// viewport describes where the visible part of the grid lands on screen.
type viewport struct {
	frame core.Rect // Border box, interior is the field
	cols  int       // Grid cells visible horizontally
	rows  int       // Grid cells visible vertically
	zoom  int
}

func (r *Renderer) layout(dst *core.Screen, grid core.Grid) (viewport, bool) {
	zoom := core.Clamp(r.Zoom, MinZoom, MaxZoom)
	availW := dst.Width() - 2
	availH := dst.Height() - hudHeight - 2
	if r.Help != "" {
		availH--
	}
	if availW < zoom || availH < 1 {
		return viewport{}, false
	}

	cols := min(grid.Width, availW/zoom)
	rows := min(grid.Height, availH)
	frameW := cols*zoom + 2
	frameH := rows + 2

	return viewport{
		frame: core.NewRect((dst.Width()-frameW)/2, hudHeight, frameW, frameH),
		cols:  cols,
		rows:  rows,
		zoom:  zoom,
	}, true
}

// cameraOrigin returns the first visible grid coordinate on one axis, keeping
// the head centered while the view stays inside the grid.
func cameraOrigin(gridLen, view, head int) int {
	if gridLen <= view {
		return 0
	}
	return core.Clamp(head-view/2, 0, gridLen-view)
}

func (r *Renderer) drawBorder(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame)
	recolor := func(x, y int) {
		dst.SetColored(x, y, dst.Get(x, y), r.Palette.Border)
	}
	for x := frame.X; x < frame.Right(); x++ {
		recolor(x, frame.Y)
		recolor(x, frame.Bottom()-1)
	}
	for y := frame.Y + 1; y < frame.Bottom()-1; y++ {
		recolor(frame.X, y)
		recolor(frame.Right()-1, y)
	}
}

func (r *Renderer) drawCell(dst *core.Screen, view viewport, origin, c core.Cell, ch rune, color core.Color) {
	vx := c.X - origin.X
	vy := c.Y - origin.Y
	if vx < 0 || vx >= view.cols || vy < 0 || vy >= view.rows {
		return
	}
	sx := view.frame.X + 1 + vx*view.zoom
	sy := view.frame.Y + 1 + vy
	for i := 0; i < view.zoom; i++ {
		dst.SetColored(sx+i, sy, ch, color)
	}
}

func (r *Renderer) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d  Grid: %dx%d  Zoom: %dx",
		snap.Score, snap.Body.Len(), snap.Grid.Width, snap.Grid.Height, core.Clamp(r.Zoom, MinZoom, MaxZoom))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered box with one line of text per entry.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		pad := (maxLen - len([]rune(l))) / 2
		dst.DrawText(box.X+2+pad, box.Y+1+i, l)
	}
}

// Plain renders snap into a fresh width×height buffer and returns its text.
// Used for screenshots and debugging.
func (r *Renderer) Plain(snap Snapshot, width, height int) string {
	screen := core.NewScreen(width, height)
	r.Render(screen, snap)
	return strings.TrimRight(screen.String(), " \n")
}
