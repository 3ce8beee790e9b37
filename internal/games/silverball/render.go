package silverball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	HoleChar   = '◎'
	WallChar   = '█'
	DeadlyChar = '▓'
	TrapChar   = '░'
)

// tiltArrows indexes an arrow by octant, starting east and turning
// clockwise in screen space.
var tiltArrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// viewport maps world coordinates to the cells inside the field box.
type viewport struct {
	x, y, w, h int
}

func (v viewport) cell(p core.Vector2) (int, int) {
	cx := v.x + int(p.X/WorldW*float64(v.w))
	cy := v.y + int(p.Y/WorldH*float64(v.h))
	return core.Clamp(cx, v.x, v.x+v.w-1), core.Clamp(cy, v.y, v.y+v.h-1)
}

// world returns the world position of a cell center.
func (v viewport) world(cx, cy int) core.Vector2 {
	return core.Vec(
		(float64(cx-v.x)+0.5)/float64(v.w)*WorldW,
		(float64(cy-v.y)+0.5)/float64(v.h)*WorldH,
	)
}

func (v viewport) fill(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	x0, y0 := v.cell(core.Vec(r.X, r.Y))
	x1, y1 := v.cell(core.Vec(r.Right(), r.Bottom()))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if r.Contains(v.world(cx, cy)) {
				dst.SetColored(cx, cy, ch, c)
			}
		}
	}
}

// Render draws the HUD, the playfield and any overlay.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	if g.screenTooSmall || w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.run == nil {
		return
	}

	g.renderHUD(dst)

	box := core.NewRect(0, 1, w, h-2)
	dst.DrawBox(box)
	vp := viewport{x: 1, y: 2, w: w - 2, h: h - 4}
	g.renderField(dst, vp)

	dst.DrawTextColored(1, h-1, "←↑↓→/wasd tilt  space level  p pause  q quit", core.ColorGray)

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.run.Level()
	remaining := g.run.Deadline().Sub(g.now()).Seconds()
	if remaining < 0 {
		remaining = 0
	}

	left := fmt.Sprintf("Level %d/%d %s", g.campaign.Index()+1, g.campaign.Len(), lvl.Name)
	dst.DrawTextColored(0, 0, left, core.ColorCyan)

	right := fmt.Sprintf("Time %4.1fs  Points %4d  Total %5d %c",
		remaining, g.points, g.campaign.Total(), g.tiltArrow())
	x := dst.Width() - len([]rune(right))
	timeColor := core.ColorWhite
	if remaining < 5 {
		timeColor = core.ColorRed
	}
	dst.DrawTextColored(x, 0, right, timeColor)
}

func (g *Game) renderField(dst *core.Screen, vp viewport) {
	pf := g.run.Playfield()

	for _, t := range pf.Traps {
		vp.fill(dst, t, TrapChar, core.ColorOrange)
	}
	for _, o := range pf.Obstacles {
		ch, c := WallChar, core.ColorGray
		if o.Kind == engine.KindDeadly {
			ch, c = DeadlyChar, core.ColorRed
		}
		vp.fill(dst, o.Rect, ch, c)
	}

	hx, hy := vp.cell(pf.Hole.Center)
	dst.SetColored(hx, hy, HoleChar, core.ColorGreen)

	bx, by := vp.cell(g.ballPos)
	dst.SetColored(bx, by, BallChar, core.ColorBrightWhite)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2

	switch {
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ")
		dst.DrawTextCentered(mid+1, " p to resume ")
	case g.phase == PhaseCleared:
		dst.DrawTextCentered(mid, " "+g.message+" ")
		dst.DrawTextCentered(mid+1, " enter for the next level ")
	case g.phase == PhaseOver:
		dst.DrawTextCentered(mid-1, " GAME OVER ")
		dst.DrawTextCentered(mid, " "+g.message+" ")
		dst.DrawTextCentered(mid+1, fmt.Sprintf(" Total %d  r to restart ", g.campaign.Total()))
	case g.phase == PhaseWon:
		dst.DrawTextCentered(mid-1, " YOU WIN ")
		dst.DrawTextCentered(mid, " "+g.message+" ")
		dst.DrawTextCentered(mid+1, " r to play again ")
	}
}

// tiltArrow shows the tilt direction, or a dot when the board is level.
func (g *Game) tiltArrow() rune {
	t := g.tilt.Acceleration()
	if t.Length() < 1e-9 {
		return '·'
	}
	angle := math.Atan2(t.Y, t.X)
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return tiltArrows[octant]
}
