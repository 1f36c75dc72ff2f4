package render

import (
	"math"

	"github.com/lixenwraith/void-trader/vmath"
)

// Camera maps world coordinates onto terminal cells
// World Y points up, screen rows grow downward
type Camera struct {
	Center vmath.Vec2
	// Scale is world units per terminal column
	Scale float64
	// Aspect is the row to column height ratio of a terminal cell
	Aspect        float64
	Width, Height int
}

func NewCamera(scale float64) Camera {
	return Camera{Scale: scale, Aspect: 2}
}

// Resize updates the viewport dimensions in cells
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// rowScale is world units per terminal row
func (c Camera) rowScale() float64 {
	return c.Scale * c.Aspect
}

// Project returns the cell holding p, ok is false outside the viewport
func (c Camera) Project(p vmath.Vec2) (x, y int, ok bool) {
	if c.Scale <= 0 {
		return 0, 0, false
	}
	x = c.Width/2 + vmath.FloorDiv(p.X-c.Center.X, c.Scale)
	y = c.Height/2 - vmath.FloorDiv(p.Y-c.Center.Y, c.rowScale()) - 1
	ok = x >= 0 && x < c.Width && y >= 0 && y < c.Height
	return x, y, ok
}

// Unproject returns the world position at the center of cell (x, y)
func (c Camera) Unproject(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: c.Center.X + (float64(x-c.Width/2)+0.5)*c.Scale,
		Y: c.Center.Y + (float64(c.Height/2-y-1)+0.5)*c.rowScale(),
	}
}

// Edge returns the border cell in the direction of p from the viewport center,
// inset by margin cells
func (c Camera) Edge(p vmath.Vec2, margin int) (x, y int) {
	dx := (p.X - c.Center.X) / c.Scale
	dy := -(p.Y - c.Center.Y) / c.rowScale()
	halfW := float64(c.Width/2 - margin)
	halfH := float64(c.Height/2 - margin)
	if dx == 0 && dy == 0 || halfW <= 0 || halfH <= 0 {
		return c.Width / 2, c.Height / 2
	}
	t := math.Min(halfW/math.Abs(dx), halfH/math.Abs(dy))
	return c.Width/2 + int(math.Round(dx*t)), c.Height/2 + int(math.Round(dy*t))
}

// Radius returns the cell span of a world radius along columns and rows
func (c Camera) Radius(r float64) (cols, rows float64) {
	return r / c.Scale, r / c.rowScale()
}
