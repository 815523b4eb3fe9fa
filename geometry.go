package inputbar

import "fmt"

// Size is a width and height pair in points.
type Size struct {
	W, H float64
}

// Rect is an axis aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the trailing edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale multiplies every component of r by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{X: r.X * f, Y: r.Y * f, W: r.W * f, H: r.H * f}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.W, r.H)
}

// Insets are edge insets in top, left, bottom, right order.
// Negative values grow the content past the edge.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Inset shrinks r by the insets.
func (in Insets) Inset(r Rect) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}
