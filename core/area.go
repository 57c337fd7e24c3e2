package core

// Rect represents a half-open cell rectangle
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// NewRect builds a rectangle anchored at pos with the given size
func NewRect(pos Position, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains checks if the cell at p lies within the rectangle
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Corners returns the four corner cells: top-left, top-right, bottom-left, bottom-right
func (r Rect) Corners() [4]Position {
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	return [4]Position{
		{X: r.X, Y: r.Y},
		{X: right, Y: r.Y},
		{X: r.X, Y: bottom},
		{X: right, Y: bottom},
	}
}
