package core

import "fmt"

// Position is an integer cell coordinate, X grows right and Y grows down
type Position struct {
	X, Y int
}

// Origin returns (0, 0)
func Origin() Position {
	return Position{}
}

// Add returns p + other
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// AddAssign shifts p in place
func (p *Position) AddAssign(other Position) {
	p.X += other.X
	p.Y += other.Y
}

// RelativeTo projects an absolute position into the coordinate space anchored at view
func (p Position) RelativeTo(view Position) Position {
	return p.Sub(view)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
