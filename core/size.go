package core

import "fmt"

// Size is a width/height pair in cells
type Size struct {
	Width, Height int
}

// FitsIn reports whether both dimensions are no larger than other's
func (s Size) FitsIn(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
