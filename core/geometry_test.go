package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionArithmetic(t *testing.T) {
	a := Position{X: 3, Y: -2}
	b := Position{X: 1, Y: 5}

	assert.Equal(t, Position{X: 4, Y: 3}, a.Add(b))
	assert.Equal(t, Position{X: 2, Y: -7}, a.Sub(b))
	assert.Equal(t, Position{X: 2, Y: -7}, a.RelativeTo(b))

	a.AddAssign(b)
	assert.Equal(t, Position{X: 4, Y: 3}, a)
	assert.Equal(t, Position{}, Origin())
}

func TestSizeFitsIn(t *testing.T) {
	tests := []struct {
		name string
		a, b Size
		want bool
	}{
		{"Equal", Size{10, 5}, Size{10, 5}, true},
		{"Smaller", Size{3, 2}, Size{10, 5}, true},
		{"Too wide", Size{11, 5}, Size{10, 5}, false},
		{"Too tall", Size{10, 6}, Size{10, 5}, false},
		{"Both larger", Size{20, 20}, Size{10, 5}, false},
		{"Zero", Size{}, Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.FitsIn(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.a.Width <= tt.b.Width && tt.a.Height <= tt.b.Height, got)
		})
	}
}

func TestSizeEquality(t *testing.T) {
	assert.True(t, Size{80, 25} == Size{Width: 80, Height: 25})
	assert.False(t, Size{80, 25} == Size{25, 80})
}

func TestRectContainsAndCorners(t *testing.T) {
	r := NewRect(Position{X: 2, Y: 3}, Size{Width: 3, Height: 2})

	assert.True(t, r.Contains(Position{X: 2, Y: 3}))
	assert.True(t, r.Contains(Position{X: 4, Y: 4}))
	assert.False(t, r.Contains(Position{X: 5, Y: 3}), "right edge is exclusive")
	assert.False(t, r.Contains(Position{X: 2, Y: 5}), "bottom edge is exclusive")

	assert.Equal(t, [4]Position{{2, 3}, {4, 3}, {2, 4}, {4, 4}}, r.Corners())
	for _, c := range r.Corners() {
		assert.True(t, r.Contains(c), "corner %v must be inside", c)
	}
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{Width: 0, Height: 1}.Empty())
	assert.True(t, Rect{Width: 4, Height: 0}.Empty())
	assert.False(t, Rect{Width: 1, Height: 1}.Empty())
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#ff00ff", Magenta().Hex())
	assert.Equal(t, Color{127, 127, 127}, White().Scale(0.5))
	assert.Equal(t, Black(), Cyan().Scale(0))
	assert.Equal(t, Yellow(), Yellow().Scale(2))
}
