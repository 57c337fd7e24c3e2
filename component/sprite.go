package component

import (
	"strings"
	"unicode/utf8"

	"github.com/MarkLagodych/CyberspaceEmissary/core"
)

// SpriteID indexes a sprite within its figure
type SpriteID = int

// Sprite is one multi-line colored text block inside a figure
// Size is derived from Content once at construction and is not recomputed
type Sprite struct {
	Color   core.Color
	Content string
	Offset  core.Position // Relative to the owning figure's position
	Size    core.Size
	Active  bool
}

// NewSprite creates an active sprite at offset 0 with its size derived from content
func NewSprite(content string, color core.Color) Sprite {
	return Sprite{
		Color:   color,
		Content: content,
		Size:    ContentSize(content),
		Active:  true,
	}
}

// ContentSize measures a text block: height is the line count, width the longest line in runes
func ContentSize(content string) core.Size {
	var size core.Size
	for _, line := range strings.Split(content, "\n") {
		size.Height++
		size.Width = max(size.Width, utf8.RuneCountInString(line))
	}
	return size
}

// Lines splits the content into rows
func (s *Sprite) Lines() []string {
	return strings.Split(s.Content, "\n")
}
