// Package asset holds the fixed ASCII art the world is built from
// Hero and sword art by Black Sheep
package asset

import "strings"

// Markers
const (
	Debug = "?"
)

// Hero frames, all 3x3 except the settled crouch
const (
	Hero = "" +
		" 0\n" +
		"/#\\\n" +
		"/ \\"

	HeroCrouching1 = "" +
		" 0\n" +
		"/#\\\n" +
		"< >"

	// HeroCrouching2 is drawn one row lower than the other frames
	HeroCrouching2 = "" +
		" 0\n" +
		"<#>"

	HeroJumpingRight = "" +
		" 0/\n" +
		"/#\n" +
		"/ >"

	HeroJumpingLeft = "" +
		"\\0\n" +
		" #\\\n" +
		"< \\"

	HeroFall = "" +
		"\\0/\n" +
		" #\n" +
		"/ \\"
)

// Sword swing frames, each padded to a 3x3 box
const (
	Sword1 = "\n\n▛"
	Sword2 = "\n■■\n ▔"
	Sword3 = "\n■■■"
	Sword4 = " ▁\n■■"
	Sword5 = "▙"
)

// Hazards and enemies
const (
	Spikes = "^^^"

	Virus = "" +
		"(@)\n" +
		"/ \\"

	Worm = "~o~"
)

// Obstacles
const (
	Wall = "" +
		"##\n" +
		"##\n" +
		"##\n" +
		"##"

	Platform = "[=====]"
)

// Tutorial is the key reference shown in the first room
const Tutorial = "" +
	"*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*\n" +
	"| Quit: Ctrl + Q                          |\n" +
	"* Move left: LEFT ARROW or [              *\n" +
	"| Move right: RIGHT ARROW or ]            |\n" +
	"* Jump: UP ARROW or /                     *\n" +
	"| Crouch: DOWN ARROW or .                 |\n" +
	"* Attack: TAB or ,                        *\n" +
	"| Cast a spell: any letters + ENTER       |\n" +
	"*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*-*"

// GridBanner greets the hero in the second room
const GridBanner = "" +
	"+------------------------------+\n" +
	"|  THE GRID  -  say 'warp' to  |\n" +
	"|  return, 'home' to restart   |\n" +
	"+------------------------------+"

// Floor returns a floor line of the given width
func Floor(width int) string {
	return strings.Repeat("-", width)
}
