// Package canvas runs the game in a window through ebiten
// Each ebiten update processes pending keys and renders one game frame;
// Draw paints the game's character grid with a monospace face
package canvas

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/game"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
)

const caret = "_"

var (
	background        = core.Black()
	warningBackground = core.Red().Scale(0.2)
	caretColor        = core.White()
)

// Options configures the window
type Options struct {
	Title    string
	Cols     int
	Rows     int
	FontSize float64
	Frame    time.Duration
}

// Runner implements ebiten.Game on top of a game.Game
type Runner struct {
	game *game.Game
	opts Options
	face *text.GoTextFace
	keys keyReader
	log  *logrus.Entry

	cellWidth  int
	cellHeight int
}

// New loads the monospace face and sizes the grid cells
func New(g *game.Game, opts Options) (*Runner, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: opts.FontSize}

	m := face.Metrics()
	r := &Runner{
		game:       g,
		opts:       opts,
		face:       face,
		log:        logger.For("canvas"),
		cellWidth:  int(math.Ceil(text.Advance("M", face))),
		cellHeight: int(math.Ceil(m.HAscent + m.HDescent)),
	}
	if r.cellWidth < 1 || r.cellHeight < 1 {
		return nil, fmt.Errorf("font size %.1f yields empty cells", opts.FontSize)
	}
	return r, nil
}

// Run opens the window and blocks until the game stops or the window closes
func (r *Runner) Run() error {
	ebiten.SetWindowSize(r.opts.Cols*r.cellWidth, r.opts.Rows*r.cellHeight)
	ebiten.SetWindowTitle(r.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps(r.opts.Frame))

	r.log.WithFields(logrus.Fields{
		"cell": fmt.Sprintf("%dx%d", r.cellWidth, r.cellHeight),
		"tps":  ebiten.TPS(),
	}).Info("canvas started")

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update applies pending keys and advances one frame
func (r *Runner) Update() error {
	for _, p := range r.keys.read() {
		r.game.ProcessKey(p.key, p.ctrl)
		if r.game.Stopped() {
			return ebiten.Termination
		}
	}
	r.game.Render()
	return nil
}

// Draw paints the grid rendered by the last Update
func (r *Runner) Draw(screen *ebiten.Image) {
	if constant.MinViewSize.FitsIn(r.game.Size()) {
		screen.Fill(rgba(background))
	} else {
		screen.Fill(rgba(warningBackground))
	}

	buf := r.game.Buffer()
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.Cell(x, y)
			if c.Rune == ' ' {
				continue
			}
			r.drawGlyph(screen, x, y, string(c.Rune), c.Color)
		}
	}

	cursor := r.game.CursorPosition()
	if buf.InBounds(cursor.X, cursor.Y) {
		r.drawGlyph(screen, cursor.X, cursor.Y, caret, caretColor)
	}
}

// Layout resizes the game grid to whatever fits in the window
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{
		Width:  max(outsideWidth/r.cellWidth, 1),
		Height: max(outsideHeight/r.cellHeight, 1),
	}
	if size != r.game.Size() {
		r.log.WithField("size", size.String()).Debug("window resized")
	}
	r.game.SetSize(size)
	return outsideWidth, outsideHeight
}

func (r *Runner) drawGlyph(screen *ebiten.Image, x, y int, s string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x*r.cellWidth), float64(y*r.cellHeight))
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(screen, s, r.face, op)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// tps converts the frame interval into ebiten ticks per second
func tps(frame time.Duration) int {
	if frame <= 0 {
		frame = constant.FrameUpdateInterval
	}
	return max(int(time.Second/frame), 1)
}
