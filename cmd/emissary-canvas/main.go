package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MarkLagodych/CyberspaceEmissary/canvas"
	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/game"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
)

var (
	scaleFlag    = flag.Float64("scale", 16, "Font size in pixels")
	colsFlag     = flag.Int("cols", constant.WorldMinWidth, "Initial window width in cells")
	rowsFlag     = flag.Int("rows", constant.WorldHeight, "Initial window height in cells")
	frameFlag    = flag.Duration("frame", constant.FrameUpdateInterval, "Frame interval")
	logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error (default LOG_LEVEL or info)")
)

func main() {
	flag.Parse()

	// The window leaves stderr free, so logs go there
	logger.Init(logger.Options{Level: *logLevelFlag, Output: os.Stderr})

	g := game.New(core.Size{Width: *colsFlag, Height: *rowsFlag})

	runner, err := canvas.New(g, canvas.Options{
		Title:    "Cyberspace Emissary",
		Cols:     *colsFlag,
		Rows:     *rowsFlag,
		FontSize: *scaleFlag,
		Frame:    *frameFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create window: %v\n", err)
		os.Exit(1)
	}

	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
