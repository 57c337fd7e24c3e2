package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MarkLagodych/CyberspaceEmissary/constant"
	"github.com/MarkLagodych/CyberspaceEmissary/core"
	"github.com/MarkLagodych/CyberspaceEmissary/game"
	"github.com/MarkLagodych/CyberspaceEmissary/logger"
	"github.com/MarkLagodych/CyberspaceEmissary/terminal"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	logLevelFlag  = flag.String("log-level", "", "Log level: debug, info, warn, error (default LOG_LEVEL or info)")
	frameFlag     = flag.Duration("frame", constant.FrameUpdateInterval, "Frame interval")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag, *logLevelFlag); logFile != nil {
		defer logFile.Close()
	}
	log := logger.For("main")

	colorMode := terminal.ParseColorMode(*colorModeFlag)

	// Initialize terminal
	term, err := terminal.New(colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()
	core.SetCrashReset(term.Fini)

	log.WithField("color", colorMode.String()).Info("terminal initialized")

	g := game.New(term.Size())

	frame := *frameFlag
	if frame <= 0 {
		frame = constant.FrameUpdateInterval
	}
	frameTicker := time.NewTicker(frame)
	defer frameTicker.Stop()

	eventChan := make(chan terminal.Event, constant.EventQueueSize)
	// Input polling runs beside the loop since PollEvent blocks
	core.Go(func() {
		for {
			ev := term.PollEvent()
			// Clean exit on terminal closure
			if ev.Type == terminal.EventClosed {
				return
			}
			eventChan <- ev
		}
	})

	// Main game loop: at most one input event per frame, then render
	for !g.Stopped() {
		<-frameTicker.C

		select {
		case ev := <-eventChan:
			switch ev.Type {
			case terminal.EventKey:
				g.ProcessKey(ev.Key, ev.Ctrl)
			case terminal.EventResize:
				g.SetSize(ev.Size)
				term.Sync()
			}
		default:
		}

		if g.Stopped() {
			break
		}

		g.Render()
		term.Flush(g.Buffer(), g.CursorPosition())
	}

	log.WithField("deaths", g.Hero().Deaths).Info("game stopped")
}
