// Package terminal drives a tcell screen for the game
//
// Input events are decoded into the game's sentinel key alphabet by the input
// package; output is a full-frame flush of a render.RenderBuffer plus a caret
// position. Fini restores the screen and is safe to call from both the crash
// handler and a deferred call in main.
package terminal
