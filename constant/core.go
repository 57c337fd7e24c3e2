package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation + render cadence (~33 FPS)
	FrameUpdateInterval = 30 * time.Millisecond

	// EventQueueSize is the capacity of the shell's input event channel
	EventQueueSize = 256
)
