package input

// Held-key auto repeat, in update ticks
const (
	RepeatDelay    = 12
	RepeatInterval = 2
)

// Repeats reports whether a key held for the given number of ticks fires again
// this tick. The first tick of a press is a regular press, not a repeat
func Repeats(held int) bool {
	if held < RepeatDelay {
		return false
	}
	return (held-RepeatDelay)%RepeatInterval == 0
}
