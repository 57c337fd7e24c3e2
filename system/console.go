package system

// SpellConsole buffers the spell being typed on the bottom line
type SpellConsole struct {
	spell []rune
}

// NewSpellConsole creates an empty console
func NewSpellConsole() *SpellConsole {
	return &SpellConsole{}
}

func (c *SpellConsole) AddChar(ch rune) {
	c.spell = append(c.spell, ch)
}

// Backspace drops the last character, if any
func (c *SpellConsole) Backspace() {
	if len(c.spell) > 0 {
		c.spell = c.spell[:len(c.spell)-1]
	}
}

// Len returns the spell length in characters
func (c *SpellConsole) Len() int {
	return len(c.spell)
}

func (c *SpellConsole) Spell() string {
	return string(c.spell)
}

// Finish returns the typed spell and clears the console
func (c *SpellConsole) Finish() string {
	s := string(c.spell)
	c.spell = c.spell[:0]
	return s
}
