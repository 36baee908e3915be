package input

import "strings"

// Combo is a parsed key binding such as "Q", "SHIFT" or "CTRL+SHIFT+X".
type Combo struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// ParseCombo parses a "+"-joined binding. A lone modifier name binds the
// modifier itself. Any unknown token makes the whole binding invalid.
func ParseCombo(s string) (Combo, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Combo{}, false
	}

	tokens := strings.Split(s, "+")
	var c Combo
	for i, tok := range tokens {
		k, ok := KeyByName(tok)
		if !ok {
			return Combo{}, false
		}
		last := i == len(tokens)-1
		if !k.IsModifier() || last {
			if c.Key != KeyNone {
				// Two non-modifier keys.
				return Combo{}, false
			}
			c.Key = k
			continue
		}
		c.setModifier(k)
	}
	if c.Key == KeyNone {
		return Combo{}, false
	}
	return c, true
}

func (c *Combo) setModifier(k Key) {
	switch k {
	case KeyShift:
		c.Shift = true
	case KeyCtrl:
		c.Ctrl = true
	case KeyAlt:
		c.Alt = true
	case KeyMeta:
		c.Meta = true
	}
}

var modifierKeys = [...]Key{KeyShift, KeyCtrl, KeyAlt, KeyMeta}

func (c Combo) has(m Key) bool {
	switch m {
	case KeyShift:
		return c.Shift
	case KeyCtrl:
		return c.Ctrl
	case KeyAlt:
		return c.Alt
	case KeyMeta:
		return c.Meta
	}
	return false
}

// modifiersHeld requires exactly the listed modifiers to be down. The
// configured reverse, large and fine modifiers may also be down; they scale
// the step of whatever key they accompany.
func (c Combo) modifiersHeld(s *Snapshot) bool {
	for _, m := range modifierKeys {
		listed := c.has(m) || c.Key == m
		down := s.IsKeyPressed(m)
		if c.has(m) && !down {
			return false
		}
		if down && !listed && !s.isIncrementModifier(m) {
			return false
		}
	}
	return true
}

func (c Combo) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "CTRL")
	}
	if c.Shift {
		parts = append(parts, "SHIFT")
	}
	if c.Alt {
		parts = append(parts, "ALT")
	}
	if c.Meta {
		parts = append(parts, "META")
	}
	return strings.Join(append(parts, c.Key.String()), "+")
}
