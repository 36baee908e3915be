package input

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Keys whose press is only reported by IsKeyJustPressed when released
// within the repeat grace period. Holding them longer turns the press into
// an auto-repeat instead of a tap.
var tapKeys = [...]Key{KeyX, KeyY, KeyZ}

func isTapKey(k Key) bool {
	for _, t := range tapKeys {
		if t == k {
			return true
		}
	}
	return false
}

type modifierFingerprint uint8

const (
	fingerprintReverse modifierFingerprint = 1 << iota
	fingerprintLarge
	fingerprintFine
)

// Snapshot is a double-buffered view of the host's key and mouse state.
// Update must run exactly once per frame before any query; every query is
// answered from the two buffers the latest Update produced.
type Snapshot struct {
	source Source
	now    func() time.Time

	// Two backing buffers; cur indexes the current one, cur^1 the previous.
	buffers [2][KeyCount]bool
	cur     int

	frame     uint64
	frameTime time.Time
	cfg       Config

	mouse       mgl32.Vec2
	viewport    Viewport
	hasViewport bool

	pressedAt        [KeyCount]time.Time
	pressFingerprint [KeyCount]modifierFingerprint
	pendingTap       [KeyCount]bool
	wheelInterrupted [KeyCount]bool
	repeatCancelled  [KeyCount]bool
	repeatFired      [KeyCount]int
	repeatFrame      [KeyCount]uint64

	combos map[string]comboEntry
}

type comboEntry struct {
	combo Combo
	ok    bool
}

func NewSnapshot(src Source) *Snapshot {
	s := &Snapshot{
		source: src,
		now:    time.Now,
		cfg:    DefaultConfig(),
		combos: make(map[string]comboEntry),
	}
	for i := range s.repeatFired {
		s.repeatFired[i] = -1
	}
	return s
}

// SetClock replaces the wall clock used for tap and repeat timing.
func (s *Snapshot) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

func (s *Snapshot) SetSource(src Source) {
	s.source = src
}

// Frame returns the number of Update calls so far.
func (s *Snapshot) Frame() uint64 {
	return s.frame
}

// Update polls the source into the current buffer and advances timing state.
// vp may be nil when no viewport is bound.
func (s *Snapshot) Update(cfg Config, vp Viewport) {
	s.cfg = cfg.withDefaults()
	s.frame++
	s.frameTime = s.now()
	s.cur ^= 1

	curr := &s.buffers[s.cur]
	prev := &s.buffers[s.cur^1]

	for k := KeyNone + 1; k < keyCount; k++ {
		pressed := false
		if s.source != nil {
			pressed = s.source.Pressed(k)
		}
		curr[k] = pressed
	}

	// Modifier fingerprints need the full current buffer.
	fp := s.modifierFingerprint()

	for k := KeyNone + 1; k < keyCount; k++ {
		switch {
		case curr[k] && !prev[k]:
			s.pressedAt[k] = s.frameTime
			s.pressFingerprint[k] = fp
			s.repeatFired[k] = -1
			s.repeatCancelled[k] = false
			s.wheelInterrupted[k] = false
			s.pendingTap[k] = isTapKey(k)
		case curr[k] && prev[k]:
			if s.pendingTap[k] && s.frameTime.Sub(s.pressedAt[k]) > s.cfg.RepeatGrace {
				// Held past the grace period: this is a hold, not a tap.
				s.pendingTap[k] = false
			}
		case !curr[k] && prev[k]:
			if s.pendingTap[k] && s.frameTime.Sub(s.pressedAt[k]) > s.cfg.RepeatGrace {
				s.pendingTap[k] = false
			}
			s.wheelInterrupted[k] = false
		default:
			// A tap that nobody consumed on its release frame expires.
			s.pendingTap[k] = false
		}
	}

	s.viewport = vp
	s.hasViewport = vp != nil
	switch {
	case s.hasViewport:
		s.mouse = vp.LocalMousePosition()
	case s.source != nil:
		s.mouse = s.source.MousePosition()
	default:
		s.mouse = mgl32.Vec2{}
	}
}

func (s *Snapshot) valid(k Key) bool {
	return k > KeyNone && k < keyCount
}

// IsKeyPressed reports whether k is down this frame.
func (s *Snapshot) IsKeyPressed(k Key) bool {
	return s.valid(k) && s.buffers[s.cur][k]
}

// WasKeyPressed reports whether k was down in the previous frame.
func (s *Snapshot) WasKeyPressed(k Key) bool {
	return s.valid(k) && s.buffers[s.cur^1][k]
}

// KeyEdgePressed is the plain rising edge, never delayed by tap detection.
func (s *Snapshot) KeyEdgePressed(k Key) bool {
	return s.IsKeyPressed(k) && !s.WasKeyPressed(k)
}

func (s *Snapshot) IsKeyJustReleased(k Key) bool {
	return !s.IsKeyPressed(k) && s.WasKeyPressed(k)
}

// IsKeyJustPressed is the rising edge for ordinary keys. For tap keys it fires
// on release, once, and only if the key was let go within the grace period;
// the pending tap is consumed by the call.
func (s *Snapshot) IsKeyJustPressed(k Key) bool {
	if !s.valid(k) {
		return false
	}
	if !isTapKey(k) {
		return s.KeyEdgePressed(k)
	}
	if s.IsKeyJustReleased(k) && s.pendingTap[k] {
		s.pendingTap[k] = false
		return true
	}
	return false
}

// IsKeyHeldWithRepeat fires once when the grace period ends and then once per
// delay while k stays down. Repeats that fall between two frames are reported
// on the first frame after their boundary.
func (s *Snapshot) IsKeyHeldWithRepeat(k Key, delay time.Duration) bool {
	if !s.IsKeyPressed(k) {
		return false
	}
	held := s.frameTime.Sub(s.pressedAt[k])
	if held < s.cfg.RepeatGrace {
		return false
	}
	if delay <= 0 {
		delay = DefaultRepeatInterval
	}

	count := int((held - s.cfg.RepeatGrace) / delay)
	if s.repeatFrame[k] == s.frame && s.repeatFired[k] == count {
		// Already fired this frame; repeated queries agree.
		return true
	}
	if count > s.repeatFired[k] {
		s.repeatFired[k] = count
		s.repeatFrame[k] = s.frame
		return true
	}
	return false
}

// IsActionKeyHeldWithRepeat is IsKeyHeldWithRepeat with the delay taken from
// the action table. The repeat is cancelled for the rest of the hold when the
// mouse wheel was used with the key down or when the reverse/large/fine
// modifier combination differs from the one at press time.
func (s *Snapshot) IsActionKeyHeldWithRepeat(k Key, action ActionType) bool {
	if !s.IsKeyPressed(k) {
		return false
	}
	if s.wheelInterrupted[k] || s.repeatCancelled[k] {
		return false
	}
	if s.modifierFingerprint() != s.pressFingerprint[k] {
		s.repeatCancelled[k] = true
		return false
	}
	return s.IsKeyHeldWithRepeat(k, s.cfg.repeatDelay(action))
}

// MarkWheelInterrupted flags a held key as used together with the mouse
// wheel. Its auto-repeat and pending tap are dropped until it is released.
func (s *Snapshot) MarkWheelInterrupted(k Key) {
	if !s.IsKeyPressed(k) {
		return
	}
	s.wheelInterrupted[k] = true
	s.pendingTap[k] = false
}

func (s *Snapshot) IsWheelInterrupted(k Key) bool {
	return s.valid(k) && s.wheelInterrupted[k]
}

func (s *Snapshot) combo(binding string) (Combo, bool) {
	if e, ok := s.combos[binding]; ok {
		return e.combo, e.ok
	}
	c, ok := ParseCombo(binding)
	s.combos[binding] = comboEntry{combo: c, ok: ok}
	return c, ok
}

func (s *Snapshot) isIncrementModifier(m Key) bool {
	for _, b := range [...]string{s.cfg.ReverseModifier, s.cfg.LargeModifier, s.cfg.FineModifier} {
		if c, ok := s.combo(b); ok && (c.Key == m || c.has(m)) {
			return true
		}
	}
	return false
}

// IsKeyWithModifiersPressed resolves a configured binding: the base key and
// exactly the listed modifiers must be down. Unknown names are never pressed.
func (s *Snapshot) IsKeyWithModifiersPressed(binding string) bool {
	c, ok := s.combo(binding)
	if !ok {
		return false
	}
	return s.IsKeyPressed(c.Key) && c.modifiersHeld(s)
}

// IsKeyWithModifiersJustPressed is IsKeyJustPressed on the binding's base key
// with its modifiers held.
func (s *Snapshot) IsKeyWithModifiersJustPressed(binding string) bool {
	c, ok := s.combo(binding)
	if !ok || !c.modifiersHeld(s) {
		return false
	}
	return s.IsKeyJustPressed(c.Key)
}

// KeyWithModifiersEdgePressed is the immediate rising-edge variant.
func (s *Snapshot) KeyWithModifiersEdgePressed(binding string) bool {
	c, ok := s.combo(binding)
	if !ok || !c.modifiersHeld(s) {
		return false
	}
	return s.KeyEdgePressed(c.Key)
}

// IsBindingHeldWithRepeat is IsActionKeyHeldWithRepeat on a binding.
func (s *Snapshot) IsBindingHeldWithRepeat(binding string, action ActionType) bool {
	c, ok := s.combo(binding)
	if !ok || !c.modifiersHeld(s) {
		return false
	}
	return s.IsActionKeyHeldWithRepeat(c.Key, action)
}

// BindingKey returns the base key of a binding, or KeyNone.
func (s *Snapshot) BindingKey(binding string) Key {
	c, ok := s.combo(binding)
	if !ok {
		return KeyNone
	}
	return c.Key
}

func (s *Snapshot) modifierFingerprint() modifierFingerprint {
	var fp modifierFingerprint
	if s.IsKeyWithModifiersPressed(s.cfg.ReverseModifier) {
		fp |= fingerprintReverse
	}
	if s.IsKeyWithModifiersPressed(s.cfg.LargeModifier) {
		fp |= fingerprintLarge
	}
	if s.IsKeyWithModifiersPressed(s.cfg.FineModifier) {
		fp |= fingerprintFine
	}
	return fp
}

func (s *Snapshot) ReverseHeld() bool {
	return s.IsKeyWithModifiersPressed(s.cfg.ReverseModifier)
}

func (s *Snapshot) LargeHeld() bool {
	return s.IsKeyWithModifiersPressed(s.cfg.LargeModifier)
}

func (s *Snapshot) FineHeld() bool {
	return s.IsKeyWithModifiersPressed(s.cfg.FineModifier)
}

// MousePosition is viewport-local when a viewport is bound, otherwise in
// screen coordinates.
func (s *Snapshot) MousePosition() mgl32.Vec2 {
	return s.mouse
}

func (s *Snapshot) IsMouseInViewport() bool {
	if !s.hasViewport {
		return false
	}
	return s.viewport.VisibleRect().Contains(s.mouse)
}

func (s *Snapshot) IsMouseButtonPressed(k Key) bool {
	return k.IsMouseButton() && s.IsKeyPressed(k)
}

func (s *Snapshot) IsMouseButtonJustPressed(k Key) bool {
	return k.IsMouseButton() && s.KeyEdgePressed(k)
}
