// Package glfwsource feeds an input.Snapshot from a GLFW window.
package glfwsource

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/assetplacer/input"
)

// Source polls key, mouse button and cursor state from a window. Callers
// still own glfw.PollEvents.
type Source struct {
	window *glfw.Window
}

func New(window *glfw.Window) *Source {
	return &Source{window: window}
}

func (s *Source) Pressed(k input.Key) bool {
	if s.window == nil {
		return false
	}

	switch k {
	case input.MouseButtonLeft:
		return s.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	case input.MouseButtonRight:
		return s.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	case input.MouseButtonMiddle:
		return s.window.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press
	}

	keys, ok := keyToGlfw[k]
	if !ok {
		return false
	}
	for _, gk := range keys {
		if s.window.GetKey(gk) == glfw.Press {
			return true
		}
	}
	return false
}

func (s *Source) MousePosition() mgl32.Vec2 {
	if s.window == nil {
		return mgl32.Vec2{}
	}
	x, y := s.window.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}

// Viewport treats the whole window client area as the 3D viewport.
type Viewport struct {
	window *glfw.Window
}

func NewViewport(window *glfw.Window) *Viewport {
	return &Viewport{window: window}
}

func (v *Viewport) LocalMousePosition() mgl32.Vec2 {
	x, y := v.window.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}

func (v *Viewport) VisibleRect() input.Rect {
	w, h := v.window.GetSize()
	return input.Rect{Size: mgl32.Vec2{float32(w), float32(h)}}
}

// Modifiers map to both the left and right physical keys.
var keyToGlfw = map[input.Key][]glfw.Key{
	input.KeyA:            {glfw.KeyA},
	input.KeyB:            {glfw.KeyB},
	input.KeyC:            {glfw.KeyC},
	input.KeyD:            {glfw.KeyD},
	input.KeyE:            {glfw.KeyE},
	input.KeyF:            {glfw.KeyF},
	input.KeyG:            {glfw.KeyG},
	input.KeyH:            {glfw.KeyH},
	input.KeyI:            {glfw.KeyI},
	input.KeyJ:            {glfw.KeyJ},
	input.KeyK:            {glfw.KeyK},
	input.KeyL:            {glfw.KeyL},
	input.KeyM:            {glfw.KeyM},
	input.KeyN:            {glfw.KeyN},
	input.KeyO:            {glfw.KeyO},
	input.KeyP:            {glfw.KeyP},
	input.KeyQ:            {glfw.KeyQ},
	input.KeyR:            {glfw.KeyR},
	input.KeyS:            {glfw.KeyS},
	input.KeyT:            {glfw.KeyT},
	input.KeyU:            {glfw.KeyU},
	input.KeyV:            {glfw.KeyV},
	input.KeyW:            {glfw.KeyW},
	input.KeyX:            {glfw.KeyX},
	input.KeyY:            {glfw.KeyY},
	input.KeyZ:            {glfw.KeyZ},
	input.Key0:            {glfw.Key0},
	input.Key1:            {glfw.Key1},
	input.Key2:            {glfw.Key2},
	input.Key3:            {glfw.Key3},
	input.Key4:            {glfw.Key4},
	input.Key5:            {glfw.Key5},
	input.Key6:            {glfw.Key6},
	input.Key7:            {glfw.Key7},
	input.Key8:            {glfw.Key8},
	input.Key9:            {glfw.Key9},
	input.KeyKP0:          {glfw.KeyKP0},
	input.KeyKP1:          {glfw.KeyKP1},
	input.KeyKP2:          {glfw.KeyKP2},
	input.KeyKP3:          {glfw.KeyKP3},
	input.KeyKP4:          {glfw.KeyKP4},
	input.KeyKP5:          {glfw.KeyKP5},
	input.KeyKP6:          {glfw.KeyKP6},
	input.KeyKP7:          {glfw.KeyKP7},
	input.KeyKP8:          {glfw.KeyKP8},
	input.KeyKP9:          {glfw.KeyKP9},
	input.KeySpace:        {glfw.KeySpace},
	input.KeyEnter:        {glfw.KeyEnter},
	input.KeyKPEnter:      {glfw.KeyKPEnter},
	input.KeyEscape:       {glfw.KeyEscape},
	input.KeyTab:          {glfw.KeyTab},
	input.KeyBackspace:    {glfw.KeyBackspace},
	input.KeyInsert:       {glfw.KeyInsert},
	input.KeyDelete:       {glfw.KeyDelete},
	input.KeyHome:         {glfw.KeyHome},
	input.KeyEnd:          {glfw.KeyEnd},
	input.KeyPageUp:       {glfw.KeyPageUp},
	input.KeyPageDown:     {glfw.KeyPageDown},
	input.KeyRight:        {glfw.KeyRight},
	input.KeyLeft:         {glfw.KeyLeft},
	input.KeyDown:         {glfw.KeyDown},
	input.KeyUp:           {glfw.KeyUp},
	input.KeyF1:           {glfw.KeyF1},
	input.KeyF2:           {glfw.KeyF2},
	input.KeyF3:           {glfw.KeyF3},
	input.KeyF4:           {glfw.KeyF4},
	input.KeyF5:           {glfw.KeyF5},
	input.KeyF6:           {glfw.KeyF6},
	input.KeyF7:           {glfw.KeyF7},
	input.KeyF8:           {glfw.KeyF8},
	input.KeyF9:           {glfw.KeyF9},
	input.KeyF10:          {glfw.KeyF10},
	input.KeyF11:          {glfw.KeyF11},
	input.KeyF12:          {glfw.KeyF12},
	input.KeyMinus:        {glfw.KeyMinus},
	input.KeyEqual:        {glfw.KeyEqual},
	input.KeyPeriod:       {glfw.KeyPeriod},
	input.KeyComma:        {glfw.KeyComma},
	input.KeyBracketLeft:  {glfw.KeyLeftBracket},
	input.KeyBracketRight: {glfw.KeyRightBracket},
	input.KeyKPPlus:       {glfw.KeyKPAdd},
	input.KeyKPMinus:      {glfw.KeyKPSubtract},
	input.KeyKPPeriod:     {glfw.KeyKPDecimal},
	input.KeyShift:        {glfw.KeyLeftShift, glfw.KeyRightShift},
	input.KeyCtrl:         {glfw.KeyLeftControl, glfw.KeyRightControl},
	input.KeyAlt:          {glfw.KeyLeftAlt, glfw.KeyRightAlt},
	input.KeyMeta:         {glfw.KeyLeftSuper, glfw.KeyRightSuper},
}
