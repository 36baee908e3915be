// Command placerview runs the asset placer against a headless scene in a
// GLFW window. Press P to place a crate, TAB to move the selection.
package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	placer "github.com/gekko3d/assetplacer"
	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
	"github.com/gekko3d/assetplacer/input/glfwsource"
	"github.com/gekko3d/assetplacer/sim"
)

// windowEditor is the headless editor with its viewport bound to the window.
type windowEditor struct {
	*sim.Editor
	view *glfwsource.Viewport
}

func (e *windowEditor) Viewport() input.Viewport { return e.view }

func (e *windowEditor) SetStatus(msg string) {
	e.Editor.SetStatus(msg)
	log.Infof("%s", msg)
}

// windowKeys hides the window's own undo and redo shortcuts from the placer,
// which would otherwise read CTRL+Z as a fine rotation about Z.
type windowKeys struct {
	input.Source
}

func (w windowKeys) Pressed(k input.Key) bool {
	if k == input.KeyZ && w.Source.Pressed(input.KeyCtrl) {
		return false
	}
	return w.Source.Pressed(k)
}

var log = placer.NewDefaultLogger("placerview", false)

func main() {
	settings := flag.String("settings", "placer.toml", "settings file (.toml or .yaml)")
	debug := flag.Bool("debug", false, "debug logging")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()
	log.SetDebug(*debug)

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		log.Errorf("glfw init: %v", err)
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	win, err := glfw.CreateWindow(*width, *height, "placerview", nil, nil)
	if err != nil {
		log.Errorf("create window: %v", err)
		return
	}

	ed := &windowEditor{Editor: sim.NewEditor(*width, *height), view: glfwsource.NewViewport(win)}
	ed.AddBox("ground", mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{20, 0.5, 20})
	ed.Select(ed.AddBox("crate", mgl32.Vec3{2, 0.5, 0}, mgl32.Vec3{0.5, 0.5, 0.5}))
	ed.Cam.LookAt(mgl32.Vec3{})

	undo := placer.NewUndoManager(100)
	plugin := placer.NewPlugin(placer.PluginOptions{
		SettingsPath: *settings,
		Logger:       log.Named("placer"),
		Debug:        *debug,
		Source:       windowKeys{glfwsource.New(win)},
		Undo:         undo,
		OnPlacementEnded: func(a core.Asset, placed int) {
			log.Infof("placed %d x %s", placed, a.DisplayName())
		},
	})
	if err := plugin.Activate(ed, ed); err != nil {
		log.Errorf("%v", err)
		return
	}
	defer plugin.Deactivate()

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		dir := 0
		switch {
		case yoff > 0:
			dir = 1
		case yoff < 0:
			dir = -1
		}
		if dir != 0 && !plugin.HandleMouseWheel(dir) {
			ed.Cam.Position = ed.Cam.Position.Add(ed.Cam.Forward().Mul(float32(dir)))
		}
	})
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		ed.Cam.Width, ed.Cam.Height = w, h
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch {
		case key == glfw.KeyP && plugin.Coordinator().Mode() == placer.ModeNone:
			plugin.StartPlacement(core.Asset{Kind: core.AssetMesh, Path: "res://crate.mesh", Name: "Crate"})
		case key == glfw.KeyZ && mods&glfw.ModControl != 0 && mods&glfw.ModShift != 0:
			if name := undo.Redo(); name != "" {
				log.Infof("redo %s", name)
			}
		case key == glfw.KeyZ && mods&glfw.ModControl != 0:
			if name := undo.Undo(); name != "" {
				log.Infof("undo %s", name)
			}
		}
	})

	for !win.ShouldClose() {
		glfw.PollEvents()
		plugin.Process()
		glfw.WaitEventsTimeout(1.0 / 60)
	}
}
