package placer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gekko3d/assetplacer/core"
	"github.com/gekko3d/assetplacer/input"
)

var (
	ErrAlreadyActive = errors.New("placer: plugin already active")
	ErrNotActive     = errors.New("placer: plugin not active")
	ErrNoEditor      = errors.New("placer: editor is required")
)

type PluginOptions struct {
	// SettingsPath is a .toml or .yaml file. It is created with defaults
	// when missing and reloaded whenever it changes. Empty keeps settings
	// in memory only.
	SettingsPath string
	Logger       Logger
	Debug        bool
	Source       input.Source
	Clock        func() time.Time
	Undo         UndoRedo

	OnPlacementEnded func(a core.Asset, placed int)
}

// Plugin is the host-facing entry point. The host calls Activate once the
// editor is up, Process every frame and Deactivate on shutdown.
type Plugin struct {
	opts    PluginOptions
	log     Logger
	store   *SettingsStore
	watcher *SettingsWatcher
	coord   *Coordinator
}

func NewPlugin(opts PluginOptions) *Plugin {
	log := opts.Logger
	if log == nil {
		log = NewDefaultLogger("placer", opts.Debug)
	}
	log.SetDebug(opts.Debug)
	return &Plugin{
		opts:  opts,
		log:   log,
		store: NewSettingsStore(DefaultSettings()),
	}
}

func (p *Plugin) Activate(ed Editor, scene Scene) error {
	if p.coord != nil {
		return ErrAlreadyActive
	}
	if ed == nil {
		return ErrNoEditor
	}
	if path := p.opts.SettingsPath; path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := SaveSettingsFile(path, p.store.Load()); err != nil {
				return fmt.Errorf("activate: %w", err)
			}
		}
		w, err := WatchSettingsFile(path, p.store, p.log)
		if err != nil {
			return fmt.Errorf("activate: %w", err)
		}
		p.watcher = w
	}
	p.coord = NewCoordinator(Options{
		Editor:           ed,
		Scene:            scene,
		Undo:             p.opts.Undo,
		Settings:         p.store,
		Source:           p.opts.Source,
		Clock:            p.opts.Clock,
		Logger:           p.log,
		OnPlacementEnded: p.opts.OnPlacementEnded,
	})
	p.log.Infof("asset placer active")
	return nil
}

// Deactivate cancels any open session and stops the settings watcher.
func (p *Plugin) Deactivate() error {
	if p.coord == nil {
		return ErrNotActive
	}
	p.coord.forceExit()
	p.coord = nil
	err := p.watcher.Close()
	p.watcher = nil
	p.log.Infof("asset placer inactive")
	return err
}

func (p *Plugin) Active() bool { return p.coord != nil }

// Coordinator is nil while the plugin is inactive.
func (p *Plugin) Coordinator() *Coordinator { return p.coord }

func (p *Plugin) SettingsStore() *SettingsStore { return p.store }

// ApplyHostSettings replaces the live settings with the host's loose
// settings map. Rejected keys keep their defaults and are logged; the count
// of rejected keys is returned. A later change to the settings file wins.
func (p *Plugin) ApplyHostSettings(m map[string]any) int {
	s, errs := SettingsFromMap(m)
	for _, err := range errs {
		p.log.Warnf("host settings: %v", err)
	}
	p.store.Store(s)
	return len(errs)
}

func (p *Plugin) Process() {
	if p.coord != nil {
		p.coord.ProcessFrame()
	}
}

// StartPlacement begins placing a with the current settings.
func (p *Plugin) StartPlacement(a core.Asset) bool {
	if p.coord == nil {
		return false
	}
	return p.coord.StartPlacementMode(a, p.store.Load())
}

// HandleMouseWheel reports whether the wheel step was consumed.
func (p *Plugin) HandleMouseWheel(dir int) bool {
	if p.coord == nil {
		return false
	}
	return p.coord.HandleMouseWheel(dir)
}
