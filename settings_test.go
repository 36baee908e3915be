package placer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/assetplacer/input"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "collision", s.PlacementStrategy)
	assert.Equal(t, uint32(1), s.CollisionMask)
	assert.True(t, s.UseFallback)
	assert.Equal(t, float32(15), s.RotationIncrement)
	assert.Equal(t, 3, s.FocusGrabFrames)
	assert.Equal(t, "Q", s.Keys.HeightUp)
	assert.False(t, s.GridVisible(), "grid needs snapping")

	s.SnapEnabled = true
	assert.True(t, s.GridVisible())
}

func TestSettings_StepPickers(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, float32(15), s.rotationStep(input.Modifiers{}))
	assert.Equal(t, float32(90), s.rotationStep(input.Modifiers{Large: true}))
	assert.Equal(t, float32(5), s.rotationStep(input.Modifiers{Fine: true}))
	assert.Equal(t, float32(90), s.rotationStep(input.Modifiers{Large: true, Fine: true}), "large wins")
	assert.Equal(t, float32(1), s.heightStep(input.Modifiers{Large: true}))
	assert.Equal(t, float32(0.01), s.positionStep(input.Modifiers{Fine: true}))
	assert.Equal(t, float32(0.5), s.scaleStep(input.Modifiers{Large: true, Reverse: true}))
}

func TestSettings_ClampScale(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, float32(0.01), s.clampScale(-3))
	assert.Equal(t, float32(100), s.clampScale(1000))
	assert.Equal(t, float32(2), s.clampScale(2))

	s.MaxScale = 0
	assert.Equal(t, float32(1e6), s.clampScale(1e6), "max below min disables the upper bound")
}

func TestSettings_InputConfig(t *testing.T) {
	s := DefaultSettings()
	s.KeyRepeatGrace = 0.2
	s.HeightRepeatDelay = 0
	cfg := s.InputConfig()
	assert.Equal(t, 200*time.Millisecond, cfg.RepeatGrace)
	assert.Equal(t, 80*time.Millisecond, cfg.RotationRepeat)
	assert.Zero(t, cfg.HeightRepeat)
	assert.Equal(t, "SHIFT", cfg.ReverseModifier)
}

func TestSettings_PlacementAndSnapConfig(t *testing.T) {
	s := DefaultSettings()
	s.PlacementStrategy = "plane"
	s.PlaneHeight = 4
	s.SnapEnabled = true
	s.SnapStep = 0.5
	s.SnapCenterX = false

	pc := s.PlacementConfig()
	assert.Equal(t, "plane", pc.Strategy)
	assert.Equal(t, float32(4), pc.PlaneHeight)
	assert.Nil(t, pc.Exclude)

	sc := s.SnapConfig(true)
	assert.True(t, sc.Enabled)
	assert.True(t, sc.HalfStep)
	assert.False(t, sc.CenterX)
	assert.Equal(t, float32(0.25), sc.XZStep())
}

func TestSettingsFromMap(t *testing.T) {
	s, errs := SettingsFromMap(map[string]any{
		"snap_step":          0.5,
		"snap_enabled":       true,
		"rotation_increment": "fast",
		"no_such_setting":    1,
		"keys":               map[string]any{"height_up_key": "PAGEUP"},
	})
	assert.Len(t, errs, 2)
	assert.Equal(t, float32(0.5), s.SnapStep)
	assert.True(t, s.SnapEnabled)
	assert.Equal(t, float32(15), s.RotationIncrement, "bad value keeps the default")
	assert.Equal(t, "PAGEUP", s.Keys.HeightUp)
	assert.Equal(t, "E", s.Keys.HeightDown, "unlisted bindings keep defaults")
}

func TestSettingsFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := DefaultSettings()
	want.SnapEnabled = true
	want.SnapStep = 0.25
	want.PlacementStrategy = "plane"
	want.Keys.Cancel = "CTRL+Q"

	for _, name := range []string{"placer.toml", "placer.yaml", "placer.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveSettingsFile(path, want))
			got, err := LoadSettingsFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSettingsFile_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placer.toml")
	require.NoError(t, os.WriteFile(path, []byte("snap_step = 2.0\n[keys]\ncancel_key = \"Q\"\n"), 0o644))

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(2), s.SnapStep)
	assert.Equal(t, "Q", s.Keys.Cancel)
	assert.Equal(t, "TAB", s.Keys.ToggleMode)
	assert.Equal(t, float32(15), s.RotationIncrement)
}

func TestSettingsFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSettingsFile(filepath.Join(dir, "placer.json"))
	assert.ErrorIs(t, err, ErrUnsupportedSettingsFormat)
	assert.ErrorIs(t, SaveSettingsFile(filepath.Join(dir, "placer.ini"), DefaultSettings()), ErrUnsupportedSettingsFormat)

	_, err = LoadSettingsFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("snap_step = [\n"), 0o644))
	s, err := LoadSettingsFile(bad)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettings_CloneIsIndependent(t *testing.T) {
	a := DefaultSettings()
	b := a.Clone()
	assert.Equal(t, a, b)
	b.Keys.HeightUp = "R"
	b.SnapStep = 3
	assert.Equal(t, "Q", a.Keys.HeightUp)
	assert.Equal(t, float32(1), a.SnapStep)
}

func TestSettingsStore_Versioning(t *testing.T) {
	st := NewSettingsStore(DefaultSettings())
	v := st.Version()
	s := st.Load()
	s.SnapStep = 4
	st.Store(s)
	assert.Greater(t, st.Version(), v)
	assert.Equal(t, float32(4), st.Load().SnapStep)

	var empty SettingsStore
	assert.Equal(t, DefaultSettings(), empty.Load())
}

func TestSettingsWatcher_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placer.toml")
	initial := DefaultSettings()
	initial.SnapStep = 0.5
	require.NoError(t, SaveSettingsFile(path, initial))

	store := NewSettingsStore(DefaultSettings())
	w, err := WatchSettingsFile(path, store, NewNopLogger())
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, float32(0.5), store.Load().SnapStep)

	next := initial
	next.SnapStep = 0.25
	require.NoError(t, SaveSettingsFile(path, next))
	assert.Eventually(t, func() bool {
		return store.Load().SnapStep == 0.25
	}, 2*time.Second, 10*time.Millisecond)

	// A broken write keeps the last good settings.
	require.NoError(t, os.WriteFile(path, []byte("snap_step = ["), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, float32(0.25), store.Load().SnapStep)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatchSettingsFile_MissingFile(t *testing.T) {
	_, err := WatchSettingsFile(filepath.Join(t.TempDir(), "nope.toml"), NewSettingsStore(DefaultSettings()), nil)
	assert.Error(t, err)
}
