package placer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedSettingsFormat = errors.New("unsupported settings file format")

// SettingsFromMap converts a loose host settings map into Settings. Each key
// is decoded on its own; a key that is unknown or has the wrong type keeps
// its default and is reported in the returned errors.
func SettingsFromMap(m map[string]any) (Settings, []error) {
	s := DefaultSettings()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		b, err := toml.Marshal(map[string]any{k: m[k]})
		if err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", k, err))
			continue
		}
		tmp := s.Clone()
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tmp); err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", k, err))
			continue
		}
		s = tmp
	}
	s.Keys = s.Keys.WithDefaults()
	return s, errs
}

type settingsFormat int

const (
	formatTOML settingsFormat = iota
	formatYAML
)

func formatFor(path string) (settingsFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedSettingsFormat, path)
}

// parseSettings decodes data over the defaults. Keys missing from data keep
// their default values.
func parseSettings(data []byte, format settingsFormat) (Settings, error) {
	s := DefaultSettings()
	var err error
	switch format {
	case formatYAML:
		err = yaml.Unmarshal(data, &s)
	default:
		err = toml.Unmarshal(data, &s)
	}
	if err != nil {
		return DefaultSettings(), err
	}
	s.Keys = s.Keys.WithDefaults()
	return s, nil
}

// LoadSettingsFile reads a .toml, .yaml or .yml settings file.
func LoadSettingsFile(path string) (Settings, error) {
	format, err := formatFor(path)
	if err != nil {
		return DefaultSettings(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}
	s, err := parseSettings(data, format)
	if err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettingsFile writes s in the format implied by the path's extension.
func SaveSettingsFile(path string, s Settings) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case formatYAML:
		data, err = yaml.Marshal(s)
	default:
		data, err = toml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
