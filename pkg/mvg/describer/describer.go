// Package describer persists the image describer configuration shared by the
// feature and matching stages.
//
// The feature stage writes image_describer.json next to the regions it
// computes; later runs restore it and the matching stage reads it to tell
// scalar from binary regions.
package describer

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/provide-io/mvg/go/mvg/internal/workdir"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/errors"
	"github.com/provide-io/mvg/go/mvg/pkg/mvg/options"
)

// FileName is the describer file name inside a features directory.
const FileName = "image_describer.json"

// Config is the describer selection of a feature run.
type Config struct {
	Method  options.DescriberMethod
	Preset  options.DescriberPreset
	Upright bool
}

// Regions returns the descriptor family produced by the method.
func (c Config) Regions() options.RegionKind {
	return c.Method.Regions()
}

type document struct {
	ImageDescriber describerSection `json:"image_describer"`
	RegionsType    string           `json:"regions_type"`
}

type describerSection struct {
	Method  string `json:"method"`
	Preset  string `json:"preset"`
	Upright bool   `json:"upright"`
}

// Path returns the describer file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether dir holds a describer file.
func Exists(fsys workdir.FileSystem, dir string) bool {
	return workdir.IsFile(fsys, Path(dir))
}

// Marshal encodes cfg as an indented describer document.
func Marshal(cfg Config) ([]byte, error) {
	if cfg.Method == options.DescriberInvalid || cfg.Preset == options.PresetUnrecognized {
		return nil, fmt.Errorf("cannot persist describer %s/%s", cfg.Method, cfg.Preset)
	}
	doc := document{
		ImageDescriber: describerSection{
			Method:  cfg.Method.String(),
			Preset:  cfg.Preset.String(),
			Upright: cfg.Upright,
		},
		RegionsType: cfg.Regions().String(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal decodes a describer document. Unknown methods or presets and a
// regions type that disagrees with the method are reported as corrupt.
func Unmarshal(data []byte) (Config, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrDescriberCorrupt, err)
	}

	cfg := Config{
		Method:  options.ParseDescriberMethod(doc.ImageDescriber.Method),
		Preset:  options.ParseDescriberPreset(doc.ImageDescriber.Preset),
		Upright: doc.ImageDescriber.Upright,
	}
	if cfg.Method == options.DescriberInvalid {
		return Config{}, fmt.Errorf("%w: unknown method %q", errors.ErrDescriberCorrupt, doc.ImageDescriber.Method)
	}
	if cfg.Preset == options.PresetUnrecognized {
		return Config{}, fmt.Errorf("%w: unknown preset %q", errors.ErrDescriberCorrupt, doc.ImageDescriber.Preset)
	}
	if doc.RegionsType != "" && options.ParseRegionKind(doc.RegionsType) != cfg.Regions() {
		return Config{}, fmt.Errorf("%w: regions type %q does not match method %s",
			errors.ErrDescriberCorrupt, doc.RegionsType, cfg.Method)
	}
	return cfg, nil
}

// Save writes cfg to dir/image_describer.json.
func Save(fsys workdir.FileSystem, dir string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(Path(dir), data, workdir.DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", Path(dir), err)
	}
	return nil
}

// Load reads dir/image_describer.json.
func Load(fsys workdir.FileSystem, dir string) (Config, error) {
	data, err := fsys.ReadFile(Path(dir))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", Path(dir), err)
	}
	return Unmarshal(data)
}
