// Package project reads the fsd.toml manifest that lists a project's
// definitions and the defaults of the fsd tool.
package project

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats accepted in [diagnostics].format.
var Formats = []string{"pretty", "short", "json", "sarif"}

// Manifest is a loaded fsd.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest sections.
type Config struct {
	Definitions DefinitionsConfig `toml:"definitions"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
}

type DefinitionsConfig struct {
	// Paths are files or directories relative to the manifest.
	Paths []string `toml:"paths"`
}

type DiagnosticsConfig struct {
	Max    int    `toml:"max"`
	Format string `toml:"format"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultConfig is used for keys the manifest leaves out, and when there is
// no manifest at all.
func DefaultConfig() Config {
	return Config{
		Definitions: DefinitionsConfig{Paths: []string{"."}},
		Diagnostics: DiagnosticsConfig{Max: 100, Format: "pretty"},
	}
}

// Load finds and decodes the manifest above startDir. ok is false when
// there is none.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes one manifest file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Definitions.Paths) == 0 {
		return fmt.Errorf("[definitions].paths must not be empty")
	}
	for _, p := range c.Definitions.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("[definitions].paths contains an empty path")
		}
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative")
	}
	if !slices.Contains(Formats, c.Diagnostics.Format) {
		return fmt.Errorf("[diagnostics].format %q is not one of %s", c.Diagnostics.Format, strings.Join(Formats, "|"))
	}
	return nil
}

// DefinitionPaths returns the configured paths resolved against the manifest root.
func (m *Manifest) DefinitionPaths() []string {
	out := make([]string, len(m.Config.Definitions.Paths))
	for i, p := range m.Config.Definitions.Paths {
		p = filepath.FromSlash(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out[i] = p
	}
	return out
}

// CacheDir resolves [cache].dir against the manifest root. Empty means the
// user cache directory.
func (m *Manifest) CacheDir() string {
	dir := m.Config.Cache.Dir
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

// Encode renders cfg as TOML; fsd init writes it.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
