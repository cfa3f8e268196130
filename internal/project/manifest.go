package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultSrc            = "."
	DefaultOut            = "build/glsl"
	DefaultMaxDiagnostics = 100
)

// Manifest is a decoded glassful.toml together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Project ProjectConfig `toml:"project"`
	Build   BuildConfig   `toml:"build"`
	Cache   CacheConfig   `toml:"cache"`
}

type ProjectConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Src            string `toml:"src"`
	Out            string `toml:"out"`
	Jobs           int    `toml:"jobs"` // 0 = GOMAXPROCS
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // "" = user cache dir
}

// LoadManifest finds glassful.toml above startDir and decodes it.
// ok is false when no manifest exists.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes one manifest file and fills defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes manifest text.
func ParseConfig(text string) (Config, error) {
	cfg := Config{
		Build: BuildConfig{MaxDiagnostics: DefaultMaxDiagnostics},
		Cache: CacheConfig{Enabled: true},
	}
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if !meta.IsDefined("project") {
		return Config{}, fmt.Errorf("missing [project]")
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return Config{}, fmt.Errorf("missing [project].name")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if cfg.Build.Jobs < 0 {
		return Config{}, fmt.Errorf("[build].jobs must not be negative")
	}
	if strings.TrimSpace(cfg.Build.Src) == "" {
		cfg.Build.Src = DefaultSrc
	}
	if strings.TrimSpace(cfg.Build.Out) == "" {
		cfg.Build.Out = DefaultOut
	}
	if cfg.Build.MaxDiagnostics < 0 {
		cfg.Build.MaxDiagnostics = 0
	}
	return cfg, nil
}

// SrcDir is the absolute source directory of the project.
func (m *Manifest) SrcDir() string { return m.resolve(m.Config.Build.Src) }

// OutDir is the absolute output directory of the project.
func (m *Manifest) OutDir() string { return m.resolve(m.Config.Build.Out) }

// CacheDir is the configured cache directory, or "" for the default.
func (m *Manifest) CacheDir() string {
	if m.Config.Cache.Dir == "" {
		return ""
	}
	return m.resolve(m.Config.Cache.Dir)
}

func (m *Manifest) resolve(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}
