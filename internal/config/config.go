package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	RepoRoot string       `yaml:"repo_root,omitempty"`
	PostsDir string       `yaml:"posts_dir"`
	Layout   string       `yaml:"layout"`
	Timezone string       `yaml:"timezone,omitempty"`
	Author   AuthorConfig `yaml:"author"`
}

// AuthorConfig pre-fills the author prompts. Empty values keep the prompts
// without a suggestion.
type AuthorConfig struct {
	Name    string `yaml:"name,omitempty"`
	Twitter string `yaml:"twitter,omitempty"`
	GitHub  string `yaml:"github,omitempty"`
}

func Default() *Config {
	return &Config{
		PostsDir: "_posts",
		Layout:   "post",
		Author:   AuthorConfig{},
	}
}

func Dir() string {
	if dir := os.Getenv("ARTICLEGEN_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".articlegen")
}

func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0644)
}

// Location resolves the configured timezone, falling back to the local zone
// when none is set.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ResolveRoot picks the repository root: an explicit override first, then
// the configured repo_root, then the parent of the executable's directory.
func (c *Config) ResolveRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if c.RepoRoot != "" {
		return filepath.Abs(c.RepoRoot)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
