package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/celestial-scene/internal/param"
)

// Settings is the runtime configuration file
type Settings struct {
	Host   string       `yaml:"host"` // window | terminal
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Params []param.Spec `yaml:"params"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
	Assets AssetsConfig `yaml:"assets"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type SceneConfig struct {
	Seed           string        `yaml:"seed"`
	Workers        int           `yaml:"workers"`
	MaxFrameDelta  time.Duration `yaml:"max_frame_delta"`
	NavigateTarget string        `yaml:"navigate_target"`
	LayoutFile     string        `yaml:"layout_file"`
}

type AudioConfig struct {
	Drone bool `yaml:"drone"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	Output   string `yaml:"output"`
}

// AssetsConfig maps entity ids to sprite files drawn by the window host
type AssetsConfig struct {
	Sprites map[string]string `yaml:"sprites"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Host: "window",
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Scene: SceneConfig{
			Workers:        1,
			MaxFrameDelta:  100 * time.Millisecond,
			NavigateTarget: "/bio",
		},
		Params: param.DefaultSpecs(),
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
			Output:   "stderr",
		},
	}
}

// Decode reads YAML over the defaults
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, s.Validate()
}

// Load reads path; an empty path yields the defaults
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Validate rejects settings no host can run with
func (s Settings) Validate() error {
	switch s.Host {
	case "window", "terminal":
	default:
		return fmt.Errorf("unknown host %q", s.Host)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Scene.Workers < 0 {
		return fmt.Errorf("scene workers %d must not be negative", s.Scene.Workers)
	}
	return nil
}
