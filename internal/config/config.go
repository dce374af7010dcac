// Package config loads the demo's configuration file: where to listen,
// which data files to read, and which derivation engine to run against.
// Missing file means defaults; the embedded excerpts and the fixture
// engine make the zero config a working demo.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/pkg/adapters/fixture"
	"github.com/vyakarana-tools/rupavali/pkg/adapters/process"
	"github.com/vyakarana-tools/rupavali/pkg/adapters/vidyutsvc"
	"github.com/vyakarana-tools/rupavali/pkg/ports"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "rupavali.yaml"

// Engine kinds.
const (
	EngineFixture = "fixture"
	EngineService = "service"
	EngineProcess = "process"
)

// Config is the file layout. Every key is optional.
type Config struct {
	Listen string       `yaml:"listen" json:"listen"`
	Script string       `yaml:"script" json:"script"`
	Data   DataConfig   `yaml:"data" json:"data"`
	Engine EngineConfig `yaml:"engine" json:"engine"`
}

// DataConfig points at replacement data files. Empty fields fall back to
// the embedded excerpts.
type DataConfig struct {
	Dhatupatha string `yaml:"dhatupatha" json:"dhatupatha"`
	Sutrapatha string `yaml:"sutrapatha" json:"sutrapatha"`
	Forms      string `yaml:"forms" json:"forms"`
}

// EngineConfig selects the derivation engine. The service kind needs a
// URL, the process kind a command.
type EngineConfig struct {
	Kind    string   `yaml:"kind" json:"kind"`
	URL     string   `yaml:"url" json:"url"`
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args" json:"args"`
}

// Default returns the configuration the demo runs with out of the box.
func Default() Config {
	return Config{
		Listen: ":8080",
		Script: vyakarana.SchemeDevanagari.String(),
		Engine: EngineConfig{Kind: EngineFixture},
	}
}

// Load reads a configuration file (YAML, or JSON by extension) over the
// defaults. A missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Engine.Kind {
	case "", EngineFixture, EngineService, EngineProcess:
	default:
		return fmt.Errorf("unknown engine kind %q", c.Engine.Kind)
	}
	if _, err := vyakarana.ParseScheme(c.Script); err != nil {
		return fmt.Errorf("config script: %w", err)
	}
	return nil
}

// DefaultScript resolves the configured display script.
func (c Config) DefaultScript() (vyakarana.Scheme, error) {
	return vyakarana.ParseScheme(c.Script)
}

// NewEngine builds the derivation engine the config names.
func (c Config) NewEngine() (ports.Engine, error) {
	switch c.Engine.Kind {
	case "", EngineFixture:
		if c.Data.Forms == "" {
			return fixture.Default(), nil
		}
		source, err := os.ReadFile(c.Data.Forms)
		if err != nil {
			return nil, fmt.Errorf("reading forms table: %w", err)
		}
		return fixture.New(source), nil
	case EngineService:
		if c.Engine.URL == "" {
			return nil, errors.New("engine.url is required for the service engine")
		}
		return vidyutsvc.New(c.Engine.URL), nil
	case EngineProcess:
		if c.Engine.Command == "" {
			return nil, errors.New("engine.command is required for the process engine")
		}
		return process.New(c.Engine.Command, process.WithArgs(c.Engine.Args...)), nil
	}
	return nil, fmt.Errorf("unknown engine kind %q", c.Engine.Kind)
}

// AppOptions assembles the rupavali options the config implies: the
// engine plus any replacement data files.
func (c Config) AppOptions() ([]rupavali.Option, error) {
	engine, err := c.NewEngine()
	if err != nil {
		return nil, err
	}
	opts := []rupavali.Option{rupavali.WithEngine(engine)}

	if c.Data.Dhatupatha != "" {
		source, err := os.ReadFile(c.Data.Dhatupatha)
		if err != nil {
			return nil, fmt.Errorf("reading dhatupatha: %w", err)
		}
		opts = append(opts, rupavali.WithDhatupatha(source))
	}
	if c.Data.Sutrapatha != "" {
		source, err := os.ReadFile(c.Data.Sutrapatha)
		if err != nil {
			return nil, fmt.Errorf("reading sutrapatha: %w", err)
		}
		opts = append(opts, rupavali.WithSutrapatha(source))
	}
	return opts, nil
}
