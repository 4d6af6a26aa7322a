package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/sortalg"
	"github.com/san-kum/sortviz/internal/stepper"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultOrder     = "ascending"
	DefaultElements  = "int"
	DefaultTheme     = "dark"
	DefaultLimit     = 100
	DefaultDataDir   = ".sortviz"
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Order     string `yaml:"order"`
	Elements  string `yaml:"elements"`
	Speed     int    `yaml:"speed"`
	Seed      int64  `yaml:"seed"`
	Theme     string `yaml:"theme"`
	Limit     int    `yaml:"limit"`
	DataDir   string `yaml:"data_dir"`
	Watch     bool   `yaml:"watch"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Order:     DefaultOrder,
		Elements:  DefaultElements,
		Speed:     stepper.DefaultSpeed,
		Theme:     DefaultTheme,
		Limit:     DefaultLimit,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every named field resolves.
func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return err
	}
	if _, err := c.SortOrder(); err != nil {
		return err
	}
	if _, err := dataset.ParseElements(c.Elements); err != nil {
		return err
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	return nil
}

func (c *Config) Kind() (sortalg.Kind, error) {
	return sortalg.NewRegistry().Lookup(c.Algorithm)
}

func (c *Config) SortOrder() (sortalg.Order, error) {
	return sortalg.ParseOrder(c.Order)
}

func (c *Config) ElementType() dataset.Elements {
	e, err := dataset.ParseElements(c.Elements)
	if err != nil {
		return dataset.Ints
	}
	return e
}

func (c *Config) SpeedValue() stepper.Speed {
	return stepper.NewSpeed(c.Speed)
}
