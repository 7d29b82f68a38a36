// Package config loads game settings from defaults, an optional HCL file and
// command-line overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lixenwraith/pbert/board"
	"github.com/lixenwraith/pbert/input"
)

const (
	DefaultShape        = board.ShapeSquare
	DefaultSize         = 4
	DefaultPollInterval = time.Second
)

// Config is the resolved game configuration
type Config struct {
	Shape  board.Shape
	Size   int // square side or flat length
	Width  int // rect only
	Height int // rect only

	Audio        bool
	PollInterval time.Duration

	// Key name → action name overrides, see input.LoadKeyBindings
	Keys map[string]string
}

// Default returns the built-in configuration: a 4×4 square with audio on
func Default() *Config {
	return &Config{
		Shape:        DefaultShape,
		Size:         DefaultSize,
		Audio:        true,
		PollInterval: DefaultPollInterval,
	}
}

// fileRoot mirrors the top level of a config file
type fileRoot struct {
	Grid         *gridBlock        `hcl:"grid,block"`
	Audio        *audioBlock       `hcl:"audio,block"`
	PollInterval *string           `hcl:"poll_interval,optional"`
	Keys         map[string]string `hcl:"keys,optional"`
}

type gridBlock struct {
	Shape  *string `hcl:"shape,optional"`
	Size   *int    `hcl:"size,optional"`
	Width  *int    `hcl:"width,optional"`
	Height *int    `hcl:"height,optional"`
}

type audioBlock struct {
	Enabled *bool `hcl:"enabled,optional"`
}

// Load reads and parses the HCL file at path on top of Default
// An empty path returns Default unchanged
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes HCL source on top of Default and validates the result
// filename is only used in diagnostics
func Parse(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	cfg := Default()
	if err := cfg.apply(&root); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

func (c *Config) apply(root *fileRoot) error {
	if g := root.Grid; g != nil {
		if g.Shape != nil {
			c.Shape = board.Shape(*g.Shape)
		}
		if g.Size != nil {
			c.Size = *g.Size
		}
		if g.Width != nil {
			c.Width = *g.Width
		}
		if g.Height != nil {
			c.Height = *g.Height
		}
	}

	if a := root.Audio; a != nil && a.Enabled != nil {
		c.Audio = *a.Enabled
	}

	if root.PollInterval != nil {
		d, err := time.ParseDuration(*root.PollInterval)
		if err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
		c.PollInterval = d
	}

	if len(root.Keys) > 0 {
		c.Keys = root.Keys
	}
	return nil
}

// Validate checks the grid, poll interval and key bindings
func (c *Config) Validate() error {
	if _, err := c.Topology(); err != nil {
		return err
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval)
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// Topology returns the board layout described by the grid settings
func (c *Config) Topology() (board.Topology, error) {
	return board.NewTopology(c.Shape, c.Size, c.Width, c.Height)
}

// KeyTable returns the default bindings merged with configured overrides
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return base, nil
	}

	override, err := input.LoadKeyBindings(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}
