// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snapshotcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/either/stability"
)

// Config selects what the analyzer reports.
//
// Example file:
//
//	stages: [IN_DEVELOPMENT, ALPHA]
//	declarations: true
//	uses: false
type Config struct {
	// Stages lists the stages to report. Empty means all.
	Stages []string `yaml:"stages"`

	// Declarations enables reports on marked declarations.
	Declarations bool `yaml:"declarations"`

	// Uses enables reports on uses and imports of marked declarations
	// from other packages.
	Uses bool `yaml:"uses"`

	stages map[stability.Stage]bool
}

// DefaultConfig reports everything.
func DefaultConfig() *Config {
	return &Config{Declarations: true, Uses: true}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their [DefaultConfig] values; unknown fields are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotcheck: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("snapshotcheck: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config document.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) compile() error {
	c.stages = nil
	if len(c.Stages) == 0 {
		return nil
	}
	c.stages = make(map[stability.Stage]bool, len(c.Stages))
	for _, label := range c.Stages {
		s, err := stability.ParseStage(label)
		if err != nil {
			return err
		}
		c.stages[s] = true
	}
	return nil
}

// Reports reports whether diagnostics for stage s are enabled.
func (c *Config) Reports(s stability.Stage) bool {
	return c.stages == nil || c.stages[s]
}
