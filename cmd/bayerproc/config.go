package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the global flags that may be preset from a YAML
// file. Explicit command-line flags always win over file values.
type fileConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Patch  int    `yaml:"patch"`
	CFA    string `yaml:"cfa"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfigFile overlays file values onto any global flag the user did
// not set explicitly.
func applyConfigFile(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.Width > 0 && !flags.Changed("width") {
		frameWidth = cfg.Width
	}
	if cfg.Height > 0 && !flags.Changed("height") {
		frameHeight = cfg.Height
	}
	if cfg.Patch > 0 && !flags.Changed("patch") {
		patchSize = cfg.Patch
	}
	if cfg.CFA != "" && !flags.Changed("cfa") {
		cfaName = cfg.CFA
	}
	return nil
}
