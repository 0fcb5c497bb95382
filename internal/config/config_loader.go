package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads the config file (if present), applies environment overrides and validates the result.
// A missing file is not an error: defaults plus environment are used instead.
func Load(path string) (*Config, error) {
	fc, err := readFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if errors.Is(err, os.ErrNotExist) && path != "" {
		log.WithField("path", path).Info("config file not found; using defaults and environment")
	}

	cfg := FromFile(fc)
	applyEnv(cfg)
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	res := cfg.Validate()
	if !res.Valid {
		return nil, res.Err()
	}
	for _, w := range res.Warnings {
		log.Warn(w.Error())
	}
	return cfg, nil
}

func readFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config FileConfig
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			if err := json.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config file (tried YAML and JSON)")
			}
		}
	}
	log.WithField("path", path).Info("configuration loaded")
	return &config, nil
}

func (c *Config) expandPaths() error {
	if c.Security.LogFile == "" {
		return nil
	}
	expanded, err := expandHome(c.Security.LogFile)
	if err != nil {
		return fmt.Errorf("expand log_file: %w", err)
	}
	c.Security.LogFile = expanded
	return nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
