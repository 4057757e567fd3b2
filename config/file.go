package config

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a Config from a YAML file on disk, overlaid onto Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return the error directly so callers can use os.IsNotExist(err) to check if the file exists.
		return Config{}, err
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, errors.Wrapf(err, "yaml.Unmarshal")
	}

	cfg := Default()
	cfg.Apply(overlay)
	return cfg, nil
}

// SaveFile writes cfg to path as YAML, atomically via renameio so a crash or
// concurrent read never observes a partially written file.
func SaveFile(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrapf(err, "yaml.Marshal")
	}

	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return errors.Wrapf(err, "os.MkdirAll")
	}

	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "renameio.WriteFile")
	}

	return nil
}
