package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/scorelib"
)

// Compile-time interface verification.
var _ scorelib.ConfigStore = (*ConfigStore)(nil)

// ConfigStore implements scorelib.ConfigStore on a single JSON file at a
// fixed path. Save is a full overwrite; the last writer wins.
type ConfigStore struct {
	paths Paths
}

// NewConfigStore creates a new ConfigStore.
func NewConfigStore(paths Paths) *ConfigStore {
	return &ConfigStore{paths: paths}
}

// Load returns the stored config, persisting defaults on first use.
func (s *ConfigStore) Load(ctx context.Context) (*scorelib.Config, error) {
	path := s.paths.ConfigPath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := scorelib.DefaultConfig()
		if err := s.paths.EnsureStructure(); err != nil {
			return nil, fmt.Errorf("creating library structure: %w", err)
		}
		if err := writeJSON(path, config); err != nil {
			return nil, err
		}
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config scorelib.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, scorelib.Errorf(scorelib.ECORRUPT, "config does not parse: %v", err)
	}
	return &config, nil
}

// Save overwrites the stored config.
func (s *ConfigStore) Save(ctx context.Context, config *scorelib.Config) error {
	if err := s.paths.EnsureStructure(); err != nil {
		return fmt.Errorf("creating library structure: %w", err)
	}
	return writeJSON(s.paths.ConfigPath(), config)
}
