package mock

import (
	"context"

	"github.com/fwojciec/scorelib"
)

var _ scorelib.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a mock implementation of scorelib.ConfigStore.
type ConfigStore struct {
	LoadFn func(ctx context.Context) (*scorelib.Config, error)
	SaveFn func(ctx context.Context, config *scorelib.Config) error
}

func (s *ConfigStore) Load(ctx context.Context) (*scorelib.Config, error) {
	return s.LoadFn(ctx)
}

func (s *ConfigStore) Save(ctx context.Context, config *scorelib.Config) error {
	return s.SaveFn(ctx, config)
}
