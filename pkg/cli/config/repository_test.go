package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/cli/config"
)

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory")
		repo, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("cassandra")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})

	t.Run("redis requires address", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("redis")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})
}
