package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/inkwell/pkg/cli/config"
)

func writeCategoryConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestTaxonomy_Configure(t *testing.T) {
	t.Run("loads categories from TOML", func(t *testing.T) {
		path := writeCategoryConfig(t, `categories = ["Recipes", "Travel", "Work"]`)

		cfg := config.NewTaxonomyForTest(path)
		categories, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Array(t, categories).Equal([]string{"Recipes", "Travel", "Work"})
	})

	t.Run("returns nil when no file is configured", func(t *testing.T) {
		cfg := config.NewTaxonomyForTest("")
		categories, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Array(t, categories).Length(0)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		cfg := config.NewTaxonomyForTest("/no/such/file.toml")
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestTaxonomy_ConfigureInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty list", `categories = []`},
		{"empty name", `categories = ["Work", ""]`},
		{"duplicate", `categories = ["Work", "Work"]`},
		{"not toml", `{"categories": ["Work"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCategoryConfig(t, tt.content)

			cfg := config.NewTaxonomyForTest(path)
			_, err := cfg.Configure()
			gt.Error(t, err)
		})
	}
}
