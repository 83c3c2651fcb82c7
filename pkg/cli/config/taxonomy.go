package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Taxonomy holds configuration for the default category set. The built-in
// defaults apply when no config file is given.
type Taxonomy struct {
	configPath string
}

// Flags returns CLI flags for taxonomy configuration
func (t *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "category-config",
			Category:    "Taxonomy",
			Usage:       "Path to a TOML file listing default categories",
			Sources:     cli.EnvVars("INKWELL_CATEGORY_CONFIG"),
			Destination: &t.configPath,
		},
	}
}

type taxonomyFile struct {
	Categories []string `toml:"categories"`
}

// Configure loads the default category set from the configured TOML file.
// Returns nil when no file is configured.
func (t *Taxonomy) Configure() ([]string, error) {
	if t.configPath == "" {
		return nil, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(t.configPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read category config", goerr.V("path", t.configPath))
	}

	var cfg taxonomyFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse category config", goerr.V("path", t.configPath))
	}

	if len(cfg.Categories) == 0 {
		return nil, goerr.New("category config lists no categories", goerr.V("path", t.configPath))
	}
	seen := make(map[string]bool, len(cfg.Categories))
	for _, c := range cfg.Categories {
		if c == "" {
			return nil, goerr.New("empty category name in config", goerr.V("path", t.configPath))
		}
		if seen[c] {
			return nil, goerr.New("duplicate category in config", goerr.V("category", c))
		}
		seen[c] = true
	}

	return cfg.Categories, nil
}
