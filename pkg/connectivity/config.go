package connectivity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/joho/godotenv"
)

const (
	// EnvVariant selects the union-find variant.
	EnvVariant = "CONNECTIVITY_VARIANT"

	// EnvInput is the path of the connection stream to read.
	EnvInput = "CONNECTIVITY_INPUT"

	// EnvReportDir is where run results are written as JSON.
	EnvReportDir = "CONNECTIVITY_REPORT_DIR"
)

// Logger receives progress lines from a run.
type Logger func(format string, args ...any)

// Config holds configuration for a connectivity run
type Config struct {
	// Variant is the union-find implementation to use. If empty, uses unionfind.DefaultVariant.
	Variant unionfind.Variant

	// Input is the path of the connection stream. Empty means the caller supplies a reader.
	Input string

	// ReportDir, if set, is where SaveResult writes the run result.
	ReportDir string

	// Logger is called for every newly joined pair and for the final count. If nil, nothing is logged.
	Logger Logger
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Variant == "" {
		c.Variant = unionfind.DefaultVariant
	}
	if c.Logger == nil {
		c.Logger = func(string, ...any) {}
	}
}

// LoadConfig builds a Config from the environment after loading the given
// .env files. With no files, ./.env is tried. Missing files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	cfg := Config{
		Input:     os.Getenv(EnvInput),
		ReportDir: os.Getenv(EnvReportDir),
	}
	if name := os.Getenv(EnvVariant); name != "" {
		v, err := unionfind.ParseVariant(name)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvVariant, err)
		}
		cfg.Variant = v
	}
	return cfg, nil
}
