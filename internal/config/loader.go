package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	// EnvLoaderMaxUploadSize overrides the bulk-load upload size limit.
	EnvLoaderMaxUploadSize = "LOADER_MAX_UPLOAD_SIZE"
)

// LoaderConfig contains bulk CSV load configuration.
type LoaderConfig struct {
	// MaxUploadSize bounds the request body accepted by the bulk-load
	// endpoints, in human-readable form ("32MB").
	MaxUploadSize    string `toml:"max_upload_size"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the parsed upload size limit in bytes.
func (c *LoaderConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the loader configuration.
func (c *LoaderConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *LoaderConfig) Merge(overlay *LoaderConfig) {
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func (c *LoaderConfig) loadDefaults() {
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "64MB"
	}
}

func (c *LoaderConfig) loadEnv() {
	if v := os.Getenv(EnvLoaderMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *LoaderConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	c.maxUploadSizeVal = size
	return nil
}
