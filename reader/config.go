package reader

import (
	"os"
	"strconv"
	"time"
)

// Config is a configuration for the reader application
type Config struct {
	HTTPAddr string
	// ExpiryTZ is an IANA timezone name used to decide whether a card has expired.
	ExpiryTZ string
	// ShowFullPAN disables account number masking in responses. Development only.
	ShowFullPAN bool
	// Workers is the number of concurrent decoders used for batch files.
	Workers int
	// PANPepper keys account fingerprints. Fingerprints are off when empty.
	PANPepper string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
		ExpiryTZ: "UTC",
		Workers:  4,
	}
}

// ConfigFromEnv overlays READER_* environment variables on the defaults.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("READER_HTTP_ADDR", cfg.HTTPAddr)
	cfg.ExpiryTZ = getenv("READER_EXPIRY_TZ", cfg.ExpiryTZ)
	cfg.ShowFullPAN = getenv("READER_SHOW_FULL_PAN", "false") == "true"
	cfg.PANPepper = getenv("READER_PAN_PEPPER", "")
	if n, err := strconv.Atoi(getenv("READER_WORKERS", "")); err == nil && n > 0 {
		cfg.Workers = n
	}
	return cfg
}

// Location resolves ExpiryTZ. An empty name means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c == nil || c.ExpiryTZ == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.ExpiryTZ)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
