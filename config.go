package invtrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// ConfigFilename is the optional configuration file looked up in the storage
// directory or the working directory.
const ConfigFilename = "invtrack.toml"

// Config holds the tracker's settings. Command-line flags take precedence
// over the file; the file over the defaults.
type Config struct {
	StorageDir string  `toml:"storage_dir"` // where trades.jsonl and goals.jsonl live
	Currency   string  `toml:"currency"`    // single reporting currency for all amounts
	DefaultFee float64 `toml:"default_fee"` // fee pre-filled when recording a trade
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		StorageDir: ".invtrack",
		Currency:   "USD",
	}
}

// LoadConfig reads the configuration file at path, falling back to the
// defaults when the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = DefaultConfig().StorageDir
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultConfig().Currency
	}
	return cfg, nil
}
