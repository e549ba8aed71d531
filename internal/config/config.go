package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the KTH instance of TimeEdit. Other universities run
// their own instances; point BaseURL elsewhere to query those.
const DefaultBaseURL = "https://cloud.timeedit.net/kth/web/public01/"

// Config is the top-level configuration for the timeedit CLI. It maps
// directly onto timeedit.Options; see that type for filter semantics.
type Config struct {
	// BaseURL is the TimeEdit instance root, including trailing slash.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// FilterEmpty drops events missing lecturers, location or type.
	FilterEmpty bool `yaml:"filter_empty" json:"filter_empty"`

	// FilterToSemester keeps only events in the current KTH period.
	FilterToSemester bool `yaml:"filter_to_semester" json:"filter_to_semester"`

	// StartDate, if set ("YYYY-MM-DD"), keeps only events ending before it.
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty"`

	// EndDate, if set ("YYYY-MM-DD"), keeps only events starting after it.
	// Only takes effect together with UseEndDate.
	EndDate string `yaml:"end_date,omitempty" json:"end_date,omitempty"`

	// UseEndDate enables the EndDate filter. Off by default.
	UseEndDate bool `yaml:"use_end_date" json:"use_end_date"`

	// UseKTHPlaces rewrites room names into KTH Places search URLs.
	UseKTHPlaces bool `yaml:"use_kth_places" json:"use_kth_places"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		FilterEmpty:      true,
		FilterToSemester: false,
		UseEndDate:       false,
		UseKTHPlaces:     false,
	}
}

// Normalize fills in missing values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (parent
// directory created as needed, 0600 perms) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to path atomically (temp file + rename)
// with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".timeedit-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
