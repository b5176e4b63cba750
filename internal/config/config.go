package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Importer holds all configuration for the map template importer.
type Importer struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Templates
	TemplateDir string `yaml:"template_dir"`
	TemplateExt string `yaml:"template_ext"` // file extension including the dot
	LoadWorkers int    `yaml:"load_workers"` // concurrent file parsers

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultImporter returns Importer config with sensible defaults.
func DefaultImporter() Importer {
	return Importer{
		LogLevel:    "info",
		TemplateDir: "res/map",
		TemplateExt: ".map",
		LoadWorkers: 4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "battlemap",
			Password: "battlemap",
			DBName:   "battlemap",
			SSLMode:  "disable",
		},
	}
}

// LoadImporter loads importer config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadImporter(path string) (Importer, error) {
	cfg := DefaultImporter()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.LoadWorkers <= 0 {
		return cfg, fmt.Errorf("config %s: load_workers must be positive, got %d", path, cfg.LoadWorkers)
	}

	return cfg, nil
}
