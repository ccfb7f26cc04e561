package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/booltab/booltab/pkg/stringsutil"
)

// DefaultMaxIdentifiers caps truth-table requests over HTTP. 2^18 rows is
// where the CLI starts warning; the server cannot prompt, so it refuses
// instead.
const DefaultMaxIdentifiers = 18

type Config struct {
	Port           string   `yaml:"port"`
	CorsOrigins    []string `yaml:"corsOrigins"`
	MaxIdentifiers int      `yaml:"maxIdentifiers"`
}

// LoadConfig layers configuration: defaults, then an optional YAML file
// named by BOOLTAB_CONFIG, then environment variables (with an optional
// .env file).
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	cfg := &Config{
		Port:           "8080",
		CorsOrigins:    []string{"*"},
		MaxIdentifiers: DefaultMaxIdentifiers,
	}

	if path := os.Getenv("BOOLTAB_CONFIG"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CorsOrigins = stringsutil.SplitTrimmed(origins)
	}
	if v := os.Getenv("MAX_IDENTIFIERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_IDENTIFIERS: %w", err)
		}
		cfg.MaxIdentifiers = n
	}

	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if cfg.MaxIdentifiers < 0 || cfg.MaxIdentifiers > 26 {
		return nil, errors.New("max identifiers must be between 0 and 26")
	}

	return cfg, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
