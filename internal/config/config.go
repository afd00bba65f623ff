package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rnglib/rng/internal/logger"
	"github.com/rnglib/rng/internal/output"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile    = ".rng.yaml"
	DefaultEnvFile = ".env"
	FileEnvVar     = "RNG_CONFIG"
)

// Config holds the settings shared by every command. Flags override it.
type Config struct {
	Language    string `yaml:"language" env:"RNG_LANGUAGE"`
	Count       int    `yaml:"count" env:"RNG_COUNT"`
	Short       bool   `yaml:"short" env:"RNG_SHORT"`
	Seed        uint64 `yaml:"seed" env:"RNG_SEED"`
	LanguageDir string `yaml:"language_dir" env:"RNG_LANGUAGE_DIR"`
	CacheSize   int    `yaml:"cache_size" env:"RNG_CACHE_SIZE"`
	LogLevel    string `yaml:"log_level" env:"RNG_LOG_LEVEL"`
	LogFormat   string `yaml:"log_format" env:"RNG_LOG_FORMAT"`
	Format      string `yaml:"format" env:"RNG_FORMAT"`
	Plain       bool   `yaml:"plain" env:"RNG_PLAIN"`
}

func Default() Config {
	return Config{
		Count:     1,
		CacheSize: 32,
		LogLevel:  "warn",
		LogFormat: string(logger.FormatText),
		Format:    string(output.FormatText),
	}
}

// Sources says where Load looks. Zero values mean the defaults: File falls
// back to $RNG_CONFIG then ./.rng.yaml (optional), EnvFile to ./.env
// (optional) and Environ to the process environment.
type Sources struct {
	File    string
	EnvFile string
	Environ map[string]string
}

// Load layers defaults, the YAML file, the .env file and the environment, in
// increasing precedence, then validates the result.
func Load(src Sources) (Config, error) {
	environ := src.Environ
	if environ == nil {
		environ = processEnviron()
	}

	cfg := Default()

	path, explicit := src.File, src.File != ""
	if !explicit {
		if fromEnv := strings.TrimSpace(environ[FileEnvVar]); fromEnv != "" {
			path, explicit = fromEnv, true
		} else {
			path = DefaultFile
		}
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	envFile := src.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	merged := make(map[string]string)
	if fileVars, err := godotenv.Read(envFile); err == nil {
		for k, v := range fileVars {
			merged[k] = v
		}
	} else if src.EnvFile != "" {
		return Config{}, errors.Join(ErrReadingFile, err)
	}
	for k, v := range environ {
		merged[k] = v
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Environment: merged}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadingFile, path, err)
	}
	return nil
}

func processEnviron() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}

// Validate rejects values no command can use.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("%w: cache size must be at least 1, got %d", ErrInvalidConfig, c.CacheSize)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := output.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
