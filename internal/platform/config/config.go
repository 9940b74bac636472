package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".syntaxlabs"
	envFile  = ".env"
	yamlFile = "config.yaml"
)

type Config struct {
	DataDir        string
	DBPath         string
	LogMode        string
	LogPath        string
	LoginDelay     time.Duration
	RegisterDelay  time.Duration
	AssistantDelay time.Duration
	AnalysisDelay  time.Duration
	BannerTTL      time.Duration
	TokenSecret    string
}

// fileConfig mirrors the optional config.yaml document.
type fileConfig struct {
	LogMode        string `yaml:"log_mode"`
	LogPath        string `yaml:"log_path"`
	LoginDelay     string `yaml:"login_delay"`
	RegisterDelay  string `yaml:"register_delay"`
	AssistantDelay string `yaml:"assistant_delay"`
	AnalysisDelay  string `yaml:"analysis_delay"`
	BannerTTL      string `yaml:"banner_ttl"`
	TokenSecret    string `yaml:"token_secret"`
}

func Default(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		DBPath:         filepath.Join(dataDir, dirName, "syntaxlabs.db"),
		LogMode:        "dev",
		LogPath:        filepath.Join(dataDir, dirName, "syntaxlabs.log"),
		LoginDelay:     1500 * time.Millisecond,
		RegisterDelay:  2 * time.Second,
		AssistantDelay: 1500 * time.Millisecond,
		AnalysisDelay:  2 * time.Second,
		BannerTTL:      5 * time.Second,
		TokenSecret:    "syntaxlabs-local",
	}
}

// New resolves configuration for dataDir. Values come from defaults, then
// .syntaxlabs/config.yaml, then .syntaxlabs/.env, then SYNTAXLABS_* variables.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Default(dataDir)

	if err := cfg.applyFile(filepath.Join(dataDir, dirName, yamlFile)); err != nil {
		return Config{}, err
	}
	if err := godotenv.Load(filepath.Join(dataDir, dirName, envFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir cannot be empty")
	}
	switch c.LogMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("unknown log mode %q", c.LogMode)
	}
	for name, d := range map[string]time.Duration{
		"login delay":     c.LoginDelay,
		"register delay":  c.RegisterDelay,
		"assistant delay": c.AssistantDelay,
		"analysis delay":  c.AnalysisDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}
	if c.BannerTTL <= 0 {
		return fmt.Errorf("banner ttl must be > 0")
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	if fc.LogMode != "" {
		c.LogMode = fc.LogMode
	}
	if fc.LogPath != "" {
		c.LogPath = fc.LogPath
	}
	if fc.TokenSecret != "" {
		c.TokenSecret = fc.TokenSecret
	}
	for _, item := range []struct {
		raw string
		dst *time.Duration
	}{
		{fc.LoginDelay, &c.LoginDelay},
		{fc.RegisterDelay, &c.RegisterDelay},
		{fc.AssistantDelay, &c.AssistantDelay},
		{fc.AnalysisDelay, &c.AnalysisDelay},
		{fc.BannerTTL, &c.BannerTTL},
	} {
		if item.raw == "" {
			continue
		}
		d, err := time.ParseDuration(item.raw)
		if err != nil {
			return fmt.Errorf("decode config file: %w", err)
		}
		*item.dst = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("SYNTAXLABS_LOG_MODE"); ok {
		c.LogMode = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("SYNTAXLABS_LOG_PATH"); ok {
		c.LogPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("SYNTAXLABS_TOKEN_SECRET"); ok {
		c.TokenSecret = v
	}
	for key, dst := range map[string]*time.Duration{
		"SYNTAXLABS_LOGIN_DELAY":     &c.LoginDelay,
		"SYNTAXLABS_REGISTER_DELAY":  &c.RegisterDelay,
		"SYNTAXLABS_ASSISTANT_DELAY": &c.AssistantDelay,
		"SYNTAXLABS_ANALYSIS_DELAY":  &c.AnalysisDelay,
		"SYNTAXLABS_BANNER_TTL":      &c.BannerTTL,
	} {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return nil
}

// parseDuration accepts Go durations ("1.5s") or bare milliseconds ("1500").
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(raw)
}
