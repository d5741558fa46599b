// Package config layers service configuration: struct defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "EMOREC_CONFIG"

var defaultPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/emorec/config.yaml",
}

type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

type OllamaConfig struct {
	URL   string `koanf:"url"`
	Model string `koanf:"model"`
}

type SpotifyConfig struct {
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	MaxRetries   int           `koanf:"max_retries"`
	BaseBackoff  time.Duration `koanf:"base_backoff"`
}

type GeniusConfig struct {
	AccessToken string        `koanf:"access_token"`
	Timeout     time.Duration `koanf:"timeout"`
}

type StoreConfig struct {
	// Path to the sqlite fallback table. Empty disables the store.
	Path string `koanf:"path"`
}

type LyricsConfig struct {
	FilterThreshold float64 `koanf:"filter_threshold"`
}

type WorkerConfig struct {
	MaxInFlight  int           `koanf:"max_in_flight"`
	ItemTimeout  time.Duration `koanf:"item_timeout"`
	BatchTimeout time.Duration `koanf:"batch_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Ollama  OllamaConfig  `koanf:"ollama"`
	Spotify SpotifyConfig `koanf:"spotify"`
	Genius  GeniusConfig  `koanf:"genius"`
	Store   StoreConfig   `koanf:"store"`
	Lyrics  LyricsConfig  `koanf:"lyrics"`
	Worker  WorkerConfig  `koanf:"worker"`
	Log     LogConfig     `koanf:"log"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "nomic-embed-text",
		},
		Spotify: SpotifyConfig{
			MaxRetries:  3,
			BaseBackoff: 500 * time.Millisecond,
		},
		Genius: GeniusConfig{
			Timeout: 3 * time.Second,
		},
		Worker: WorkerConfig{
			MaxInFlight:  4,
			ItemTimeout:  3 * time.Second,
			BatchTimeout: 12 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration. path may be empty, in which case
// PathEnvVar and then the default locations are tried; a missing file is not
// an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envMappings limits environment overrides to a known set, keeping the
// historical variable names.
var envMappings = map[string]string{
	"server_addr": "server.addr",

	"ollama_url":   "ollama.url",
	"ollama_model": "ollama.model",

	"spotify_client_id":     "spotify.client_id",
	"spotify_client_secret": "spotify.client_secret",
	"spotify_max_retries":   "spotify.max_retries",
	"spotify_retry_backoff": "spotify.base_backoff",

	"genius_access_token": "genius.access_token",
	"genius_timeout":      "genius.timeout",

	"store_path": "store.path",

	"lyrics_filter_threshold": "lyrics.filter_threshold",

	"worker_max_in_flight": "worker.max_in_flight",
	"worker_item_timeout":  "worker.item_timeout",
	"worker_batch_timeout": "worker.batch_timeout",

	"log_level":  "log.level",
	"log_pretty": "log.pretty",
}

func envTransform(key string) string {
	mapped, ok := envMappings[strings.ToLower(key)]
	if !ok {
		return ""
	}
	return mapped
}
