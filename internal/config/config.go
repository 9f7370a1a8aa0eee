package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"moodrec/internal/corpus"
)

// EnvPrefix marks environment variables that override file settings,
// e.g. MOODREC_CORPUS_PATH -> corpus.path.
const EnvPrefix = "MOODREC_"

// CorpusConfig locates the movie table and its columns.
type CorpusConfig struct {
	Path    string         `yaml:"path" koanf:"path" validate:"required"`
	Columns corpus.Columns `yaml:"columns" koanf:"columns"`
}

// RecommendConfig tunes recommendation queries.
type RecommendConfig struct {
	TopN int `yaml:"top_n" koanf:"top_n" validate:"min=1,max=100"`
	// Seed fixes the shuffle order when non-zero.
	Seed uint64 `yaml:"seed" koanf:"seed"`
}

// SentimentConfig configures the polarity scorer.
type SentimentConfig struct {
	// Scorer selects the polarity scorer: vader (default) or the built-in word lexicon.
	Scorer string `yaml:"scorer" koanf:"scorer" validate:"oneof=vader lexicon"`
	// NegationWindow and LexiconPath only apply to the lexicon scorer.
	NegationWindow int    `yaml:"negation_window" koanf:"negation_window" validate:"min=0,max=10"`
	LexiconPath    string `yaml:"lexicon_path,omitempty" koanf:"lexicon_path"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `yaml:"format" koanf:"format" validate:"oneof=json console"`
	// File receives log output while the TUI owns the terminal. Empty discards it.
	File string `yaml:"file,omitempty" koanf:"file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus    CorpusConfig    `yaml:"corpus" koanf:"corpus"`
	Recommend RecommendConfig `yaml:"recommend" koanf:"recommend"`
	Sentiment SentimentConfig `yaml:"sentiment" koanf:"sentiment"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
}

// Load layers defaults, the YAML file at path (skipped when it does not exist)
// and MOODREC_* environment variables, then validates the result.
func Load(path string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./moodrec.yaml first, then ~/.config/moodrec/config.yaml.
// If neither exists, it writes defaults to ~/.config/moodrec/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "moodrec.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "moodrec", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Corpus:    CorpusConfig{Path: "imdb_top_1000.csv", Columns: corpus.DefaultColumns()},
		Recommend: RecommendConfig{TopN: 5},
		Sentiment: SentimentConfig{Scorer: "vader", NegationWindow: 3},
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := corpus.DefaultColumns()
	if len(cfg.Corpus.Columns.Title) == 0 {
		cfg.Corpus.Columns.Title = def.Title
	}
	if len(cfg.Corpus.Columns.Genre) == 0 {
		cfg.Corpus.Columns.Genre = def.Genre
	}
	if len(cfg.Corpus.Columns.Synopsis) == 0 {
		cfg.Corpus.Columns.Synopsis = def.Synopsis
	}
	if len(cfg.Corpus.Columns.Rating) == 0 {
		cfg.Corpus.Columns.Rating = def.Rating
	}
	cfg.Sentiment.Scorer = strings.ToLower(cfg.Sentiment.Scorer)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
}

// envKey maps MOODREC_SECTION_FIELD_NAME to section.field_name.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
