package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"deckcheck/internal"
)

// DefaultStructuralPath is the absolute element path that located the deck
// list code block before the page layout was addressed by tag.
const DefaultStructuralPath = "/html/body/div[1]/main/div/div/div[1]/div[2]/div[2]/div/div[2]/div[2]/div/div[2]/div/div/code/text()"

type Config struct {
	BaseURL       string
	HTTPTimeoutMs int
	UserAgent     string

	OutputDir      string
	LocalDirSuffix string
	CollectionPath string
	DeckListDir    string

	Extraction         internal.ExtractionStrategy
	CodeSelector       string
	StructuralPath     string
	StructuralFallback bool
	TrimMode           internal.TrimMode
	MatchPolicy        internal.MatchPolicy

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"edhrec_base_url":     "https://edhrec.com",
	"http_timeout_ms":     30000,
	"http_user_agent":     "deckcheck/1.0",
	"output_dir":          "commanders",
	"local_dir_suffix":    "_local",
	"collection_path":     "collection.csv",
	"decklist_dir":        "decklists",
	"extraction_strategy": string(internal.ExtractTagSelector),
	"code_selector":       "code",
	"structural_path":     DefaultStructuralPath,
	"structural_fallback": true,
	"trim_mode":           string(internal.TrimLeading),
	"match_policy":        string(internal.MatchExact),
	"log_level":           "info",
	"log_format":          "console",
}

// Load reads an optional .env file and the process environment. Every key
// has a default, so a bare environment yields a usable Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		BaseURL:       strings.TrimRight(v.GetString("edhrec_base_url"), "/"),
		HTTPTimeoutMs: v.GetInt("http_timeout_ms"),
		UserAgent:     v.GetString("http_user_agent"),

		OutputDir:      v.GetString("output_dir"),
		LocalDirSuffix: v.GetString("local_dir_suffix"),
		CollectionPath: v.GetString("collection_path"),
		DeckListDir:    v.GetString("decklist_dir"),

		Extraction:         internal.ExtractionStrategy(v.GetString("extraction_strategy")),
		CodeSelector:       v.GetString("code_selector"),
		StructuralPath:     v.GetString("structural_path"),
		StructuralFallback: v.GetBool("structural_fallback"),
		TrimMode:           internal.TrimMode(strings.ToLower(v.GetString("trim_mode"))),
		MatchPolicy:        internal.MatchPolicy(strings.ToLower(v.GetString("match_policy"))),

		LogLevel:  strings.ToLower(v.GetString("log_level")),
		LogFormat: strings.ToLower(v.GetString("log_format")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Extraction {
	case internal.ExtractTagSelector, internal.ExtractStructuralPath:
	default:
		return fmt.Errorf("unsupported extraction strategy: %s", c.Extraction)
	}
	switch c.TrimMode {
	case internal.TrimBoth, internal.TrimLeading, internal.TrimNone:
	default:
		return fmt.Errorf("unsupported trim mode: %s", c.TrimMode)
	}
	switch c.MatchPolicy {
	case internal.MatchExact, internal.MatchSubstring:
	default:
		return fmt.Errorf("unsupported match policy: %s", c.MatchPolicy)
	}
	if err := c.Require("OUTPUT_DIR", c.OutputDir); err != nil {
		return err
	}
	if err := c.Require("EDHREC_BASE_URL", c.BaseURL); err != nil {
		return err
	}
	if c.HTTPTimeoutMs <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_MS must be positive, got %d", c.HTTPTimeoutMs)
	}
	return nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}
