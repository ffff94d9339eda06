package main

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"deckcheck/internal"
	"deckcheck/internal/config"
	"deckcheck/internal/edhrec"
	"deckcheck/internal/logger"
	"deckcheck/internal/pipeline"
)

type flagOverrides struct {
	collection string
	outputDir  string
	match      string
	extraction string
	trim       string
	logLevel   string
}

type commandContext struct {
	flags *flagOverrides

	once   sync.Once
	config config.Config
	log    *zap.Logger
	err    error
}

func newCommandContext(flags *flagOverrides) *commandContext {
	return &commandContext{flags: flags}
}

// ensure loads configuration once, applies flag overrides on top of the
// environment and builds the logger.
func (c *commandContext) ensure() (config.Config, *zap.Logger, error) {
	c.once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.err = err
			return
		}
		applyOverrides(&cfg, c.flags)
		if err := cfg.Validate(); err != nil {
			c.err = err
			return
		}
		log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			c.err = err
			return
		}
		c.config = cfg
		c.log = log
	})
	return c.config, c.log, c.err
}

func (c *commandContext) service() (*pipeline.ProcessingService, error) {
	cfg, log, err := c.ensure()
	if err != nil {
		return nil, err
	}
	return pipeline.NewProcessingService(cfg, edhrec.NewClient(cfg), log), nil
}

func (c *commandContext) sync() {
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func applyOverrides(cfg *config.Config, flags *flagOverrides) {
	if flags == nil {
		return
	}
	if v := strings.TrimSpace(flags.collection); v != "" {
		cfg.CollectionPath = v
	}
	if v := strings.TrimSpace(flags.outputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := strings.TrimSpace(flags.match); v != "" {
		cfg.MatchPolicy = internal.MatchPolicy(strings.ToLower(v))
	}
	if v := strings.TrimSpace(flags.extraction); v != "" {
		cfg.Extraction = internal.ExtractionStrategy(v)
	}
	if v := strings.TrimSpace(flags.trim); v != "" {
		cfg.TrimMode = internal.TrimMode(strings.ToLower(v))
	}
	if v := strings.TrimSpace(flags.logLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
