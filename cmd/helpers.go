package cmd

import (
	"fmt"

	"github.com/tlogic-co/pqrs-service/internal/config"
	"github.com/tlogic-co/pqrs-service/internal/letter"
	"github.com/tlogic-co/pqrs-service/internal/llm"
	"github.com/tlogic-co/pqrs-service/internal/pqrs"
)

// loadConfig loads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildService creates the generation service from config: provider,
// rate limiter and sampling parameters.
func buildService(cfg *config.Config) (*pqrs.Service, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}
	provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)

	sampling := pqrs.Sampling{
		Temperature: cfg.Sampling.Temperature,
		TopP:        cfg.Sampling.TopP,
		MaxTokens:   cfg.Sampling.MaxTokens,
	}
	return pqrs.NewService(provider, cfg.Model, sampling), nil
}

// buildComposer creates the letter composer from the configured
// letterhead.
func buildComposer(cfg *config.Config) *letter.Composer {
	return letter.NewComposer(letter.Letterhead{
		Company:     cfg.Letterhead.Company,
		Subtitle:    cfg.Letterhead.Subtitle,
		City:        cfg.Letterhead.City,
		SignerName:  cfg.Letterhead.SignerName,
		SignerRole:  cfg.Letterhead.SignerRole,
		FooterLine1: cfg.Letterhead.FooterLine1,
		FooterLine2: cfg.Letterhead.FooterLine2,
		LogoPath:    cfg.Logo,
	})
}
