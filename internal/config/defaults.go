package config

// defaultModels maps each provider to its default reply-drafting model.
var defaultModels = map[ProviderType]string{
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderOpenAI:    "gpt-4o",
	ProviderOllama:    "llama3",
}

// DefaultModel returns the default model for the given provider.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderAnthropic]
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:     ProviderAnthropic,
		Model:        DefaultModel(ProviderAnthropic),
		Port:         8080,
		RateLimitRPM: 30,
		LogLevel:     "info",
		Letterhead: LetterheadConfig{
			Company:     "Veolia Colombia",
			Subtitle:    "Gestión del Agua y Servicios Ambientales",
			City:        "Bogotá D.C.",
			SignerName:  "MARÍA FERNANDA LÓPEZ GARCÍA",
			SignerRole:  "Coordinadora Servicio al Cliente",
			FooterLine1: "Veolia Colombia - Comprometidos con el Medio Ambiente",
			FooterLine2: "Línea gratuita nacional: 01 8000 123 456 - www.veolia.com.co",
		},
		Sampling: SamplingConfig{
			Temperature: 0.7,
			TopP:        0.9,
			MaxTokens:   3000,
		},
	}
}
