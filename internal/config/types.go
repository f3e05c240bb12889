package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level pqrs configuration, corresponding to .pqrs.yml.
type Config struct {
	Provider     ProviderType     `yaml:"provider" koanf:"provider"`
	Model        string           `yaml:"model" koanf:"model"`
	Port         int              `yaml:"port" koanf:"port"`
	RateLimitRPM int              `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	LogLevel     string           `yaml:"log_level" koanf:"log_level"`
	Logo         string           `yaml:"logo" koanf:"logo"`
	Letterhead   LetterheadConfig `yaml:"letterhead" koanf:"letterhead"`
	Sampling     SamplingConfig   `yaml:"sampling" koanf:"sampling"`
}

// LetterheadConfig is the fixed corporate framing of exported letters.
type LetterheadConfig struct {
	Company     string `yaml:"company" koanf:"company"`
	Subtitle    string `yaml:"subtitle" koanf:"subtitle"`
	City        string `yaml:"city" koanf:"city"`
	SignerName  string `yaml:"signer_name" koanf:"signer_name"`
	SignerRole  string `yaml:"signer_role" koanf:"signer_role"`
	FooterLine1 string `yaml:"footer_line1" koanf:"footer_line1"`
	FooterLine2 string `yaml:"footer_line2" koanf:"footer_line2"`
}

// SamplingConfig holds the text-generation sampling parameters.
type SamplingConfig struct {
	Temperature float64 `yaml:"temperature" koanf:"temperature"`
	TopP        float64 `yaml:"top_p" koanf:"top_p"`
	MaxTokens   int     `yaml:"max_tokens" koanf:"max_tokens"`
}
