package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result
// to the given path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to pqrs! Let's configure the letter service.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"anthropic", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: DefaultModel(cfg.Provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model prompt: %w", err)
	}
	cfg.Model = model

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	companyPrompt := promptui.Prompt{
		Label:   "Company name on the letterhead",
		Default: cfg.Letterhead.Company,
	}
	company, err := companyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("company prompt: %w", err)
	}
	cfg.Letterhead.Company = company

	logoPrompt := promptui.Prompt{
		Label:   "Brand-mark image path (optional)",
		Default: cfg.Logo,
	}
	logo, err := logoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("logo prompt: %w", err)
	}
	cfg.Logo = logo

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		fmt.Printf("Remember to export %s before starting the server.\n", envVar)
	}
	return cfg, nil
}
