package generationfx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"voyago/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient)

// GenerationConfig holds configuration for the LLM generation client.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment
// variables. Gemini is the default provider.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	client, err := utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	return client, nil
}

func getGenerationConfig() GenerationConfig {
	provider := utils.GetEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = utils.GetEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}
