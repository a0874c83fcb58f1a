package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationClientInterface is the narrow surface the planning services need
// from an LLM provider: one prompt in, one JSON document out. Any deviation
// from valid JSON is an error here, never repaired downstream.
type GenerationClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewGenerationClient creates either an OpenAI or Gemini backed client.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}

// cleanJSONResponse strips markdown fences and any prose around the first
// JSON object or array. Gemini in JSON mode rarely needs this; OpenAI without
// response_format support occasionally does.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelimiter(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelimiter(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
