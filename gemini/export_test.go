package gemini

import "google.golang.org/genai"

// BuildConfig exposes buildConfig for testing.
func BuildConfig(persona string) *genai.GenerateContentConfig {
	return buildConfig(persona)
}

// DefaultModel exposes the default model ID for testing.
const DefaultModel = defaultModel
