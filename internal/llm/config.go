// Package llm provides the generative-AI client and response normalization
// for interview question generation.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application. Candidates is
// an ordered list of model identifiers; generation tries each in turn and
// the first to succeed is used.
type Config struct {
	Provider   Provider
	Candidates []string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration. The order
// is deliberate: newest preferred model first, older fallbacks after.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Candidates: []string{
			"gemini-1.5-flash-latest",
			"gemini-1.5-flash",
			"gemini-pro",
			"gemini-1.0-pro",
		},
	}
}

// WithCandidates returns a new Config with a replaced candidate list.
func (c *Config) WithCandidates(models ...string) *Config {
	newConfig := &Config{
		Provider:   c.Provider,
		Candidates: make([]string, len(models)),
	}
	copy(newConfig.Candidates, models)
	return newConfig
}
