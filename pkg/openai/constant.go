package openai

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default chat model to use
	DefaultModel = "gpt-4.1-nano"

	// DefaultEmbeddingModel is the default embeddings model
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultRequestsPerMinute bounds outbound API calls per client
	DefaultRequestsPerMinute = 60
)
