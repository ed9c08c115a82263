package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat client
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Embedder defines the interface for generating embeddings.
// Implementations are safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
