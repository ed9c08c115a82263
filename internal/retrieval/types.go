package retrieval

// Corpus names a vector collection searchable by the responders.
type Corpus string

const (
	// CorpusProductDocs holds indexed product and policy documents.
	CorpusProductDocs Corpus = "product_documents"
	// CorpusCourses holds one point per catalog course.
	CorpusCourses Corpus = "courses"
)

// Snippet is one retrieved passage with its similarity score.
type Snippet struct {
	Text  string
	Score float64
}

const (
	embeddingDim      = 1536
	distanceCosine    = "Cosine"
	defaultSearchTopK = 3
)
