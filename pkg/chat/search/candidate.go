package search

// Candidate categories.
const (
	CategorySatKhi  = "sat_khi"
	CategoryTheDat  = "the_dat"
	CategoryVatPham = "vat_pham"
)

// How the winning candidate was chosen.
const (
	MethodVectorSearch = "vector_search"
	MethodLLMRerank    = "llm_rerank"
)

// Candidate is one retrieval hit ready for reranking. Method is set on
// the winner only, recording which stage made the call.
type Candidate struct {
	Category string
	Name     string
	Content  string
	Score    float64
	Method   string
}

// Config encapsulates search parameters
type Config struct {
	ItemThreshold    float64
	LoanDauThreshold float64
	TopK             int
}

// DefaultConfig returns default search configuration
func DefaultConfig() Config {
	return Config{
		ItemThreshold:    0.5,
		LoanDauThreshold: 0.4,
		TopK:             3,
	}
}
