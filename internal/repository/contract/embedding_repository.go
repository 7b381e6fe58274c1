package contract

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
)

// ScoredLoanDauEmbedding wraps a landform embedding with its similarity score
type ScoredLoanDauEmbedding struct {
	Embedding  *model.LoanDauEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type LoanDauEmbeddingRepository interface {
	Create(ctx context.Context, embedding *model.LoanDauEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*model.LoanDauEmbedding) error
	// SearchSimilarWithScore returns embeddings with their similarity scores, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredLoanDauEmbedding, error)
}

// ScoredVatPhamEmbedding wraps an item embedding with its similarity score
type ScoredVatPhamEmbedding struct {
	Embedding  *model.VatPhamEmbedding
	Similarity float64
}

type VatPhamEmbeddingRepository interface {
	Create(ctx context.Context, embedding *model.VatPhamEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*model.VatPhamEmbedding) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredVatPhamEmbedding, error)
}
