package implementation

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type LoanDauEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewLoanDauEmbeddingRepository(db *gorm.DB) contract.LoanDauEmbeddingRepository {
	return &LoanDauEmbeddingRepositoryImpl{db: db}
}

func (r *LoanDauEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *model.LoanDauEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

func (r *LoanDauEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*model.LoanDauEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(embeddings).Error
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered by threshold.
// Cosine distance in pgvector is 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) to get the similarity.
func (r *LoanDauEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredLoanDauEmbedding, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.LoanDauEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("loan_dau_embeddings").
		Select("loan_dau_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredLoanDauEmbedding, len(results))
	for i, res := range results {
		emb := res.LoanDauEmbedding
		scored[i] = &contract.ScoredLoanDauEmbedding{
			Embedding:  &emb,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
