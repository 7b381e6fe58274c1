package implementation

import (
	"context"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type VatPhamEmbeddingRepositoryImpl struct {
	db *gorm.DB
}

func NewVatPhamEmbeddingRepository(db *gorm.DB) contract.VatPhamEmbeddingRepository {
	return &VatPhamEmbeddingRepositoryImpl{db: db}
}

func (r *VatPhamEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *model.VatPhamEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

func (r *VatPhamEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*model.VatPhamEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(embeddings).Error
}

func (r *VatPhamEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredVatPhamEmbedding, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.VatPhamEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("vat_pham_embeddings").
		Select("vat_pham_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredVatPhamEmbedding, len(results))
	for i, res := range results {
		emb := res.VatPhamEmbedding
		scored[i] = &contract.ScoredVatPhamEmbedding{
			Embedding:  &emb,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
