// Command indexer rebuilds the vector tables from the reference tables.
// Run it after seeding or editing the landform and item data.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"phongthuy-chatbot-be/internal/config"
	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/implementation"
	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/database"
	"phongthuy-chatbot-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	var provider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	default:
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	ctx := context.Background()
	if err := indexLoanDau(ctx, db, provider); err != nil {
		log.Fatalf("index loan dau: %v", err)
	}
	if err := indexVatPham(ctx, db, provider); err != nil {
		log.Fatalf("index vat pham: %v", err)
	}
	log.Println("indexing complete")
}

func indexLoanDau(ctx context.Context, db *gorm.DB, provider embedding.EmbeddingProvider) error {
	repo := implementation.NewLoanDauRepository(db)
	embRepo := implementation.NewLoanDauEmbeddingRepository(db)

	satKhi, err := repo.ListSatKhi(ctx)
	if err != nil {
		return err
	}
	catTuong, err := repo.ListCatTuong(ctx)
	if err != nil {
		return err
	}

	var embeddings []*model.LoanDauEmbedding
	for _, entry := range satKhi {
		content := buildContent(entry.Tensatkhi, entry.MotaNhandien, entry.KeywordsNhandien)
		vec, err := embedContent(provider, content)
		if err != nil {
			return fmt.Errorf("embed %q: %w", entry.Tensatkhi, err)
		}
		embeddings = append(embeddings, &model.LoanDauEmbedding{
			EntryType:      search.CategorySatKhi,
			EntryName:      entry.Tensatkhi,
			Content:        content,
			EmbeddingValue: vec,
		})
	}
	for _, entry := range catTuong {
		content := buildContent(entry.Tenthedat, entry.MotaNhandien, entry.KeywordsNhandien)
		vec, err := embedContent(provider, content)
		if err != nil {
			return fmt.Errorf("embed %q: %w", entry.Tenthedat, err)
		}
		embeddings = append(embeddings, &model.LoanDauEmbedding{
			EntryType:      search.CategoryTheDat,
			EntryName:      entry.Tenthedat,
			Content:        content,
			EmbeddingValue: vec,
		})
	}

	if err := db.WithContext(ctx).Exec("DELETE FROM loan_dau_embeddings").Error; err != nil {
		return err
	}
	if err := embRepo.CreateBulk(ctx, embeddings); err != nil {
		return err
	}
	log.Printf("indexed %d landform entries", len(embeddings))
	return nil
}

func indexVatPham(ctx context.Context, db *gorm.DB, provider embedding.EmbeddingProvider) error {
	repo := implementation.NewTraCuuRepository(db)
	embRepo := implementation.NewVatPhamEmbeddingRepository(db)

	items, err := repo.ListVatPham(ctx)
	if err != nil {
		return err
	}

	var embeddings []*model.VatPhamEmbedding
	for _, item := range items {
		content := strings.TrimSpace(fmt.Sprintf("%s. %s. %s", item.Tenvatpham, item.CongdungchinhSo1, item.CongdungphuSo2))
		vec, err := embedContent(provider, content)
		if err != nil {
			return fmt.Errorf("embed %q: %w", item.Tenvatpham, err)
		}
		embeddings = append(embeddings, &model.VatPhamEmbedding{
			EntryName:      item.Tenvatpham,
			Content:        content,
			EmbeddingValue: vec,
		})
	}

	if err := db.WithContext(ctx).Exec("DELETE FROM vat_pham_embeddings").Error; err != nil {
		return err
	}
	if err := embRepo.CreateBulk(ctx, embeddings); err != nil {
		return err
	}
	log.Printf("indexed %d item entries", len(embeddings))
	return nil
}

func buildContent(name, description string, keywords datatypes.JSON) string {
	parts := []string{name}
	if description != "" {
		parts = append(parts, description)
	}
	var kws []string
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &kws); err == nil && len(kws) > 0 {
			parts = append(parts, strings.Join(kws, ", "))
		}
	}
	return strings.Join(parts, ". ")
}

func embedContent(provider embedding.EmbeddingProvider, content string) (pgvector.Vector, error) {
	res, err := provider.Generate(content, "RETRIEVAL_DOCUMENT")
	if err != nil {
		return pgvector.Vector{}, err
	}
	return pgvector.NewVector(res.Embedding.Values), nil
}
