package search

import (
	"context"
	"fmt"
	"log"

	"phongthuy-chatbot-be/internal/repository/contract"
	"phongthuy-chatbot-be/pkg/embedding"
	"phongthuy-chatbot-be/pkg/llm"
)

// Orchestrator runs the two-stage retrieval: vector search over the
// embedding tables, then an LLM rerank to pick the best match.
type Orchestrator struct {
	embeddingProvider embedding.EmbeddingProvider
	loanDauRepo       contract.LoanDauEmbeddingRepository
	vatPhamRepo       contract.VatPhamEmbeddingRepository
	reranker          *Reranker
	config            Config
	logger            *log.Logger
}

func NewOrchestrator(
	embeddingProvider embedding.EmbeddingProvider,
	loanDauRepo contract.LoanDauEmbeddingRepository,
	vatPhamRepo contract.VatPhamEmbeddingRepository,
	llmProvider llm.LLMProvider,
	config Config,
	logger *log.Logger,
) *Orchestrator {
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{
		embeddingProvider: embeddingProvider,
		loanDauRepo:       loanDauRepo,
		vatPhamRepo:       vatPhamRepo,
		reranker:          NewReranker(llmProvider, logger),
		config:            config,
		logger:            logger,
	}
}

// FindLoanDau matches a free-text landform description against the
// sát khí and cát tường entries. Returns nil when nothing clears the
// similarity threshold.
func (o *Orchestrator) FindLoanDau(ctx context.Context, query string) (*Candidate, error) {
	embeddingRes, err := o.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := o.loanDauRepo.SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		o.config.TopK,
		o.config.LoanDauThreshold,
	)
	if err != nil {
		o.logger.Printf("[ERROR] loan dau vector search failed: %v", err)
		return nil, err
	}

	candidates := make([]Candidate, 0, len(scored))
	for i, res := range scored {
		o.logger.Printf("[DEBUG] loan dau candidate %d: %s score=%.4f", i+1, res.Embedding.EntryName, res.Similarity)
		candidates = append(candidates, Candidate{
			Category: res.Embedding.EntryType,
			Name:     res.Embedding.EntryName,
			Content:  res.Embedding.Content,
			Score:    res.Similarity,
		})
	}

	return o.pickBest(ctx, query, candidates)
}

// FindVatPham matches a feng-shui item mention against the item table.
func (o *Orchestrator) FindVatPham(ctx context.Context, query string) (*Candidate, error) {
	embeddingRes, err := o.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := o.vatPhamRepo.SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		o.config.TopK,
		o.config.ItemThreshold,
	)
	if err != nil {
		o.logger.Printf("[ERROR] vat pham vector search failed: %v", err)
		return nil, err
	}

	candidates := make([]Candidate, 0, len(scored))
	for i, res := range scored {
		o.logger.Printf("[DEBUG] vat pham candidate %d: %s score=%.4f", i+1, res.Embedding.EntryName, res.Similarity)
		candidates = append(candidates, Candidate{
			Category: CategoryVatPham,
			Name:     res.Embedding.EntryName,
			Content:  res.Embedding.Content,
			Score:    res.Similarity,
		})
	}

	return o.pickBest(ctx, query, candidates)
}

func (o *Orchestrator) pickBest(ctx context.Context, query string, candidates []Candidate) (*Candidate, error) {
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		candidates[0].Method = MethodVectorSearch
		return &candidates[0], nil
	}
	best := o.reranker.Rerank(ctx, query, candidates)
	return best, nil
}
