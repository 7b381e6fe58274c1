package search

import (
	"context"
	"errors"
	"testing"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/internal/repository/contract"
	"phongthuy-chatbot-be/pkg/embedding"
	"phongthuy-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct{}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fakeLoanDauRepo struct {
	results []*contract.ScoredLoanDauEmbedding
}

func (f *fakeLoanDauRepo) Create(ctx context.Context, e *model.LoanDauEmbedding) error { return nil }
func (f *fakeLoanDauRepo) CreateBulk(ctx context.Context, e []*model.LoanDauEmbedding) error {
	return nil
}
func (f *fakeLoanDauRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredLoanDauEmbedding, error) {
	var out []*contract.ScoredLoanDauEmbedding
	for _, r := range f.results {
		if r.Similarity >= threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeVatPhamRepo struct {
	results []*contract.ScoredVatPhamEmbedding
}

func (f *fakeVatPhamRepo) Create(ctx context.Context, e *model.VatPhamEmbedding) error { return nil }
func (f *fakeVatPhamRepo) CreateBulk(ctx context.Context, e []*model.VatPhamEmbedding) error {
	return nil
}
func (f *fakeVatPhamRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredVatPhamEmbedding, error) {
	var out []*contract.ScoredVatPhamEmbedding
	for _, r := range f.results {
		if r.Similarity >= threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeLLM struct {
	response string
	err      error
	called   bool
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.called = true
	return f.response, f.err
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func loanDauHit(entryType, name string, score float64) *contract.ScoredLoanDauEmbedding {
	return &contract.ScoredLoanDauEmbedding{
		Embedding: &model.LoanDauEmbedding{
			EntryType: entryType,
			EntryName: name,
			Content:   name + " mô tả",
		},
		Similarity: score,
	}
}

func newTestOrchestrator(loanDau *fakeLoanDauRepo, vatPham *fakeVatPhamRepo, provider llm.LLMProvider) *Orchestrator {
	return NewOrchestrator(&fakeEmbedder{}, loanDau, vatPham, provider, DefaultConfig(), nil)
}

func TestFindLoanDauNothingAboveThreshold(t *testing.T) {
	repo := &fakeLoanDauRepo{results: []*contract.ScoredLoanDauEmbedding{
		loanDauHit(CategorySatKhi, "Thương Sát", 0.3),
	}}
	o := newTestOrchestrator(repo, &fakeVatPhamRepo{}, &fakeLLM{})

	candidate, err := o.FindLoanDau(context.Background(), "nhà gần cây to")

	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestFindLoanDauSingleHitSkipsRerank(t *testing.T) {
	repo := &fakeLoanDauRepo{results: []*contract.ScoredLoanDauEmbedding{
		loanDauHit(CategorySatKhi, "Thương Sát", 0.8),
	}}
	provider := &fakeLLM{}
	o := newTestOrchestrator(repo, &fakeVatPhamRepo{}, provider)

	candidate, err := o.FindLoanDau(context.Background(), "đường đâm vào nhà")

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Thương Sát", candidate.Name)
	assert.Equal(t, CategorySatKhi, candidate.Category)
	assert.Equal(t, MethodVectorSearch, candidate.Method)
	assert.False(t, provider.called)
}

func TestFindLoanDauRerankPicksBestChoice(t *testing.T) {
	repo := &fakeLoanDauRepo{results: []*contract.ScoredLoanDauEmbedding{
		loanDauHit(CategorySatKhi, "Thương Sát", 0.9),
		loanDauHit(CategoryTheDat, "Minh Đường Tụ Thủy", 0.7),
	}}
	provider := &fakeLLM{response: `{"best_choice": "Minh Đường Tụ Thủy"}`}
	o := newTestOrchestrator(repo, &fakeVatPhamRepo{}, provider)

	candidate, err := o.FindLoanDau(context.Background(), "trước nhà có hồ nước")

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Minh Đường Tụ Thủy", candidate.Name)
	assert.Equal(t, CategoryTheDat, candidate.Category)
	assert.Equal(t, MethodLLMRerank, candidate.Method)
}

func TestFindLoanDauRerankFailureFallsBackToTopScore(t *testing.T) {
	repo := &fakeLoanDauRepo{results: []*contract.ScoredLoanDauEmbedding{
		loanDauHit(CategorySatKhi, "Thương Sát", 0.9),
		loanDauHit(CategoryTheDat, "Minh Đường Tụ Thủy", 0.7),
	}}
	provider := &fakeLLM{err: errors.New("rate limited")}
	o := newTestOrchestrator(repo, &fakeVatPhamRepo{}, provider)

	candidate, err := o.FindLoanDau(context.Background(), "trước nhà có hồ nước")

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Thương Sát", candidate.Name)
	assert.Equal(t, MethodVectorSearch, candidate.Method)
}

func TestFindLoanDauRerankUnknownNameFallsBack(t *testing.T) {
	repo := &fakeLoanDauRepo{results: []*contract.ScoredLoanDauEmbedding{
		loanDauHit(CategorySatKhi, "Thương Sát", 0.9),
		loanDauHit(CategorySatKhi, "Liêm Trinh Sát", 0.6),
	}}
	provider := &fakeLLM{response: `{"best_choice": "Không Có Thật"}`}
	o := newTestOrchestrator(repo, &fakeVatPhamRepo{}, provider)

	candidate, err := o.FindLoanDau(context.Background(), "góc nhọn chĩa vào nhà")

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Thương Sát", candidate.Name)
	assert.Equal(t, MethodVectorSearch, candidate.Method)
}

func TestFindVatPhamUsesItemThreshold(t *testing.T) {
	repo := &fakeVatPhamRepo{results: []*contract.ScoredVatPhamEmbedding{
		{Embedding: &model.VatPhamEmbedding{EntryName: "Tỳ Hưu", Content: "chiêu tài"}, Similarity: 0.45},
	}}
	o := newTestOrchestrator(&fakeLoanDauRepo{}, repo, &fakeLLM{})

	// 0.45 clears the landform threshold but not the stricter item one.
	candidate, err := o.FindVatPham(context.Background(), "con vật gì đó")

	require.NoError(t, err)
	assert.Nil(t, candidate)
}

func TestFindVatPhamHit(t *testing.T) {
	repo := &fakeVatPhamRepo{results: []*contract.ScoredVatPhamEmbedding{
		{Embedding: &model.VatPhamEmbedding{EntryName: "Tỳ Hưu", Content: "chiêu tài"}, Similarity: 0.82},
	}}
	o := newTestOrchestrator(&fakeLoanDauRepo{}, repo, &fakeLLM{})

	candidate, err := o.FindVatPham(context.Background(), "tỳ hưu")

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Tỳ Hưu", candidate.Name)
	assert.Equal(t, CategoryVatPham, candidate.Category)
	assert.InDelta(t, 0.82, candidate.Score, 1e-9)
}
