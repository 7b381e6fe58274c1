package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"phongthuy-chatbot-be/pkg/llm"
)

// Reranker asks the LLM to pick the single best candidate for a query.
// Any failure falls back to the highest-scored candidate, so reranking
// can only improve the choice, never lose it.
type Reranker struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewReranker(llmProvider llm.LLMProvider, logger *log.Logger) *Reranker {
	if logger == nil {
		logger = log.Default()
	}
	return &Reranker{llmProvider: llmProvider, logger: logger}
}

type rerankChoice struct {
	BestChoice string `json:"best_choice"`
}

func (r *Reranker) Rerank(ctx context.Context, query string, candidates []Candidate) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	prompt := buildRerankPrompt(query, candidates)
	response, err := r.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.0),
		llm.WithJSONMode(),
	)
	if err != nil {
		r.logger.Printf("[WARN] rerank call failed, keeping top-scored candidate: %v", err)
		return topScored(candidates)
	}

	choice, err := parseRerankChoice(response)
	if err != nil {
		r.logger.Printf("[WARN] rerank output unusable, keeping top-scored candidate: %v", err)
		return topScored(candidates)
	}

	for i := range candidates {
		if strings.EqualFold(candidates[i].Name, choice) {
			r.logger.Printf("[Reranker] picked %q", candidates[i].Name)
			candidates[i].Method = MethodLLMRerank
			return &candidates[i]
		}
	}

	r.logger.Printf("[WARN] rerank picked unknown name %q, keeping top-scored candidate", choice)
	return topScored(candidates)
}

func buildRerankPrompt(query string, candidates []Candidate) string {
	var prompt strings.Builder

	prompt.WriteString("Người dùng mô tả: \"")
	prompt.WriteString(query)
	prompt.WriteString("\"\n\n")
	prompt.WriteString("Các khái niệm phong thủy có thể khớp:\n")
	for i, c := range candidates {
		prompt.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, c.Name, c.Content))
	}
	prompt.WriteString("\nChọn đúng MỘT khái niệm khớp nhất với mô tả của người dùng.\n")
	prompt.WriteString("Chỉ trả về JSON: {\"best_choice\": \"<tên khái niệm>\"}")

	return prompt.String()
}

func parseRerankChoice(response string) (string, error) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return "", fmt.Errorf("no JSON found in response")
	}

	var choice rerankChoice
	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), &choice); err != nil {
		return "", fmt.Errorf("JSON unmarshal failed: %w", err)
	}
	if strings.TrimSpace(choice.BestChoice) == "" {
		return "", fmt.Errorf("empty best_choice")
	}
	return strings.TrimSpace(choice.BestChoice), nil
}

func topScored(candidates []Candidate) *Candidate {
	best := &candidates[0]
	for i := range candidates[1:] {
		if candidates[i+1].Score > best.Score {
			best = &candidates[i+1]
		}
	}
	// The rerank stage did not decide; the vector score did.
	best.Method = MethodVectorSearch
	return best
}
