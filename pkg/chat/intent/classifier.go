package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"phongthuy-chatbot-be/pkg/chat/state"
	"phongthuy-chatbot-be/pkg/llm"
)

const defaultMaxRetries = 3

// classification is the raw JSON shape the model must return.
type classification struct {
	Intent   string                  `json:"intent"`
	Entities state.ExtractedEntities `json:"entities"`
}

// Classifier performs pure LLM-based intent classification and entity
// extraction. No database access happens here.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
	maxRetries  int
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	if logger == nil {
		logger = log.Default()
	}
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
		maxRetries:  defaultMaxRetries,
	}
}

// Classify analyzes one user message and returns its intent plus any
// entities mentioned in it. A model that keeps answering garbage yields
// UNKNOWN; a model that cannot be reached at all yields ERROR.
func (c *Classifier) Classify(ctx context.Context, message string) (state.Intent, state.ExtractedEntities, error) {
	prompt := buildClassificationPrompt(message)

	var lastErr error
	transportFailures := 0

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		response, err := c.llmProvider.Generate(ctx, prompt,
			llm.WithTemperature(0.0),
			llm.WithJSONMode(),
		)
		if err != nil {
			transportFailures++
			lastErr = err
			c.logger.Printf("[Classifier] attempt %d/%d failed: %v", attempt, c.maxRetries, err)
			continue
		}

		parsed, err := c.parse(response)
		if err != nil {
			lastErr = err
			c.logger.Printf("[Classifier] attempt %d/%d returned malformed output: %v", attempt, c.maxRetries, err)
			continue
		}

		c.logger.Printf("[Classifier] resolved intent %s", parsed.Intent)
		return state.Intent(parsed.Intent), parsed.Entities, nil
	}

	// Every attempt died on the wire: the model is unreachable, not confused.
	if transportFailures == c.maxRetries {
		return state.IntentError, state.ExtractedEntities{}, fmt.Errorf("llm unreachable after %d attempts: %w", c.maxRetries, lastErr)
	}

	c.logger.Printf("[Classifier] giving up after %d attempts, falling back to UNKNOWN: %v", c.maxRetries, lastErr)
	return state.IntentUnknown, state.ExtractedEntities{}, nil
}

func (c *Classifier) parse(response string) (*classification, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var parsed classification
	if err := json.Unmarshal([]byte(jsonContent), &parsed); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	parsed.Intent = strings.ToUpper(strings.TrimSpace(parsed.Intent))
	if !state.Intent(parsed.Intent).IsValid() {
		return nil, fmt.Errorf("unknown intent value %q", parsed.Intent)
	}

	return &parsed, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}
