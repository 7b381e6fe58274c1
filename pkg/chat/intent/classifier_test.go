package intent

import (
	"context"
	"errors"
	"testing"

	"phongthuy-chatbot-be/pkg/chat/state"
	"phongthuy-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM returns canned responses in order, then repeats the last one.
type scriptedLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	if s.errs != nil && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	return s.responses[idx], nil
}

func (s *scriptedLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return s.Generate(ctx, "", opts...)
}

func TestClassifyParsesIntentAndEntities(t *testing.T) {
	provider := &scriptedLLM{responses: []string{
		`{"intent": "ANALYZE_HOUSE", "entities": {"nam_sinh_1": 1990, "gioi_tinh_1": "nam", "huong_nha": "Đông Nam"}}`,
	}}
	classifier := NewClassifier(provider, nil)

	intent, entities, err := classifier.Classify(context.Background(), "nam 1990 xây nhà hướng Đông Nam")

	require.NoError(t, err)
	assert.Equal(t, state.IntentAnalyzeHouse, intent)
	require.NotNil(t, entities.NamSinh1)
	assert.Equal(t, 1990, *entities.NamSinh1)
	assert.Equal(t, "nam", *entities.GioiTinh1)
	assert.Equal(t, "Đông Nam", *entities.HuongNha)
	assert.Equal(t, 1, provider.calls)
}

func TestClassifyTrimsSurroundingProse(t *testing.T) {
	provider := &scriptedLLM{responses: []string{
		"Here is the result:\n" + `{"intent": "greeting", "entities": {}}` + "\nHope this helps!",
	}}
	classifier := NewClassifier(provider, nil)

	intent, _, err := classifier.Classify(context.Background(), "chào bạn")

	require.NoError(t, err)
	assert.Equal(t, state.IntentGreeting, intent)
}

func TestClassifyRetriesOnMalformedOutput(t *testing.T) {
	provider := &scriptedLLM{responses: []string{
		"no json at all",
		`{"intent": "LOOKUP_ITEM", "entities": {"vat_pham": "tỳ hưu"}}`,
	}}
	classifier := NewClassifier(provider, nil)

	intent, entities, err := classifier.Classify(context.Background(), "tỳ hưu là gì")

	require.NoError(t, err)
	assert.Equal(t, state.IntentLookupItem, intent)
	assert.Equal(t, "tỳ hưu", *entities.VatPham)
	assert.Equal(t, 2, provider.calls)
}

func TestClassifyFallsBackToUnknown(t *testing.T) {
	provider := &scriptedLLM{responses: []string{"garbage", "garbage", "garbage"}}
	classifier := NewClassifier(provider, nil)

	intent, _, err := classifier.Classify(context.Background(), "???")

	require.NoError(t, err)
	assert.Equal(t, state.IntentUnknown, intent)
	assert.Equal(t, 3, provider.calls)
}

func TestClassifyInvalidIntentValueIsUnknown(t *testing.T) {
	provider := &scriptedLLM{responses: []string{`{"intent": "MAKE_COFFEE", "entities": {}}`}}
	classifier := NewClassifier(provider, nil)

	intent, _, err := classifier.Classify(context.Background(), "pha cà phê")

	require.NoError(t, err)
	assert.Equal(t, state.IntentUnknown, intent)
}

func TestClassifyTransportFailureIsError(t *testing.T) {
	boom := errors.New("connection refused")
	provider := &scriptedLLM{
		responses: []string{"", "", ""},
		errs:      []error{boom, boom, boom},
	}
	classifier := NewClassifier(provider, nil)

	intent, _, err := classifier.Classify(context.Background(), "nhà hướng Nam")

	require.Error(t, err)
	assert.Equal(t, state.IntentError, intent)
	assert.Equal(t, 3, provider.calls)
}
