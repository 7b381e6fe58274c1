package response

import (
	"context"
	"errors"
	"testing"

	"phongthuy-chatbot-be/internal/model"
	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/chat/state"
	"phongthuy-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type fakeLLM struct {
	response   string
	err        error
	lastPrompt string
	called     bool
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.called = true
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.response, f.err
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestRespondGreeting(t *testing.T) {
	provider := &fakeLLM{}
	s := NewSynthesizer(provider, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentGreeting

	reply := s.Respond(context.Background(), cc, "chào bạn")

	assert.Equal(t, GreetingResponse, reply)
	assert.False(t, provider.called)
}

func TestRespondUnknown(t *testing.T) {
	s := NewSynthesizer(&fakeLLM{}, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentUnknown

	assert.Equal(t, UnknownResponse, s.Respond(context.Background(), cc, "blah"))
}

func TestRespondDirectResponseWins(t *testing.T) {
	s := NewSynthesizer(&fakeLLM{}, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentAnalyzeHouse
	cc.DirectResponse = "câu trả lời có sẵn"

	assert.Equal(t, "câu trả lời có sẵn", s.Respond(context.Background(), cc, "x"))
}

func TestRespondMissingInfoQuestion(t *testing.T) {
	provider := &fakeLLM{}
	s := NewSynthesizer(provider, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentAnalyzeHouse
	cc.Entities = state.ExtractedEntities{NamSinh1: intPtr(1990)}
	cc.ComputeMissing()

	reply := s.Respond(context.Background(), cc, "xem nhà cho tôi")

	assert.Equal(t, "Để phân tích, tôi cần biết thêm thông tin về giới tính, hướng nhà của bạn.", reply)
	assert.False(t, provider.called)
}

func TestRespondYearCandidatesQuestion(t *testing.T) {
	s := NewSynthesizer(&fakeLLM{}, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupNamSinh
	cc.MissingInfo = []string{state.KeyNamSinh1}
	cc.YearCandidates = []int{1984, 1996, 2008}
	cc.CandidateField = state.KeyNamSinh1

	reply := s.Respond(context.Background(), cc, "tuổi chuột")

	assert.Contains(t, reply, "1984, 1996, 2008")
	assert.Contains(t, reply, "Bạn sinh năm nào")
}

func TestRespondNoData(t *testing.T) {
	s := NewSynthesizer(&fakeLLM{}, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupLoanDau
	cc.Entities = state.ExtractedEntities{KeywordLoanDau: strPtr("thứ lạ")}

	assert.Equal(t, NoDataResponse, s.Respond(context.Background(), cc, "thứ lạ"))
}

func TestRespondSynthesizesFromDigest(t *testing.T) {
	provider := &fakeLLM{response: "Hướng Nam thuộc hành Hỏa, rất hợp với bạn."}
	s := NewSynthesizer(provider, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupDirection
	cc.Entities = state.ExtractedEntities{HuongNha: strPtr("Nam")}
	cc.SetResult(state.ResultHuong, &model.Huong{Tenhuong: "Nam", Hanhnguhanh: "Hỏa"})

	reply := s.Respond(context.Background(), cc, "hướng Nam hành gì")

	assert.Equal(t, "Hướng Nam thuộc hành Hỏa, rất hợp với bạn.", reply)
	assert.Contains(t, provider.lastPrompt, "Hướng Nam thuộc hành Hỏa.")
	assert.Contains(t, provider.lastPrompt, "hướng Nam hành gì")
}

func TestRespondFallbackOnLLMError(t *testing.T) {
	provider := &fakeLLM{err: errors.New("timeout")}
	s := NewSynthesizer(provider, nil)
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupDirection
	cc.SetResult(state.ResultHuong, &model.Huong{Tenhuong: "Nam", Hanhnguhanh: "Hỏa"})

	assert.Equal(t, FallbackResponse, s.Respond(context.Background(), cc, "x"))
}

func TestBuildDigestOmitsAbsentResults(t *testing.T) {
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentAnalyzeHouse
	cc.Entities = state.ExtractedEntities{GioiTinh1: strPtr("nam")}
	cc.SetResult(state.ResultMenh1, &model.Menh{Tenmenh: "Thổ", TinhchatNguhanh: "Nuôi dưỡng, ổn định"})

	digest := BuildDigest(cc)

	assert.Contains(t, digest, "Mệnh Thổ: Nuôi dưỡng, ổn định.")
	assert.NotContains(t, digest, "Bát trạch")
	assert.NotContains(t, digest, "Phi tinh")
}

func TestBuildDigestSearchMatchNamesMethod(t *testing.T) {
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupLoanDau
	cc.SetResult(state.ResultSearchMatch, &search.Candidate{
		Name:   "Minh Đường Tụ Thủy",
		Score:  0.73,
		Method: search.MethodLLMRerank,
	})

	digest := BuildDigest(cc)

	assert.Contains(t, digest, "Minh Đường Tụ Thủy")
	assert.Contains(t, digest, "xếp hạng lại bằng mô hình")

	cc2 := state.NewChatContext("s2")
	cc2.Intent = state.IntentLookupLoanDau
	cc2.SetResult(state.ResultSearchMatch, &search.Candidate{
		Name:   "Thương Sát",
		Score:  0.88,
		Method: search.MethodVectorSearch,
	})

	assert.Contains(t, BuildDigest(cc2), "tìm kiếm ngữ nghĩa")
}

func TestBuildDigestNamSinhGenderNote(t *testing.T) {
	cc := state.NewChatContext("s1")
	cc.Intent = state.IntentLookupNamSinh
	cc.SetResult(state.ResultMenh1, &model.Menh{Tenmenh: "Hỏa", TinhchatNguhanh: "Bốc đồng, lan tỏa"})

	digest := BuildDigest(cc)

	assert.Contains(t, digest, "chưa rõ giới tính")
}
