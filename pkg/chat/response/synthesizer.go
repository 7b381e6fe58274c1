package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"phongthuy-chatbot-be/pkg/chat/state"
	"phongthuy-chatbot-be/pkg/llm"
)

// Canned replies. These never go through the LLM.
const (
	GreetingResponse = "Chào bạn, tôi là trợ lý phong thủy. Tôi có thể giúp gì cho bạn?"
	UnknownResponse  = "Xin lỗi, tôi chưa hiểu rõ yêu cầu của bạn. Bạn có thể hỏi về phân tích nhà cửa, xem tuổi, hoặc tra cứu vật phẩm phong thủy."
	NoDataResponse   = "Xin lỗi, tôi không tìm thấy dữ liệu phong thủy phù hợp với yêu cầu của bạn."
	FallbackResponse = "Xin lỗi, đã có lỗi xảy ra trong quá trình tạo câu trả lời. Vui lòng thử lại sau."
)

// Synthesizer turns a completed chat context into the final reply.
// Canned paths short-circuit; only real lookup results reach the LLM.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSynthesizer(llmProvider llm.LLMProvider, logger *log.Logger) *Synthesizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Synthesizer{llmProvider: llmProvider, logger: logger}
}

func (s *Synthesizer) Respond(ctx context.Context, cc *state.ChatContext, userMessage string) string {
	if cc.DirectResponse != "" {
		return cc.DirectResponse
	}

	switch cc.Intent {
	case state.IntentGreeting:
		return GreetingResponse
	case state.IntentUnknown:
		return UnknownResponse
	case state.IntentError:
		return FallbackResponse
	}

	if len(cc.YearCandidates) > 0 {
		return s.candidateQuestion(cc)
	}

	if len(cc.MissingInfo) > 0 {
		return s.missingInfoQuestion(cc)
	}

	digest := BuildDigest(cc)
	if digest == "" {
		return NoDataResponse
	}

	prompt := buildSynthesisPrompt(userMessage, digest)
	reply, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Printf("[ERROR] synthesis failed: %v", err)
		return FallbackResponse
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return FallbackResponse
	}
	return reply
}

func (s *Synthesizer) missingInfoQuestion(cc *state.ChatContext) string {
	labels := make([]string, len(cc.MissingInfo))
	for i, key := range cc.MissingInfo {
		labels[i] = state.MissingLabel(key)
	}
	return fmt.Sprintf("Để phân tích, tôi cần biết thêm thông tin về %s của bạn.", strings.Join(labels, ", "))
}

func (s *Synthesizer) candidateQuestion(cc *state.ChatContext) string {
	years := make([]string, len(cc.YearCandidates))
	for i, y := range cc.YearCandidates {
		years[i] = fmt.Sprintf("%d", y)
	}
	return fmt.Sprintf("Tuổi bạn nhắc đến ứng với nhiều năm sinh khác nhau (%s). Bạn sinh năm nào trong số này?", strings.Join(years, ", "))
}

func buildSynthesisPrompt(userMessage string, digest string) string {
	var prompt strings.Builder

	prompt.WriteString("Bạn là chuyên gia phong thủy, trả lời bằng tiếng Việt, giọng thân thiện và dễ hiểu.\n")
	prompt.WriteString("Chỉ dùng các dữ kiện dưới đây. KHÔNG bịa thêm thông tin.\n\n")
	prompt.WriteString("Câu hỏi của người dùng: ")
	prompt.WriteString(userMessage)
	prompt.WriteString("\n\nDữ kiện tra cứu được:\n")
	prompt.WriteString(digest)
	prompt.WriteString("\n\nHãy viết câu trả lời hoàn chỉnh, mạch lạc, nhắc đủ kết luận quan trọng và lời khuyên nếu có.")

	return prompt.String()
}
