package bootstrap

import (
	"log"
	"os"
	"time"

	"phongthuy-chatbot-be/internal/config"
	"phongthuy-chatbot-be/internal/controller"
	"phongthuy-chatbot-be/internal/pkg/logger"
	"phongthuy-chatbot-be/internal/repository/implementation"
	"phongthuy-chatbot-be/internal/repository/memory"
	"phongthuy-chatbot-be/internal/service"
	"phongthuy-chatbot-be/pkg/canchi"
	"phongthuy-chatbot-be/pkg/chat/intent"
	"phongthuy-chatbot-be/pkg/chat/response"
	"phongthuy-chatbot-be/pkg/chat/search"
	"phongthuy-chatbot-be/pkg/chat/state"
	"phongthuy-chatbot-be/pkg/chat/workflow"
	"phongthuy-chatbot-be/pkg/embedding"
	"phongthuy-chatbot-be/pkg/llm/factory"

	"gorm.io/gorm"
)

// Container holds every wired dependency of the application.
type Container struct {
	Logger         logger.ILogger
	ChatController controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	domainLog := log.New(os.Stdout, "", log.LstdFlags)

	// AI providers
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL, cfg.Ai.GroqAPIKey)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	// Repositories
	banMenhRepo := implementation.NewBanMenhRepository(db)
	batTrachRepo := implementation.NewBatTrachRepository(db)
	tuongTacRepo := implementation.NewTuongTacRepository(db)
	traCuuRepo := implementation.NewTraCuuRepository(db)
	loanDauRepo := implementation.NewLoanDauRepository(db)
	loanDauEmbRepo := implementation.NewLoanDauEmbeddingRepository(db)
	vatPhamEmbRepo := implementation.NewVatPhamEmbeddingRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// Chat pipeline
	searchConfig := search.Config{
		ItemThreshold:    cfg.Search.ItemThreshold,
		LoanDauThreshold: cfg.Search.LoanDauThreshold,
		TopK:             cfg.Search.TopK,
	}
	orchestrator := search.NewOrchestrator(embeddingProvider, loanDauEmbRepo, vatPhamEmbRepo, llmProvider, searchConfig, domainLog)

	tools := workflow.NewTools(
		banMenhRepo, batTrachRepo, tuongTacRepo, traCuuRepo, loanDauRepo,
		orchestrator,
		time.Duration(cfg.Search.ToolTimeoutSeconds)*time.Second,
		domainLog,
	)
	engine := workflow.NewEngine(tools, domainLog)

	classifier := intent.NewClassifier(llmProvider, domainLog)
	tracker := state.NewTracker(canchi.NewResolver(), domainLog)
	synthesizer := response.NewSynthesizer(llmProvider, domainLog)

	// Services
	chatService := service.NewChatService(sessionRepo, classifier, tracker, engine, synthesizer, appLogger)

	// Controllers
	chatController := controller.NewChatController(chatService)

	return &Container{
		Logger:         appLogger,
		ChatController: chatController,
	}
}
