package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"llm-chatbot/internal/api"
	"llm-chatbot/internal/api/handlers"
	"llm-chatbot/internal/repository"
	"llm-chatbot/internal/service"
	"llm-chatbot/pkg/config"
	"llm-chatbot/pkg/database"
	"llm-chatbot/pkg/embedding"
	"llm-chatbot/pkg/llm"
	"llm-chatbot/pkg/logger"

	"go.uber.org/zap"
)

// @title LLM Support Chatbot API
// @version 1.0
// @description Support chatbot answering product, order and FAQ questions.

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting LLM support chatbot")

	// Initialize database
	ctx := context.Background()
	db, err := database.Open(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.NewSeeder(db, appLogger).EnsureChatLog(ctx); err != nil {
		appLogger.Fatal("Failed to prepare chat log table", zap.Error(err))
	}

	// Initialize repositories
	faqRepo := repository.NewFAQRepository(db, appLogger)
	chatLogRepo := repository.NewChatLogRepository(db, appLogger)
	queryRepo := repository.NewQueryRepository(db, appLogger)

	// Initialize model clients
	generator, closeGenerator, err := llm.New(&cfg.LLM, &cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize language model", zap.Error(err))
	}
	defer closeGenerator()

	embedder, err := embedding.New(&cfg.Embedding)
	if err != nil {
		appLogger.Fatal("Failed to initialize embedder", zap.Error(err))
	}

	// Build the FAQ index once
	faqs, err := faqRepo.List(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load FAQ entries", zap.Error(err))
	}
	faqIndex := service.NewFAQIndex(embedder, cfg.RAG.Threshold, appLogger)
	if err := faqIndex.Build(ctx, faqs); err != nil {
		appLogger.Fatal("Failed to build FAQ index", zap.Error(err))
	}

	sessions, closeSessions, err := service.NewSessionStore(&cfg.Session)
	if err != nil {
		appLogger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeSessions()

	// Initialize services
	chatService := service.NewChatService(
		faqIndex,
		service.NewIntentClassifier(generator, appLogger),
		service.NewSQLGenerator(generator, appLogger),
		service.NewQueryExecutor(queryRepo, appLogger),
		chatLogRepo,
		sessions,
		appLogger,
	)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	healthHandler := handlers.NewHealthHandler(db, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, healthHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
