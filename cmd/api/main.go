package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-agentic-assistant/config"
	"sales-agentic-assistant/internal/catalog"
	chatHTTP "sales-agentic-assistant/internal/chat/delivery/http"
	supabaseRepo "sales-agentic-assistant/internal/chat/repository/supabase"
	chatUC "sales-agentic-assistant/internal/chat/usecase"
	"sales-agentic-assistant/internal/httpserver"
	"sales-agentic-assistant/internal/retrieval"
	"sales-agentic-assistant/internal/router"
	"sales-agentic-assistant/pkg/datemath"
	"sales-agentic-assistant/pkg/llmprovider"
	"sales-agentic-assistant/pkg/log"
	"sales-agentic-assistant/pkg/openai"
	"sales-agentic-assistant/pkg/qdrant"
)

// @title       Sales Agentic Assistant API
// @description Conversational sales assistant with intent routing, document-grounded product Q&A and course recommendation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Sales Agentic Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 4. Date parser
	dates, err := datemath.NewParser(cfg.Chat.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Course catalog
	catalogStore := catalog.NewStore(logger, cfg.Chat.CatalogPath)
	if err := catalogStore.Load(ctx); err != nil {
		logger.Error(ctx, "Failed to load course catalog: ", err)
		return
	}

	// 6. Retrieval: embeddings + Qdrant indexes
	embedClient, err := openai.New(openai.Config{
		APIKey:            cfg.OpenAI.APIKey,
		EmbeddingModel:    cfg.OpenAI.EmbeddingModel,
		RequestsPerMinute: cfg.OpenAI.RequestsPerMinute,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create OpenAI embedding client: ", err)
		return
	}
	vectorStore := qdrant.NewClient(cfg.Qdrant.URL)

	indexer := retrieval.NewIndexer(logger, embedClient, vectorStore)
	if err := indexer.EnsureCourseIndex(ctx, catalogStore.Records()); err != nil {
		logger.Error(ctx, "Failed to build course index: ", err)
		return
	}
	documents, err := loadDocuments(cfg.Chat.DocumentsPath)
	if err != nil {
		logger.Error(ctx, "Failed to load product documents: ", err)
		return
	}
	if err := indexer.EnsureProductIndex(ctx, documents); err != nil {
		logger.Error(ctx, "Failed to build product document index: ", err)
		return
	}
	retriever := retrieval.New(logger, embedClient, vectorStore)

	// 7. Chat domain
	historyRepo := supabaseRepo.NewRepository(logger, supabaseRepo.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey))
	intentRouter := router.New(logger, llm)
	filterParser := catalog.NewParser(logger, llm)
	evaluator := catalog.NewEvaluator(dates)

	uc := chatUC.New(logger, llm, intentRouter, filterParser, evaluator, catalogStore, retriever, historyRepo)
	chatHandler := chatHTTP.New(logger, uc)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// loadDocuments reads the product document texts indexed at startup.
func loadDocuments(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents %s: %w", path, err)
	}
	var documents []string
	if err := json.Unmarshal(raw, &documents); err != nil {
		return nil, fmt.Errorf("decode documents %s: %w", path, err)
	}
	return documents, nil
}
