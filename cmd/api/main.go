package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/auth"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/llm"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/core/store"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/catalog"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/handlers"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/repositories"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/services"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/server"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/utils"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/cmd/api/docs"
)

// @title EZCare AI API
// @version 1.0
// @description Health-guidance chat backend with marketing content, pricing and accounts
// @BasePath /api
func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InitLogger("info", "")
		log.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	utils.InitLogger(cfg.LogLevel, cfg.Env)
	utils.LogInfo("🚀 Starting ezcare-ai api", map[string]interface{}{
		"port":    cfg.Port,
		"env":     cfg.Env,
		"backend": cfg.StoreBackend,
	})

	// Init store
	var backend store.Store
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := database.NewDB(cfg.DatabaseURL, !cfg.IsProduction())
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to connect to database")
		}
		defer db.Close()
		backend = store.NewGormStore(db.GORM)
	default:
		backend = store.NewRESTStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Timeout)
	}
	backend = store.Instrument(backend)

	// Init LLM service
	llmService, err := llm.NewService(&llm.ProviderConfig{
		Type:        llm.ProviderType(cfg.LLMProvider),
		OpenAIKey:   cfg.OpenAIKey,
		GeminiKey:   cfg.GeminiKey,
		GroqKey:     cfg.GroqKey,
		DeepSeekKey: cfg.DeepSeekKey,
		ClaudeKey:   cfg.ClaudeKey,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize LLM service")
	}
	log.Info().Str("provider", llmService.GetProviderName()).Msg("🤖 LLM provider ready")

	// Load catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load catalog")
	}

	// Init repositories
	contentRepo := repositories.NewContentRepo(backend)
	planRepo := repositories.NewPlanRepo(backend)
	consultationRepo := repositories.NewConsultationRepo(backend)

	// Init services
	pricingService := services.NewPricingService(planRepo, cat.Pricing)
	chatService := services.NewChatService(llmService, consultationRepo, cat, cfg.ChatExposeLLMErrors)
	authService := auth.NewService(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Timeout)
	if cfg.ChatExposeLLMErrors {
		utils.LogWarn("⚠️ Completion errors are returned to callers", nil)
	}

	// Init handlers
	healthHandlers := &handlers.Handlers{
		Health:  handlers.NewHealthHandler(backend),
		Content: handlers.NewContentHandler(contentRepo),
		Pricing: handlers.NewPricingHandler(pricingService),
		Chat:    handlers.NewChatHandler(chatService, cat),
	}
	authHandler := auth.NewHandler(authService)

	// Init Fiber app
	app := server.NewApp(server.Options{
		AppName:        "EZCare AI API",
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group(cfg.APIPrefix)
	healthHandlers.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	go func() {
		log.Info().Msgf("✅ api running at :%s", cfg.Port)
		log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("❌ Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Graceful shutdown failed")
	}
}
