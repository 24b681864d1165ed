package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/config"
	"github.com/justsurfingit/placement-portal/internal/database"
	"github.com/justsurfingit/placement-portal/internal/handlers"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/services"
	"google.golang.org/api/gmail/v1"
)

func main() {
	ctx := context.Background()

	// 1. Load configuration (.env, then the environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Database unavailable: ", err)
	}

	// 3. Optional integrations. The API runs without either.
	llmService, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("⚠️  Gemini disabled: %v", err)
		llmService = &services.LLMService{}
	} else if llmService.Enabled() {
		log.Println("✅ Gemini client ready.")
	}

	log.Println("Initializing Gmail Client...")
	var gmailService *gmail.Service
	gmailService, err = auth.GmailService(ctx, cfg.GmailCredentialsFile, cfg.GmailTokenFile)
	if err != nil {
		log.Printf("⚠️  Gmail disabled, notifications stay in-app: %v", err)
	} else {
		log.Println("✅ Gmail Service connected successfully.")
	}
	mailService := services.NewMailService(gmailService)

	// 4. Initialize Handlers
	h := handlers.New(db, llmService, mailService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Company-ID", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(corsConfig), handlers.RequestID(), metrics.Middleware())

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", metrics.Handler())
	if cfg.APIToken == "" {
		log.Println("⚠️  API_TOKEN is empty, /api is open")
	}
	h.Register(r.Group("/api", auth.RequireBearer(cfg.APIToken)))

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
