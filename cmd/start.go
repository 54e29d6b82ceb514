/*
Copyright © 2025 docusage
*/
package cmd

import (
	"context"
	"log"

	"github.com/docusage/docusage-be/config"
	"github.com/docusage/docusage-be/database"
	"github.com/docusage/docusage-be/handler"
	"github.com/docusage/docusage-be/middleware"
	"github.com/docusage/docusage-be/service"
	"github.com/docusage/docusage-be/types"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the knowledge base server",
	Long:  `Starts the HTTP server exposing ask, policy-check and ingestion endpoints`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := newDocumentStore(cfg)
		if err != nil {
			log.Fatalf("Failed to open document store: %v", err)
		}

		completion, err := newCompletionService(cfg)
		if err != nil {
			log.Fatalf("Failed to create completion service: %v", err)
		}

		// Initialize services
		timeout := cfg.CompletionTimeoutDuration()
		answerService := service.NewAnswerService(store, completion, timeout)
		complianceService := service.NewComplianceService(store, completion, timeout)
		ingestService := service.NewIngestService(store, recognizedSources(cfg))

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		askHandler := handler.NewAskHandler(answerService)
		complianceHandler := handler.NewComplianceHandler(complianceService)
		documentHandler := handler.NewDocumentHandler(store, ingestService)
		loginHandler := handler.NewLoginHandler(cfg.AdminPassword)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.RequestIDMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)
		apiV1.POST("/ask", askHandler.HandleAsk)
		apiV1.GET("/ask/suggestions", askHandler.HandleSuggestions)
		apiV1.POST("/policy-check", complianceHandler.HandlePolicyCheck)
		apiV1.GET("/documents", documentHandler.HandleList)
		apiV1.GET("/documents/:id", documentHandler.HandleGet)
		apiV1.GET("/sources", documentHandler.HandleSources)

		// Admin routes - require admin authentication
		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AdminAuthMiddleware)
		{
			adminRoutes.POST("/documents", documentHandler.HandleIngest)
			adminRoutes.PUT("/documents", documentHandler.HandleSeed)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func newDocumentStore(cfg *config.Config) (database.DocumentStore, error) {
	if cfg.StoreBackend == "mongo" {
		return database.NewMongoStore(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	}
	return database.NewFileStore(cfg.DataDir)
}

func newCompletionService(cfg *config.Config) (service.CompletionService, error) {
	if cfg.AIBackend == "gemini" {
		return service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model)
	}
	return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
}

func recognizedSources(cfg *config.Config) []types.Source {
	sources := make([]types.Source, 0, len(cfg.RecognizedSources))
	for _, s := range cfg.RecognizedSources {
		sources = append(sources, types.Source(s))
	}
	return sources
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
