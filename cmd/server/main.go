package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityviewer/internal/config"
	"cityviewer/internal/handler"
	"cityviewer/internal/repository"
	"cityviewer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("City Viewer Query Backend")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Build the building catalog
	catalog := loadCatalog(&cfg.Catalog)
	log.Printf("✅ Building catalog loaded (%d buildings)", catalog.Len())

	// Initialize the model client
	var llm service.LLMClient
	if cfg.LLM.Enabled {
		llm, err = service.NewLLMClient(context.Background(), &cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize model client: %v", err)
		}
		log.Printf("✅ Model client initialized: %s", llm.Name())
	} else {
		log.Println("⚠️  No model provider configured - queries will use the fallback response")
		log.Println("   Set GEMINI_API_KEY (or GOOGLE_API_KEY / OPENAI_API_KEY) to enable translation")
	}

	// Initialize services
	filterService := service.NewFilterService(llm)
	assistantService := service.NewAssistantService(llm)

	log.Println("✅ Services initialized")

	// Initialize handlers
	filterHandler := handler.NewFilterHandler(filterService, catalog)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	buildingsHandler := handler.NewBuildingsHandler(catalog)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Root status route
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "running",
			"service": "city-viewer-backend",
			"endpoints": []string{
				"/api/filter",
				"/api/filter/apply",
				"/api/summary",
				"/api/query",
				"/api/building-context",
				"/api/buildings",
			},
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "city-viewer-backend",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.POST("/filter", filterHandler.Filter)
		api.POST("/filter/apply", filterHandler.ApplyFilter)
		api.POST("/summary", assistantHandler.Summary)
		api.POST("/query", assistantHandler.Query)
		api.POST("/building-context", assistantHandler.BuildingContext)
		api.GET("/buildings", buildingsHandler.List)
		api.GET("/buildings/:id", buildingsHandler.Get)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

// loadCatalog assembles the building catalog from the configured sources:
// catalog file, then Overpass, then the built-in landmark set.
func loadCatalog(cfg *config.CatalogConfig) *repository.Catalog {
	if cfg.Path != "" {
		catalog, err := repository.LoadCatalogFile(cfg.Path)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.Path, err)
		}
		return catalog
	}

	if cfg.OverpassEnabled {
		loader := repository.NewOverpassLoader(cfg.OverpassURL, cfg.OverpassBBox, time.Duration(cfg.Timeout)*time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Second)
		defer cancel()

		raw, err := loader.Load(ctx)
		if err != nil {
			log.Printf("⚠️  Overpass load failed, falling back to built-in catalog: %v", err)
		} else {
			return repository.NewCatalog(raw)
		}
	}

	return repository.DefaultCatalog()
}
