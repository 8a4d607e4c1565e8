package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lumen-app/lumen/backend/internal/analytics"
	"github.com/lumen-app/lumen/backend/internal/config"
	"github.com/lumen-app/lumen/backend/internal/handlers"
	"github.com/lumen-app/lumen/backend/internal/logger"
	"github.com/lumen-app/lumen/backend/internal/middleware"
	"github.com/lumen-app/lumen/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting lumen API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port))

	weekStart, err := config.ParseWeekday(cfg.Analytics.WeekStart)
	if err != nil {
		return err
	}

	// Initialize services
	analyticsService := service.NewAnalyticsService(weekStart)
	insightService := service.NewInsightService(weekStart, insightConfig(cfg))

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightsHandler := handlers.NewInsightsHandler(insightService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analyticsGroup := v1.Group("/analytics")
		{
			analyticsGroup.POST("/aggregate", analyticsHandler.Aggregate)
			analyticsGroup.POST("/completion-rates", analyticsHandler.CompletionRates)
			analyticsGroup.POST("/trend", analyticsHandler.Trend)
			analyticsGroup.POST("/correlation", analyticsHandler.Correlation)
			analyticsGroup.POST("/moving-average", analyticsHandler.MovingAverage)
			analyticsGroup.POST("/summary", analyticsHandler.Summary)
		}

		insightsGroup := v1.Group("/insights")
		{
			insightsGroup.POST("/streaks", insightsHandler.Streaks)
			insightsGroup.POST("/predictive", insightsHandler.Predictive)
			insightsGroup.POST("/dashboard", insightsHandler.Dashboard)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// insightConfig maps the loaded configuration onto the engine's rule
// thresholds
func insightConfig(cfg *config.Config) analytics.Config {
	in := cfg.Analytics.Insights
	return analytics.Config{
		StreakRiskMinStreak:  in.StreakRiskMinStreak,
		StreakRiskWindow:     in.StreakRiskWindow,
		StreakRiskMaxMisses:  in.StreakRiskMaxMisses,
		StreakRiskConfidence: in.StreakRiskConfidence,

		PeakRateThreshold: in.PeakRateThreshold,
		PeakConfidence:    in.PeakConfidence,

		FormationMinDays:    in.FormationMinDays,
		FormationMaxDays:    in.FormationMaxDays,
		FormationConfidence: in.FormationConfidence,

		GoalProgressThreshold: in.GoalProgressThreshold,
		GoalConsistency:       in.GoalConsistency,
		GoalConfidence:        in.GoalConfidence,
	}
}
