package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"property-dashboard/auth"
	"property-dashboard/common"
	"property-dashboard/mls"
	"property-dashboard/properties"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// defaultSources are the published master sheets the dashboard tracks
var defaultSources = []string{
	"https://raw.githubusercontent.com/coopergraddon/djdjmeetingmap/refs/heads/main/DJ%20DJ%20LLC%20Master%20Sheet(Completed).csv",
	"https://raw.githubusercontent.com/coopergraddon/djdjmeetingmap/refs/heads/main/DJ%20DJ%20LLC%20Master%20Sheet(Construction%20Stages).csv",
	"https://raw.githubusercontent.com/coopergraddon/djdjmeetingmap/refs/heads/main/DJ%20DJ%20LLC%20Master%20Sheet(Upcoming).csv",
}

func Migrate(db *gorm.DB) {
	common.AutoMigrateJobs(db)
}

func main() {
	// Initialize database for job history and metrics
	db := common.Init()
	Migrate(db)

	sqlDB, err := db.DB()
	if err != nil {
		log.Println("Failed to get sql.DB:", err)
	} else {
		defer sqlDB.Close()
	}

	// Setup Gin router
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.Use(common.MetricsMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authConfig := auth.Config{
		PasswordHash: os.Getenv("DASHBOARD_PASSWORD_HASH"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}
	if !authConfig.Enabled() {
		log.Println("Authentication disabled: DASHBOARD_PASSWORD_HASH or JWT_SECRET not set")
	}

	propertyServer := properties.NewServer(csvSources(), categoryMode())
	mlsServer := mls.NewServer(mls.NewClient(envOr("MLS_API_URL", "https://api-demo.mlsgrid.com/v2"), os.Getenv("MLS_API_KEY")))

	api := r.Group("/api")
	auth.NewServer(authConfig).RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(auth.Required(authConfig))
	propertyServer.RegisterRoutes(protected)
	mlsServer.RegisterRoutes(protected)

	// Scheduled re-ingestion of the remote sheets
	refresher := properties.NewRefresher(propertyServer, refreshInterval())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go refresher.Run(ctx)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func csvSources() []string {
	raw := os.Getenv("CSV_URLS")
	if raw == "" {
		return defaultSources
	}

	var sources []string
	for _, url := range strings.Split(raw, ",") {
		if url = strings.TrimSpace(url); url != "" {
			sources = append(sources, url)
		}
	}
	return sources
}

func categoryMode() properties.CategoryMode {
	if os.Getenv("CATEGORY_MODE") == "lenient" {
		return properties.CategoryLenient
	}
	return properties.CategoryStrict
}

func refreshInterval() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("REFRESH_INTERVAL_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
