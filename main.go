package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"assettrack/cmd"
	"assettrack/internal/assets"
	"assettrack/internal/assettypes"
	"assettrack/internal/dashboard"
	"assettrack/internal/database"
	"assettrack/internal/employees"
	"assettrack/internal/operations"
	"assettrack/internal/reports"
	"assettrack/internal/repository"
	"assettrack/internal/users"
	"assettrack/pkg/auditlog"
	"assettrack/pkg/security"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Execute migration CMD
	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	if err := database.RunMigrations(db, dbURL, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewRepository(db)
	auditLog := auditlog.NewAuditLog(repo)
	assetsRepo := assets.NewRepository(repo)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	assets.NewAssetHandler(assetsRepo, auditLog).RegisterRoutes(router)
	assettypes.NewHandler(repo, assettypes.NewRepository(repo), auditLog).RegisterRoutes(router)
	employees.NewHandler(repo, employees.NewRepository(repo), auditLog).RegisterRoutes(router)
	operations.NewHandler(repo, operations.NewRepository(repo), assetsRepo, auditLog).RegisterRoutes(router)
	dashboard.NewHandler(dashboard.NewRepository(repo)).RegisterRoutes(router)
	reports.NewHandler(assetsRepo).RegisterRoutes(router)
	users.NewHandler(users.NewRepository(repo)).RegisterRoutes(router)
	security.NewLoginHandler(repo).RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
