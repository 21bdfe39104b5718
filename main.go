package main

import (
	"PlateTrail/config/database"
	"PlateTrail/config/environment"
	"PlateTrail/middleware"
	"PlateTrail/pkg/logging"
	route "PlateTrail/routes/api"
	"PlateTrail/services"
	"PlateTrail/storage"
	"context"
	"log"
	"log/slog"
	"time"

	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using default values")
	}

	logging.Setup()

	ctx := context.Background()

	// Pick the storage backend: the local JSON file demo store or Firestore
	var store storage.Store
	var firebaseAuth *firebaseauth.Client

	switch backend := environment.GetStorageBackend(); backend {
	case "firestore":
		if err := database.InitFirebase(ctx); err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		store = storage.NewFirestoreStore(database.GetFirestoreClient())
		firebaseAuth = database.GetFirebaseAuthClient()
		slog.Info("using firestore backend")
	case "file":
		fileStore, err := storage.OpenFileStore(environment.GetDataFile())
		if err != nil {
			log.Fatalf("Failed to open data file: %v", err)
		}
		store = fileStore
		slog.Info("using file backend", "path", environment.GetDataFile())
	default:
		log.Fatalf("Unknown STORAGE_BACKEND: %s", backend)
	}
	defer store.Close()

	if err := storage.SeedRecommended(ctx, store); err != nil {
		log.Fatalf("Failed to seed recommended list: %v", err)
	}

	jwtSecret := environment.GetJWTSecret()
	if jwtSecret == "" {
		jwtSecret = "platetrail-dev-secret"
		slog.Warn("JWT_SECRET not set, using insecure development secret")
	}

	geocode := services.NewGeocodeService(environment.GetGeocodeBaseURL())

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	route.RegisterRoutes(r, store, firebaseAuth, geocode, jwtSecret)

	port := environment.GetPort()
	log.Println("🚀 Server running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
