package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ujjwalbarange/mesa-pos/backend"
	adminController "github.com/ujjwalbarange/mesa-pos/controllers/admin"
	checkoutController "github.com/ujjwalbarange/mesa-pos/controllers/checkout"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/routes"
	"github.com/ujjwalbarange/mesa-pos/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting ordering gateway...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB (table carts + QR poster records)
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.TableCart{},
		&models.TableCartItem{},
		&models.QRPoster{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Upstream POS backend
	api := backend.NewHTTPClient(os.Getenv("BACKEND_BASE_URL"))

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-KDS-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Table QR posters
	uploadDir := os.Getenv("QR_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads/qrfiles"
	}
	publicBase := os.Getenv("PUBLIC_BASE_URL")
	if publicBase == "" {
		publicBase = "http://localhost:8080"
	}
	r.Static("/qrfiles", uploadDir)

	// KDS live feed + background board refresher
	hub := adminController.NewHub()
	refresher := adminController.NewRefresher(api, adminController.PollInterval, hub)
	refresher.Start(context.Background())
	defer refresher.Stop()

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		API:          api,
		Carts:        store.NewGormStore(db),
		QRs:          store.NewGormQRStore(db),
		CheckoutMode: checkoutController.ParseMode(os.Getenv("CHECKOUT_MODE")),
		Refresher:    refresher,
		Dashboard:    adminController.NewDashboard(),
		Hub:          hub,
		QRUploadDir:  uploadDir,
		PublicBase:   publicBase,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Gateway running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
