package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lojinha/internal/handlers"
	"lojinha/internal/models"
	"lojinha/internal/repositories"
	"lojinha/internal/services"
	"lojinha/internal/validation"
	"lojinha/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("APP_NAME", "lojinha-api")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "lojinha.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	appName := viper.GetString("APP_NAME")
	databaseURL := viper.GetString("DATABASE_URL")
	sqlitePath := viper.GetString("SQLITE_PATH")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Database ---
	// PostgreSQL when DATABASE_URL is set, local SQLite file otherwise.
	// TranslateError turns driver-specific failures into gorm.ErrDuplicatedKey
	// and friends, which the repositories rely on.
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Entity lifecycle events are best-effort: without a broker the API runs
	// with publishing disabled.
	var events services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for entity events...")
			consumerErr := mqClient.ConsumeEntityEvents(func(msg amqp.Delivery) error {
				log.Printf("Received entity event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, events)
	storeService := services.NewStoreService(storeRepo, userRepo, productRepo, events)
	productService := services.NewProductService(productRepo, storeRepo, events)

	// --- Handlers ---
	validate := validation.New()
	healthHandler := handlers.NewHealthHandler(appName)
	userHandler := handlers.NewUserHandler(userService, validate)
	storeHandler := handlers.NewStoreHandler(storeService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{AppName: appName})

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	// --- API Routes ---
	healthHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	storeHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
