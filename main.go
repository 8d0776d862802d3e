package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipebox/internal/handlers"
	"recipebox/internal/middleware"
	"recipebox/internal/repositories"
	"recipebox/internal/services"
	"recipebox/internal/storage"
	"recipebox/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Viper reads everything from environment variables, with local defaults.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "recipebox_dev_secret")
	viper.SetDefault("STORAGE_BACKEND", "badger") // badger | sqlite | postgres | memory
	viper.SetDefault("BADGER_PATH", "./data/recipebox")
	viper.SetDefault("DATABASE_DSN", "recipebox.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Open the key-value store ---
	store, closeStore, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}
	defer closeStore()

	// --- Initialize RabbitMQ client (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; event publishing disabled.")
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewKVUserRepository(store)
	sessionRepo := repositories.NewKVSessionRepository(store)
	recipeRepo := repositories.NewKVRecipeRepository(store)
	favoriteRepo := repositories.NewKVFavoriteRepository(store)
	preferenceRepo := repositories.NewKVPreferenceRepository(store)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, sessionRepo, jwtSecret)
	recipeService := services.NewRecipeService(recipeRepo, publisher)
	favoriteService := services.NewFavoriteService(favoriteRepo, publisher)
	preferenceService := services.NewPreferenceService(preferenceRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	scalesHandler := handlers.NewScalesHandler()

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	apiV1 := app.Group("/api/v1")

	// Public routes: authentication and the stateless scales conversion.
	authHandler.RegisterRoutes(apiV1)
	scalesHandler.RegisterRoutes(apiV1)

	// Protected routes (require JWT authentication).
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	recipeHandler.RegisterRoutes(protectedRoutes)
	favoriteHandler.RegisterRoutes(protectedRoutes)
	preferenceHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ consumer when a broker is configured ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for recipe events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received recipe event (Tag: %d, Type: %s): %s", msg.DeliveryTag, msg.Type, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeRecipeEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
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

// openStore builds the KeyValueStore selected by STORAGE_BACKEND and returns
// it together with its cleanup function.
func openStore() (storage.KeyValueStore, func(), error) {
	backend := viper.GetString("STORAGE_BACKEND")
	switch backend {
	case "badger":
		store, err := storage.NewBadgerStore(viper.GetString("BADGER_PATH"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Error closing badger store: %v", err)
			}
		}, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "postgres":
		db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want badger, sqlite, postgres, or memory)", backend)
		return nil, nil, nil
	}
}
