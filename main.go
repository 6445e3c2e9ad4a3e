package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dahanu/internal/config"
	"dahanu/internal/handlers"
	"dahanu/internal/middleware"
	"dahanu/internal/models"
	"dahanu/internal/repositories"
	"dahanu/internal/services"
	"dahanu/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// The initial connection retries forever on a fixed delay; everything
	// downstream assumes the database eventually comes up.
	db := connectWithRetry(cfg.DSN(), 5*time.Second)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Vendor{},
		&models.Rider{},
		&models.Order{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ ---
	// The event bus is optional: a missing broker only disables eventing.
	var events services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
	} else {
		events = mqClient
		defer mqClient.Close()
	}

	// --- Repositories ---
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	vendorRepo := repositories.NewGORMVendorRepository(db)
	riderRepo := repositories.NewGORMRiderRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bannerRepo := repositories.NewGORMBannerRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	categoryService := services.NewCategoryService(categoryRepo)
	vendorService := services.NewVendorService(vendorRepo)
	riderService := services.NewRiderService(riderRepo)
	bannerService := services.NewBannerService(bannerRepo)
	dispatchService := services.NewDispatchService(orderRepo, events)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(categoryService, vendorService, bannerService)
	riderHandler := handlers.NewRiderHandler(riderService)
	orderHandler := handlers.NewOrderHandler(dispatchService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	catalogHandler.RegisterRoutes(api)
	riderHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	// Account surface behind the token check; dispatch endpoints stay open.
	profile := api.Group("/profile", middleware.AuthRequired(authService))
	profile.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"email":   c.Locals("email"),
			"role":    c.Locals("role"),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting order event consumer...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Order event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(handler); consumerErr != nil {
				log.Printf("Failed to start order event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// connectWithRetry dials the database on a fixed delay until it succeeds.
func connectWithRetry(dsn string, delay time.Duration) *gorm.DB {
	for {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("Connected to database successfully.")
			return db
		}
		log.Printf("Database initialization error: %v (retrying in %s)", err, delay)
		time.Sleep(delay)
	}
}
