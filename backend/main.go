package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"skillshub/backend/config"
	"skillshub/backend/middleware"
	"skillshub/backend/notify"
	"skillshub/backend/routes"
	"skillshub/backend/scheduler"
	"skillshub/backend/services"
	"skillshub/backend/session"
	"skillshub/backend/store"
	"skillshub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Record + user + feedback storage
	var (
		records  store.RecordStore
		users    store.UserStore
		feedback store.FeedbackStore
	)
	switch cfg.StoreBackend {
	case "postgres":
		db, err := store.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		gs := store.NewGormStore(db)
		records, users, feedback = gs, gs, gs
	default:
		fs := store.NewFileStore(cfg.DataDir)
		records, users, feedback = fs, fs, fs
	}

	// Session registry
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	var registry session.Registry
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		registry = session.NewRedisRegistry(client, ttl)
	} else {
		registry = session.NewMemoryRegistry(ttl)
	}

	// Services
	enrollments := services.NewEnrollmentService(records)
	gateway := services.NewAuthGateway(registry)
	userService := services.NewUserService(users)
	feedbackService := services.NewFeedbackService(feedback)
	statsService := services.NewStatsService(enrollments, userService, feedbackService)
	notifier := notify.NewNotifier(cfg, logger)

	// Daily stats job
	cronJobs := scheduler.Start(statsService, logger)
	defer cronJobs.Stop()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, &routes.Deps{
		Cfg:         cfg,
		Enrollments: enrollments,
		Gateway:     gateway,
		Users:       userService,
		Feedback:    feedbackService,
		Stats:       statsService,
		Notifier:    notifier,
		Logger:      logger,
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
