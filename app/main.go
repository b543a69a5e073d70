package main

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"civilregistry/config"
	"civilregistry/services/registry/delivery"
	"civilregistry/services/registry/repository"
	"civilregistry/services/registry/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// No serving without a store.
	if err := config.PingDB(); err != nil {
		log.Fatalf("Database unreachable: %v", err)
		return
	}

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}

	timeout := config.GetRequestTimeout()

	authRepo := repository.NewAuthRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	authUC := usecase.NewAuthUseCase(authRepo, timeout)
	userUC := usecase.NewUserUseCase(userRepo, timeout)
	registrationUC := usecase.NewRegistrationUseCase(registrationRepo, timeout)
	requestUC := usecase.NewRequestUseCase(requestRepo, timeout)

	delivery.NewAuthHandler(app, authUC)
	delivery.NewUserHandler(app, userUC)
	delivery.NewRegistrationHandler(app, registrationUC)
	delivery.NewRequestHandler(app, requestUC)

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if err := config.PingDB(); err != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"app": config.GetAppName(),
			"db":  status,
		})
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	pool.Close()
	wg.Wait()
	log.Info("Server shut down gracefully")
}
