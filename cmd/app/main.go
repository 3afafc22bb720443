package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressing/cmd"
	"pressing/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	uowFactory, closeStorage, err := cmd.OpenStorage(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			logger.Error("Failed to close storage", "error", closeErr)
		}
	}()

	publisher := newPublisher(configs, logger)
	if publisher != nil {
		defer func() {
			_ = publisher.Close()
		}()
	}

	app := cmd.NewCompositionRoot(configs, uowFactory, publisher, logger)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// The .env file is optional: the environment alone is enough.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newPublisher(configs cmd.Config, logger *slog.Logger) *rabbitmq.Publisher {
	if configs.RabbitMQURL == "" {
		logger.Info("RABBITMQ_URL not set, broker notifications disabled")
		return nil
	}

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL, configs.RabbitMQExchange, logger)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	return publisher
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down web server", "error", err)
	}
}
