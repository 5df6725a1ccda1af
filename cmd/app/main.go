package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripflow/api"
	"tripflow/cmd"
	"tripflow/internal/adapters/out/memory"
	"tripflow/internal/adapters/out/postgres"
	"tripflow/internal/adapters/out/postgres/eventrepo"
	"tripflow/internal/core/domain/model/workflow"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	appLogger, logCloser := logger.Default(configs.LoggerOptions())
	defer logCloser.Close()
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	definition, err := loadWorkflow(configs.WorkflowFile)
	if err != nil {
		log.Fatalf("Error loading workflow: %v", err)
	}

	events, closeEvents, err := openEventLog(ctx, configs, appLogger)
	if err != nil {
		log.Fatalf("Error opening audit log: %v", err)
	}
	defer closeEvents.Close()

	app := cmd.NewCompositionRoot(
		configs,
		events,
		definition,
		clockwork.NewRealClock(),
		appLogger,
	)
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, appLogger)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; the environment may be set by the supervisor.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func loadWorkflow(path string) (workflow.Definition, error) {
	if path == "" {
		return workflow.DefaultDefinition(), nil
	}
	return workflow.LoadDefinitionFile(path)
}

// openEventLog picks PostgreSQL when DB_HOST is set and the in-memory log otherwise.
func openEventLog(ctx context.Context, configs cmd.Config, appLogger *slog.Logger) (ports.EventLog, io.Closer, error) {
	if !configs.UsesDatabase() {
		appLogger.Info("audit log kept in memory")
		return memory.NewEventLog(), closerFunc(func() error { return nil }), nil
	}

	db, err := postgres.Open(ctx, configs.DatabaseSettings(), appLogger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("postgres handle: %w", err)
	}

	appLogger.Info("audit log stored in postgres", "host", configs.DBHost, "database", configs.DBName)
	return eventrepo.NewGormEventRepository(db), sqlDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, appLogger *slog.Logger) {
	if _, err := api.Register(ctx); err != nil {
		log.Fatalf("Error loading API document: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	app.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	appLogger.Info("http server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	app.Close()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown", "error", err)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
