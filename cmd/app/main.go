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

	"laundromart/cmd"
	httpadapter "laundromart/internal/adapters/in/http"
	"laundromart/internal/adapters/out/postgres/hubrepo"
	"laundromart/internal/adapters/out/postgres/orderrepo"
	"laundromart/internal/adapters/out/postgres/profilerepo"
	"laundromart/internal/adapters/out/postgres/trackingrepo"
	"laundromart/internal/core/ports"
	"laundromart/internal/generated/servers"
	"laundromart/internal/jobs"
	"laundromart/internal/pkg/metrics"

	_ "laundromart/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cast"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&profilerepo.ProfileDTO{},
		&hubrepo.HubDTO{},
		&orderrepo.OrderDTO{},
		&trackingrepo.TrackingEventDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	metrics.Register()

	root := cmd.NewCompositionRoot(configs, gormDB)

	if err = root.SeedHubs(context.Background()); err != nil {
		log.Fatalf("Failed to seed hubs: %v", err)
	}

	logger := slog.Default()

	feed, err := root.CreateChangeFeed(logger)
	if err != nil {
		log.Fatalf("Failed to open change feed: %v", err)
	}
	defer feed.Close()

	jobManager := jobs.NewJobManager(
		root.CreateGetOrderStatsQueryHandler(),
		configs.StatsJobSchedule,
		feed,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, feed, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           cast.ToInt(envOrDefault("DB_PORT", "5432")),
		DBUser:           envOrDefault("DB_USER", "postgres"),
		DBPassword:       envOrDefault("DB_PASSWORD", "postgres"),
		DBName:           envOrDefault("DB_NAME", "laundromart"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		StatsJobSchedule: envOrDefault("STATS_JOB_SCHEDULE", "*/15 * * * * *"),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, feed ports.ChangeStream, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		root.CreateRegisterProfileCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateApproveOrderCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateClaimOrderCommandHandler(),
		root.CreateAssignDriverCommandHandler(),
		root.CreateAdvanceOrderCommandHandler(),
		root.CreateGetProfileQueryHandler(),
		root.CreateListOrdersForActorQueryHandler(),
		root.CreateGetOrderTrackingQueryHandler(),
		root.CreateGetHubsQueryHandler(),
		root.CreateGetOrderStatsQueryHandler(),
		feed,
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
