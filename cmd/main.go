package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-coordinator/docs"
	"github.com/SergeyBogomolovv/order-coordinator/internal/app"
	"github.com/SergeyBogomolovv/order-coordinator/internal/catalog"
	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/courier"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/internal/handler"
	"github.com/SergeyBogomolovv/order-coordinator/internal/postgres"
	"github.com/SergeyBogomolovv/order-coordinator/internal/repo"
	"github.com/SergeyBogomolovv/order-coordinator/internal/service"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/cache"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "order-coordinator",
	Short: "Coordinates food orders between customers, restaurants and couriers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the payment consumer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.New()
		logger := newLogger(conf.Env)
		if err := conf.Postgres.Validate(); err != nil {
			return fmt.Errorf("invalid postgres config: %w", err)
		}

		db, err := postgres.New(cmd.Context(), conf.Postgres)
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer db.Close()

		return postgres.Migrate(cmd.Context(), logger, db)
	},
}

// @title           Order Coordinator API
// @version         1.0
// @description     Order placement, payment confirmation, courier assignment and restaurant revenue
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		ExporterURL: conf.Tracing.ExporterURL,
		SampleRate:  conf.Tracing.SampleRate,
		ServiceName: conf.Tracing.ServiceName,
		Environment: conf.Env,
	})
	panicIfErr("failed to init tracing", err)
	defer shutdownTracing(context.Background())

	handler.RegisterMetrics()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, logger, db))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	menus := cache.NewLRUCache[string, entities.Menu](conf.Catalog.MenuCacheCapacity, conf.Catalog.MenuCacheTTL)

	catalogClient := catalog.NewClient(logger, conf.Catalog, menus)
	courierClient := courier.NewClient(logger, conf.Courier)

	orderService := service.NewOrderService(logger, txManager, orderRepo, catalogClient)
	deliveryService := service.NewDeliveryService(logger, orderRepo, courierClient)
	revenueService := service.NewRevenueService(logger, orderRepo)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, deliveryService, revenueService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(menus)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	return app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
