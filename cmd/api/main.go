package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-report-service/config"
	"github.com/fekuna/omnipos-report-service/internal/report"
	"github.com/fekuna/omnipos-report-service/internal/schema"
	"github.com/fekuna/omnipos-report-service/internal/server"
	"github.com/fekuna/omnipos-report-service/pkg/broker"
	"github.com/fekuna/omnipos-report-service/pkg/cache"
	"github.com/fekuna/omnipos-report-service/pkg/database"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/fekuna/omnipos-report-service/pkg/middleware"

	catH "github.com/fekuna/omnipos-report-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-report-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-report-service/internal/category/usecase"

	invH "github.com/fekuna/omnipos-report-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-report-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-report-service/internal/inventory/usecase"

	reportH "github.com/fekuna/omnipos-report-service/internal/report/handler"
	reportListenerPkg "github.com/fekuna/omnipos-report-service/internal/report/listener"
	reportRepoPkg "github.com/fekuna/omnipos-report-service/internal/report/repository"
	reportUCPkg "github.com/fekuna/omnipos-report-service/internal/report/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Connect to Database
	db, err := database.NewDB(ctx, &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		Params:          cfg.Database.Params,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second,
		ConnectRetries:  3,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.String("db_name", cfg.Database.DBName),
	)

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(ctx, db, cfg.Database.Driver); err != nil {
			appLogger.Fatal("Could not apply schema", zap.Error(err))
		}
		appLogger.Info("Schema applied", zap.Strings("tables", schema.Tables))
	}

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewSQLRepository(db)
	invRepo := invRepoPkg.NewSQLRepository(db)
	reportRepo := reportRepoPkg.NewSQLRepository(db)

	// 5. Initialize Redis
	var reportCache report.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, &cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, reports will not be cached", zap.Error(err))
		} else {
			defer redisClient.Close()
			reportCache = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, invRepo, reportCache, reportUCPkg.Options{
		TopProductsLimit:  cfg.Report.TopProductsLimit,
		LeastSoldLimit:    cfg.Report.LeastSoldLimit,
		MostReturnedLimit: cfg.Report.MostReturnedLimit,
		MaxLimit:          cfg.Report.MaxLimit,
		CacheTTL:          cfg.Redis.TTL,
	}, appLogger)

	g, gctx := errgroup.WithContext(ctx)

	// 7. Initialize Kafka Listener
	if cfg.Kafka.Enabled && reportCache != nil {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("Kafka consumer started", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		reportListener := reportListenerPkg.NewReportListener(kafkaConsumer, reportUC, appLogger)
		g.Go(func() error {
			reportListener.Start(gctx)
			return nil
		})
	}

	// 8. Initialize Handlers
	reportHandler := reportH.NewReportHandler(reportUC, appLogger)
	routerOpts := server.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Pinger:         db,
		Root:           reportHandler.Welcome,
	}
	if cfg.Server.RateLimitRPS > 0 {
		routerOpts.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}
	router := server.NewRouter(routerOpts, appLogger,
		reportHandler,
		catH.NewCategoryHandler(catUC, appLogger),
		invH.NewInventoryHandler(invUC, appLogger),
	)

	// 9. Start Servers
	httpServer := server.NewHTTPServer(normalizePort(cfg.Server.HTTPPort), router, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	g.Go(func() error {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	grpcServer, healthServer := server.NewGRPCServer(appLogger)
	if cfg.Server.GRPCPort != "" {
		grpcPort := normalizePort(cfg.Server.GRPCPort)
		lis, err := net.Listen("tcp", grpcPort)
		if err != nil {
			appLogger.Fatal("failed to listen", zap.String("port", grpcPort), zap.Error(err))
		}
		g.Go(func() error {
			appLogger.Info("Starting gRPC health server", zap.String("port", grpcPort))
			return grpcServer.Serve(lis)
		})
	}

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
