package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/db"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	ecoGrpc "liyu1981.xyz/ecotrack-service/pkg/grpc"
	ecoHttp "liyu1981.xyz/ecotrack-service/pkg/http"
	"liyu1981.xyz/ecotrack-service/pkg/notify"
)

const (
	shutdownTimeout    = 10 * time.Second
	limiterSweepPeriod = time.Minute
	limiterIdleAfter   = 10 * time.Minute
)

var envFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "ecotrack-server",
		Short:        "Carbon footprint and sustainability tracking service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment, skipped when missing")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC servers",
		RunE:  runServe,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the waste type reference data and exit",
		RunE:  runSeed,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*common.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return common.LoadConfig()
}

func openDB(cfg *common.Config) (*db.DB, error) {
	dialector, err := db.DialectorFor(cfg.DB)
	if err != nil {
		return nil, err
	}
	return db.GetInstance(dialector), nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer common.SyncLogger()

	dbInstance, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer dbInstance.Close()

	n, err := db.SeedWasteTypes(cmd.Context(), dbInstance.Conn)
	if err != nil {
		return err
	}
	common.GetLogger().Info("Seeded waste types", zap.Int("count", n))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer common.SyncLogger()

	logger := common.GetLogger()

	dbInstance, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer dbInstance.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if n, err := db.SeedWasteTypes(ctx, dbInstance.Conn); err != nil {
		logger.Warn("Failed to seed waste types", zap.Error(err))
	} else {
		logger.Info("Seeded waste types", zap.Int("count", n))
	}

	hub := notify.NewHub()
	defer hub.Close()

	publishers := notify.Fanout{hub}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := notify.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		logger.Info("Publishing notifications to kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	ecoCore := eco.New(*dbInstance, publishers, eco.ThresholdsFromConfig(cfg.Thresholds))

	limiterStore := eco.NewRateLimiterStore(rate.Limit(cfg.Limiter.Rate), cfg.Limiter.Burst)
	go sweepLimiters(ctx, limiterStore)

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		grpcServer = ecoGrpc.NewServer(&ecoGrpc.FootprintServer{
			Eco:              ecoCore,
			RateLimiterStore: limiterStore,
		})

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return err
		}
		logger.Info("Starting gRPC server on " + cfg.GrpcHostPort)
		go func() {
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
				stop()
			}
		}()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &ecoHttp.RestfulServer{
		Server:           gin.Default(),
		Eco:              ecoCore,
		RateLimiterStore: limiterStore,
		Hub:              hub,
		StaticDir:        cfg.StaticDir,
	}
	if cfg.AuthEnabled() {
		rs.Auth = ecoHttp.NewAuthenticator(cfg.Auth.JwtSecret, cfg.Auth.JwtIssuer)
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", cfg.Limiter.Rate),
		zap.Int("default_burst", cfg.Limiter.Burst),
		zap.Bool("jwt_auth", cfg.AuthEnabled()))

	httpServer := &http.Server{Addr: cfg.HttpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed to serve", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http server shutdown: %v", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	return nil
}

func sweepLimiters(ctx context.Context, store *eco.RateLimiterStore) {
	ticker := time.NewTicker(limiterSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(limiterIdleAfter); n > 0 {
				common.GetLogger().Debug("Swept idle rate limiters", zap.Int("count", n))
			}
		}
	}
}
