package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mallmap/server/config"
	"mallmap/server/internal/api"
	"mallmap/server/internal/catalog"
	"mallmap/server/internal/cooldown"
	"mallmap/server/internal/database"
	"mallmap/server/internal/metrics"
	"mallmap/server/internal/middleware"
	"mallmap/server/internal/processor"
	"mallmap/server/internal/queue"
	"mallmap/server/internal/scheduler"
	"mallmap/server/internal/site"
	"mallmap/server/internal/tracking"
)

var (
	envFile  string
	outDir   string
	dataFile string
)

var rootCmd = &cobra.Command{
	Use:           "mallmap",
	Short:         "Directory of local-government online malls",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the catalog, region ranking and map as static files",
	RunE:  runBuild,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "mall catalog JSON file (overrides DATA_FILE)")
	buildCmd.Flags().StringVar(&outDir, "out", "dist", "output directory")

	rootCmd.AddCommand(serveCmd, buildCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// setup loads configuration, region shapes and the initial catalog
func setup() (*config.Config, *logrus.Logger, *catalog.Store, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	logger := newLogger(cfg.LogLevel)

	shapes, err := config.LoadRegionShapes(cfg.RegionsFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load region shapes: %w", err)
	}
	config.SetRegionShapes(shapes)

	store, err := catalog.LoadFile(cfg.DataFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	metrics.CatalogMalls.Set(float64(store.Len()))
	logger.WithFields(logrus.Fields{
		"file":    cfg.DataFile,
		"malls":   store.Len(),
		"regions": len(shapes),
	}).Info("Catalog loaded")

	return cfg, logger, store, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	_, logger, store, err := setup()
	if err != nil {
		return err
	}

	summary, err := site.NewBuilder(outDir, config.GetRegionShapes(), logger).Build(store)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "built %d malls, %d regions, %d files into %s\n",
		summary.Malls, summary.Regions, len(summary.Files), outDir)
	return nil
}

// openCooldownStore returns the configured store and a function releasing it
func openCooldownStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (cooldown.Store, func(), error) {
	if cfg.Cooldown.Backend == "redis" {
		client, err := cooldown.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		store := cooldown.NewRedisStore(client, cfg.Redis.Prefix)
		logger.WithField("addr", cfg.Redis.Addr).Info("Using Redis cooldown store")
		return store, func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close Redis client")
			}
		}, nil
	}

	store, err := cooldown.NewMemoryStore(cfg.Cooldown.MaxKeys, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using in-memory cooldown store")
	return store, store.Close, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, store, err := setup()
	if err != nil {
		return err
	}
	holder := catalog.NewHolder(store)

	logger.Infof("Using database at: %s", cfg.DatabasePath)
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cooldownStore, closeCooldown, err := openCooldownStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open cooldown store: %w", err)
	}
	defer closeCooldown()

	clickQueue := queue.NewClickQueue(cfg.BatchProcessing.QueueSize, cfg.BatchProcessing.MaxBatchSize, cfg.BatchWait(), logger)
	batchProcessor := processor.NewBatchProcessor(db.Gorm(), clickQueue, cfg, logger)
	batchProcessor.Start()

	guard := cooldown.NewGuard(cooldownStore, cfg.Cooldown.Window, logger)
	tracker := tracking.NewTracker(holder, guard, clickQueue, logger)

	reloader := scheduler.NewScheduler(func() (*catalog.Store, error) {
		return catalog.LoadFile(cfg.DataFile)
	}, holder, cfg.ReloadInterval, logger)
	reloader.Start()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	handler := api.NewHandler(holder, config.GetRegionShapes(), db, tracker, logger)
	api.SetupRoutes(router, handler, limiter, cfg.CORSOrigins)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := limiter.Cleanup(30 * time.Minute); n > 0 {
					logger.WithField("clients", n).Debug("Dropped idle rate limiters")
				}
			}
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-errCh:
		if err != nil {
			logger.WithError(err).Error("Server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server shutdown failed")
	}

	reloader.Stop()
	batchProcessor.Stop()
	logger.Info("Server stopped")
	return nil
}
