// Package wire provides dependency injection for the yms application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/yms/internal/adapters/cli"
	"github.com/example/yms/internal/adapters/filesystem"
	"github.com/example/yms/internal/adapters/sqlite"
	"github.com/example/yms/internal/app"
	"github.com/example/yms/internal/config"
	"github.com/example/yms/internal/db"
	"github.com/example/yms/internal/logger"
	"github.com/example/yms/internal/ports/primary"
)

var (
	cfg          *config.Config
	labelService primary.LabelService
	configOnce   sync.Once
	once         sync.Once
)

// Config returns the configuration resolved from the working directory.
func Config() *config.Config {
	configOnce.Do(initConfig)
	return cfg
}

// LabelService returns the singleton LabelService instance.
func LabelService() primary.LabelService {
	once.Do(initServices)
	return labelService
}

// LabelAdapter returns a new LabelAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func LabelAdapter() *cliadapter.LabelAdapter {
	return LabelAdapterWithOutput(os.Stdout)
}

// LabelAdapterWithOutput returns a new LabelAdapter writing to the given output.
func LabelAdapterWithOutput(out io.Writer) *cliadapter.LabelAdapter {
	once.Do(initServices)
	return cliadapter.NewLabelAdapter(labelService, out)
}

// initConfig loads .yms/config.json and configures the root logger from it.
// YMS_LOG_LEVEL and YMS_LOG_FORMAT still win when set.
func initConfig() {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to get working directory")
	}

	loaded, err := config.Resolve(cwd)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to load config")
	}
	cfg = loaded

	opts := logger.FromEnv()
	if os.Getenv("YMS_LOG_LEVEL") == "" {
		opts.Level = cfg.LogLevel
	}
	if os.Getenv("YMS_LOG_FORMAT") == "" {
		opts.Format = cfg.LogFormat
	}
	logger.Init(opts)

	if cfg.DBPath != "" {
		db.SetPath(cfg.DBPath)
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()
	log := logger.Get()

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get home directory")
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get working directory")
	}

	catalog, err := config.NewCatalogLoader(home, cwd, c.DefaultDigitWidth).Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load categories")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	dbPath, err := db.GetDBPath()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve database path")
	}

	locker, err := filesystem.NewFileLocker(config.LockPath(dbPath))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create counter lock")
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	counterRepo := sqlite.NewCounterRepository(database)
	batchRepo := sqlite.NewBatchLogRepository(database)

	svc, err := app.NewLabelService(context.Background(), catalog, counterRepo, batchRepo, locker, app.LabelServiceOptions{
		MaxBatch: c.MaxBatch,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start label service")
	}
	labelService = svc
}
