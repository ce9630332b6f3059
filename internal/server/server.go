package server

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/poolwatch/dex-backend/internal/indexer"
	"github.com/poolwatch/dex-backend/internal/source"
	"github.com/poolwatch/dex-backend/internal/store"
	pgstore "github.com/poolwatch/dex-backend/internal/store/postgres"
	"github.com/poolwatch/dex-backend/internal/transport/http"
	"github.com/poolwatch/dex-backend/internal/txcache"
	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	if err := appConfig.Validate(); err != nil {
		logger.Fatal("invalid configuration", map[string]string{
			"error": err.Error(),
		})
	}

	db := pgstore.New(appConfig, logger)
	s := store.New()
	cache := txcache.New(snapshotTTL(appConfig.IndexPeriod))
	src := source.New(appConfig, logger)

	idx := indexer.New(db, s, cache, src, appConfig, logger)

	c := cron.New()
	c.AddFunc("@every "+appConfig.IndexPeriod, func() {
		if err := idx.IndexTransactions(); err != nil {
			logger.Error("scheduled index run failed", map[string]string{
				"error": err.Error(),
			})
		}
	})
	c.Start()

	// materialize the snapshot before the first scheduled run
	go func() {
		if err := idx.IndexTransactions(); err != nil {
			logger.Error("initial index run failed", map[string]string{
				"error": err.Error(),
			})
		}
	}()

	httpServer := http.NewHttpServer(appConfig, logger, db, s, cache)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}

// snapshotTTL keeps the cached list alive across a few missed index runs.
func snapshotTTL(indexPeriod string) time.Duration {
	period, err := time.ParseDuration(indexPeriod)
	if err != nil || period <= 0 {
		return 10 * time.Minute
	}
	return 5 * period
}
