package pgstore

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/poolwatch/dex-backend/internal/utils/config"
	"github.com/poolwatch/dex-backend/internal/utils/logger"
)

// New opens the postgres connection by gorm. Startup cannot proceed without
// a database, so a connection failure is fatal.
func New(appConfig *config.AppConfig, logger *logger.Logger) *gorm.DB {
	ds := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		appConfig.Postgres.Host,
		appConfig.Postgres.User,
		appConfig.Postgres.Pass,
		appConfig.Postgres.Name,
		appConfig.Postgres.Port,
		appConfig.Postgres.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(ds),
		&gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				SingularTable: false,
			},
		})
	if err != nil {
		logger.Fatal("failed to open database connection", map[string]string{
			"error": err.Error(),
		})
	}

	logger.Info("database connected")
	return db
}
