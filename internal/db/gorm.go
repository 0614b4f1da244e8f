package db

import (
	"fmt"

	"dietracker/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm opens the gorm handle used by the food catalog table.
func OpenGorm(cfg config.PostgresConfig) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, ErrMissingDatabaseURL
	}

	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return gdb, nil
}

func CloseGorm(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
