package database

import (
	"fmt"

	"patient-registry/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresConnection(cfg config.DBConfig, gormConfig *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Single desk process; a tiny pool is plenty.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(2)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
