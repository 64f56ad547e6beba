package database

import (
	"context"
	"fmt"

	"patient-registry/config"
	"patient-registry/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the store selected by cfg.Driver.
func NewConnection(cfg config.DBConfig, debug bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresConnection(cfg, gormConfig)
	case config.DriverSQLite, "":
		return NewSQLiteConnection(cfg, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Initialize creates the patients and specialists tables when missing and
// seeds the default specialists into an empty specialists table.
// Safe to call on every startup.
func Initialize(ctx context.Context, db *gorm.DB) (seeded int, err error) {
	if err := db.WithContext(ctx).AutoMigrate(&entity.Patient{}, &entity.Specialist{}); err != nil {
		return 0, fmt.Errorf("failed to create tables: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Specialist{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		active := true
		specialists := make([]entity.Specialist, len(entity.DefaultSpecialists))
		for i, name := range entity.DefaultSpecialists {
			specialists[i] = entity.Specialist{SpecialistName: name, IsActive: &active}
		}
		if err := tx.Create(&specialists).Error; err != nil {
			return err
		}
		seeded = len(specialists)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed specialists: %w", err)
	}

	return seeded, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
