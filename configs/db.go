package configs

import (
	"fmt"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant/entity"
	"restaurant/repository"
)

type Stores struct {
	Orders       repository.Store[entity.Order]
	Reservations repository.Store[entity.Reservation]
	Users        repository.Store[entity.User]

	db *gorm.DB
}

// Close releases the sqlite handle; the JSON backend holds nothing open.
func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func OpenStores(cfg *Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case StoreJSON:
		return &Stores{
			Orders:       repository.NewJSONStore(filepath.Join(cfg.DataDir, "orders.json"), repository.OrderKey),
			Reservations: repository.NewJSONStore(filepath.Join(cfg.DataDir, "reservations.json"), repository.ReservationKey),
			Users:        repository.NewJSONStore(filepath.Join(cfg.DataDir, "users.json"), repository.UserKey),
		}, nil

	case StoreSQLite:
		db, err := ConnectionDB(cfg.DBSource)
		if err != nil {
			return nil, err
		}
		if err := SetupDatabase(db); err != nil {
			return nil, err
		}
		return &Stores{
			Orders:       repository.NewGormStore(db, "token", repository.OrderKey),
			Reservations: repository.NewGormStore(db, "token", repository.ReservationKey),
			Users:        repository.NewGormStore(db, "email", repository.UserKey),
			db:           db,
		}, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func ConnectionDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single connection queues transactions instead of failing them
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Order{}, &entity.Reservation{}, &entity.User{})
}
