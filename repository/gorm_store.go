package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one row per record. keyColumn is the lookup column
// (token for orders and reservations, email for users).
type GormStore[T any] struct {
	DB        *gorm.DB
	keyColumn string
	keyOf     func(T) string
}

func NewGormStore[T any](db *gorm.DB, keyColumn string, keyOf func(T) string) *GormStore[T] {
	return &GormStore[T]{DB: db, keyColumn: keyColumn, keyOf: keyOf}
}

func (s *GormStore[T]) byKey(tx *gorm.DB, key string) *gorm.DB {
	return tx.Where(clause.Eq{Column: clause.Column{Name: s.keyColumn}, Value: key})
}

func (s *GormStore[T]) Get(ctx context.Context, key string) (T, error) {
	var v T
	err := s.byKey(s.DB.WithContext(ctx), key).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return v, ErrNotFound
	}
	return v, err
}

func (s *GormStore[T]) Insert(ctx context.Context, v T) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := s.byKey(tx.Model(new(T)), s.keyOf(v)).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicate
		}
		return tx.Create(&v).Error
	})
}

func (s *GormStore[T]) ListAll(ctx context.Context) ([]T, error) {
	out := []T{}
	err := s.DB.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *GormStore[T]) Update(ctx context.Context, key string, fn func(*T) error) (T, error) {
	var out T
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v T
		if err := s.byKey(tx, key).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := fn(&v); err != nil {
			if errors.Is(err, ErrUnchanged) {
				out = v
				return nil
			}
			return err
		}
		if err := tx.Save(&v).Error; err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
