package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")

	// ErrUnchanged returned from an Update callback skips the write.
	ErrUnchanged = errors.New("record unchanged")
)

// Store is a keyed collection of records. Implementations serialize
// Update so concurrent read-modify-write cycles cannot lose writes.
type Store[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Insert(ctx context.Context, v T) error
	ListAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, key string, fn func(*T) error) (T, error)
}
