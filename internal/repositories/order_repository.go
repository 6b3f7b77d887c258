package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/javajoker/storefront-backend/internal/models"
)

// OrderRepository is an append-only order collection.
type OrderRepository interface {
	// List returns every order in insertion order. An absent store is
	// initialized empty rather than reported as an error.
	List(ctx context.Context) ([]models.Order, error)
	// Append persists one validated order at the end of the collection.
	Append(ctx context.Context, order models.Order) error
}

// RepositoryError wraps any persistence failure. Callers treat it as a
// server-side error; nothing is retried.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("order repository: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Err: err}
}

// MemoryStore keeps orders in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: []models.Order{}}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("list", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (s *MemoryStore) Append(ctx context.Context, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return wrap("append", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order.Clone())
	return nil
}
