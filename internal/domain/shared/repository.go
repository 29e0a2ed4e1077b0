package shared

import "context"

// Repository is the base interface for aggregate repositories.
// Delete returns the removed entity so callers can echo it back.
type Repository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) (*T, error)
}

// MutateFunc changes an entity loaded inside a transaction.
// Returning an error rolls the transaction back.
type MutateFunc[T any] func(entity *T) error

// Mutator loads an entity, applies fn and persists the result in one transaction
type Mutator[T any] interface {
	Update(ctx context.Context, id int64, fn MutateFunc[T]) (*T, error)
}
