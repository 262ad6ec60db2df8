// Package store persists transactions.
//
// Every implementation reports missing records with models.ErrResourceNotFound
// and every failure of the underlying database with models.ErrStorageUnavailable.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/google/uuid"
)

// Store is the persistence layer for transactions.
type Store interface {
	// List returns all transactions, newest date first.
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	// Create assigns a new ID and persists the transaction.
	Create(ctx context.Context, t validate.Transaction) (models.Transaction, error)
	// Update replaces all fields of the transaction with the given ID.
	Update(ctx context.Context, id uuid.UUID, t validate.Transaction) (models.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Ping checks that the database can be reached.
	Ping(ctx context.Context) error
	Close() error
}

// errNotFound is the error for operations on IDs that do not exist.
func errNotFound() error {
	return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
}

// unavailable wraps errors of the database so that they match
// models.ErrStorageUnavailable. Errors that already are part of
// the error taxonomy are returned unchanged.
func unavailable(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrStorageUnavailable) {
		return err
	}

	return fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
}
