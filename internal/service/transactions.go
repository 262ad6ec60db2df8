// Package service implements the transaction operations of the API.
//
// Errors returned are one of *validate.Error, models.ErrResourceNotFound
// or models.ErrStorageUnavailable, or errors wrapping them.
package service

import (
	"context"

	"github.com/finance-visualizer/backend/internal/aggregate"
	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/store"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Transactions orchestrates validation and persistence of transactions.
type Transactions struct {
	store store.Store
}

// New returns the service for the given store.
func New(s store.Store) *Transactions {
	return &Transactions{store: s}
}

// List returns the transactions matching the filter, newest first.
func (s *Transactions) List(ctx context.Context, filter aggregate.Filter) ([]models.Transaction, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(list), nil
}

func (s *Transactions) Get(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	return s.store.Get(ctx, id)
}

// Create validates the payload and stores it as a new transaction.
func (s *Transactions) Create(ctx context.Context, p validate.Payload) (models.Transaction, error) {
	t, err := validate.Validate(p)
	if err != nil {
		return models.Transaction{}, err
	}

	created, err := s.store.Create(ctx, t)
	if err != nil {
		return models.Transaction{}, err
	}

	log.Debug().Str("id", created.ID.String()).Msg("created transaction")
	return created, nil
}

// Update replaces all fields of a transaction with the payload.
func (s *Transactions) Update(ctx context.Context, id uuid.UUID, p validate.Payload) (models.Transaction, error) {
	t, err := validate.Validate(p)
	if err != nil {
		return models.Transaction{}, err
	}

	return s.store.Update(ctx, id, t)
}

// Patch loads the transaction, lets apply overwrite the fields that
// should change and stores the result if it is valid.
func (s *Transactions) Patch(ctx context.Context, id uuid.UUID, apply func(*validate.Payload) error) (models.Transaction, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}

	p := validate.PayloadOf(existing)
	err = apply(&p)
	if err != nil {
		return models.Transaction{}, err
	}

	return s.Update(ctx, id, p)
}

func (s *Transactions) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	log.Debug().Str("id", id.String()).Msg("deleted transaction")
	return nil
}

// Summary aggregates all transactions. limit is the number of
// top categories and recent expenses.
func (s *Transactions) Summary(ctx context.Context, limit int) (aggregate.Summary, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return aggregate.Summary{}, err
	}

	return aggregate.Summarize(list, limit), nil
}

// Health reports whether the store is reachable.
func (s *Transactions) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}
