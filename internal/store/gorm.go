package store

import (
	"context"
	"fmt"

	"github.com/finance-visualizer/backend/internal/models"
	"github.com/finance-visualizer/backend/internal/validate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm stores transactions in an SQL database through gorm.
type Gorm struct {
	db *gorm.DB
}

var _ Store = &Gorm{}

// NewGorm returns a store using an already connected and migrated database.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// OpenSQLite connects to the SQLite database at dsn.
func OpenSQLite(dsn string) (*Gorm, error) {
	db, err := models.Connect(dsn)
	if err != nil {
		return nil, err
	}

	return NewGorm(db), nil
}

func (s *Gorm) List(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.db.WithContext(ctx).
		Order("julianday(transactions.date) DESC, julianday(transactions.created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, unavailable(err)
	}

	return transactions, nil
}

func (s *Gorm) Get(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	return transaction, nil
}

func (s *Gorm) Create(ctx context.Context, t validate.Transaction) (models.Transaction, error) {
	transaction := t.Model()

	err := s.db.WithContext(ctx).Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	return transaction, nil
}

func (s *Gorm) Update(ctx context.Context, id uuid.UUID, t validate.Transaction) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&transaction, "id = ?", id).Error
		if err != nil {
			return err
		}

		transaction.Amount = t.Amount
		transaction.Description = t.Description
		transaction.Category = t.Category
		transaction.Date = t.Date

		return tx.Save(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, unavailable(err)
	}

	return transaction, nil
}

func (s *Gorm) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return unavailable(result.Error)
	}

	if result.RowsAffected == 0 {
		return errNotFound()
	}

	return nil
}

func (s *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return unavailable(err)
	}

	return unavailable(sqlDB.PingContext(ctx))
}

func (s *Gorm) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}
