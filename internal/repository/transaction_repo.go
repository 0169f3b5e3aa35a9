package repository

import (
	"linha-viva/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, t *model.Transaction) error
	FindAll(limit int) ([]model.Transaction, error)
	FindSince(since int64) ([]model.Transaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, t *model.Transaction) error {
	return pick(r.db, tx).Create(t).Error
}

// FindAll returns the log newest first. limit <= 0 means no limit.
func (r *transactionRepo) FindAll(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	q := r.db.Order("timestamp DESC").Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&transactions).Error
	return transactions, err
}

// FindSince returns movements at or after since (unix ms), oldest first.
func (r *transactionRepo) FindSince(since int64) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Where("timestamp >= ?", since).Order("timestamp ASC").Find(&transactions).Error
	return transactions, err
}
