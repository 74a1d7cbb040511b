package repository

import (
	"errors"
	"fmt"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

// Append inserts a new log row. The log is insert-only: there is no
// update or delete path on this repository.
func (r *DefaultTransactionRepository) Append(txn *domain.Transaction) error {
	txnModel := mappers.ToGORMTransaction(txn)
	if err := r.DB.Create(txnModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetByOrderID(orderID string) ([]*domain.Transaction, error) {
	var txnModels []models.TransactionModel
	if err := r.DB.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, nil
}

func (r *DefaultTransactionRepository) GetByCustomerID(customerID string, page, limit int64) ([]*domain.Transaction, int64, error) {
	var txnModels []models.TransactionModel
	var total int64

	baseQuery := r.DB.Model(&models.TransactionModel{}).
		Where("customer_id = ?", customerID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	txns := make([]*domain.Transaction, len(txnModels))
	for i, txnModel := range txnModels {
		txns[i] = mappers.ToDomainTransaction(&txnModel)
	}

	return txns, total, nil
}

func (r *DefaultTransactionRepository) GetByReference(reference string) (*domain.Transaction, error) {
	var txnModel models.TransactionModel
	if err := r.DB.First(&txnModel, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&txnModel), nil
}
