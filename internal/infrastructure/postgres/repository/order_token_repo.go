package repository

import (
	"errors"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderTokenRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderTokenRepository(db *gorm.DB) *DefaultOrderTokenRepository {
	return &DefaultOrderTokenRepository{DB: db}
}

func (r *DefaultOrderTokenRepository) Save(token *domain.OrderToken) error {
	tokenModel := mappers.ToGORMOrderToken(token)
	if err := r.DB.Create(tokenModel).Error; err != nil {
		return err
	}
	return nil
}

// GetLatestByOrderID returns the newest token issued for the order.
// An order refunded and re-paid carries more than one row.
func (r *DefaultOrderTokenRepository) GetLatestByOrderID(orderID string) (*domain.OrderToken, error) {
	var tokenModel models.OrderTokenModel
	if err := r.DB.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderTokenNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrderToken(&tokenModel), nil
}

func (r *DefaultOrderTokenRepository) GetByToken(token string) (*domain.OrderToken, error) {
	var tokenModel models.OrderTokenModel
	if err := r.DB.First(&tokenModel, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderTokenNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrderToken(&tokenModel), nil
}
