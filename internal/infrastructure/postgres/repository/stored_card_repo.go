package repository

import (
	"errors"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoredCardRepository struct {
	DB *gorm.DB
}

func NewDefaultStoredCardRepository(db *gorm.DB) *DefaultStoredCardRepository {
	return &DefaultStoredCardRepository{DB: db}
}

// Upsert inserts the stored card. When the customer already saved a card
// with the same fingerprint, the existing row keeps its identity and only
// the gateway tokens and expiry are refreshed.
func (r *DefaultStoredCardRepository) Upsert(card *domain.StoredCard) (*domain.StoredCard, error) {
	var existing models.StoredCardModel
	err := r.DB.
		Where("customer_id = ? AND fingerprint = ?", card.CustomerID, card.Fingerprint).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cardModel := mappers.ToGORMStoredCard(card)
		if err := r.DB.Create(cardModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, domain.ErrDuplicateStoredCard
			}
			return nil, err
		}
		return mappers.ToDomainStoredCard(cardModel), nil
	}

	updates := map[string]interface{}{
		"customer_token": card.CustomerToken,
		"card_token":     card.CardToken,
		"expiry_month":   card.ExpiryMonth,
		"expiry_year":    card.ExpiryYear,
	}
	if err := r.DB.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByCustomerToken(existing.CustomerID, card.CustomerToken)
}

func (r *DefaultStoredCardRepository) ListByCustomerID(customerID string) ([]*domain.StoredCard, error) {
	var cardModels []models.StoredCardModel
	if err := r.DB.
		Where("customer_id = ?", customerID).
		Order("added_at DESC").
		Find(&cardModels).Error; err != nil {
		return nil, err
	}

	cards := make([]*domain.StoredCard, len(cardModels))
	for i, cardModel := range cardModels {
		cards[i] = mappers.ToDomainStoredCard(&cardModel)
	}

	return cards, nil
}

func (r *DefaultStoredCardRepository) GetByCustomerToken(customerID, customerToken string) (*domain.StoredCard, error) {
	var cardModel models.StoredCardModel
	if err := r.DB.
		First(&cardModel, "customer_id = ? AND customer_token = ?", customerID, customerToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoredCardNotFound
		}
		return nil, err
	}

	return mappers.ToDomainStoredCard(&cardModel), nil
}

// Delete removes the card owned by customerID with the given token.
// A token belonging to another customer is indistinguishable from a
// missing one.
func (r *DefaultStoredCardRepository) Delete(customerID, customerToken string) error {
	result := r.DB.
		Where("customer_id = ? AND customer_token = ?", customerID, customerToken).
		Delete(&models.StoredCardModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrStoredCardNotFound
	}
	return nil
}
