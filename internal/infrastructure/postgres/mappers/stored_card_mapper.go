package mappers

import (
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainStoredCard(model *models.StoredCardModel) *domain.StoredCard {
	return &domain.StoredCard{
		ID:            model.ID,
		CustomerID:    model.CustomerID,
		CustomerToken: model.CustomerToken,
		CardToken:     model.CardToken,
		Scheme:        model.Scheme,
		LastFour:      model.LastFour,
		ExpiryMonth:   model.ExpiryMonth,
		ExpiryYear:    model.ExpiryYear,
		Fingerprint:   model.Fingerprint,
		AddedAt:       model.AddedAt,
	}
}

func ToGORMStoredCard(card *domain.StoredCard) *models.StoredCardModel {
	return &models.StoredCardModel{
		ID:            card.ID,
		CustomerID:    card.CustomerID,
		CustomerToken: card.CustomerToken,
		CardToken:     card.CardToken,
		Scheme:        card.Scheme,
		LastFour:      card.LastFour,
		ExpiryMonth:   card.ExpiryMonth,
		ExpiryYear:    card.ExpiryYear,
		Fingerprint:   card.Fingerprint,
		AddedAt:       card.AddedAt,
	}
}
