package mappers

import (
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainOrderToken(model *models.OrderTokenModel) *domain.OrderToken {
	return &domain.OrderToken{
		ID:        model.ID,
		OrderID:   model.OrderID,
		Token:     model.Token,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMOrderToken(token *domain.OrderToken) *models.OrderTokenModel {
	return &models.OrderTokenModel{
		ID:        token.ID,
		OrderID:   token.OrderID,
		Token:     token.Token,
		CreatedAt: token.CreatedAt,
	}
}
