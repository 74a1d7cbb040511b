package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

// StoreCard tokenizes a card with the gateway and saves the tokens for
// later checkouts. A card the customer already stored (same fingerprint)
// refreshes the existing row instead of creating a duplicate.
func (uc *DefaultPaymentUsecase) StoreCard(ctx context.Context, input *paymentdto.StoreCardInput) (*paymentdto.StoredCardOutput, error) {
	c := toCard(&input.Card)
	if err := c.Validate(time.Now()); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.ValidationFailTotal.Inc()
		}
		return nil, err
	}

	reference, err := newReference()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := uc.Gateway.StoreCard(ctx, input.Email, toCardDetails(&input.Card))
	uc.observeGateway("store_card", start, err)
	if err != nil {
		uc.appendTransaction(&domain.Transaction{
			Reference:    reference,
			CustomerID:   input.CustomerID,
			Action:       domain.ActionStoreCard,
			Success:      false,
			ResponseText: err.Error(),
			AuthType:     authTypeCard,
			SessionID:    input.SessionID,
		})
		return nil, err
	}

	uc.appendTransaction(&domain.Transaction{
		Reference:    reference,
		CustomerID:   input.CustomerID,
		Action:       domain.ActionStoreCard,
		Success:      result.Success,
		ResponseCode: result.Code,
		ResponseText: result.StatusMessage,
		GatewayTxnID: result.CustomerToken,
		AuthType:     authTypeCard,
		SentData:     result.RawRequest,
		ReceivedData: result.RawResponse,
		SessionID:    input.SessionID,
	})

	if !result.Success {
		return nil, domain.ErrGatewayDeclined
	}

	scheme := result.Scheme
	if scheme == "" {
		scheme = string(c.Brand())
	}
	lastFour := result.LastFour
	if lastFour == "" {
		lastFour = c.LastFour()
	}

	stored, err := uc.StoredCardRepo.Upsert(&domain.StoredCard{
		ID:            uuid.NewString(),
		CustomerID:    input.CustomerID,
		CustomerToken: result.CustomerToken,
		CardToken:     result.CardToken,
		Scheme:        scheme,
		LastFour:      lastFour,
		ExpiryMonth:   input.Card.ExpiryMonth,
		ExpiryYear:    input.Card.ExpiryYear,
		Fingerprint:   c.Fingerprint(),
		AddedAt:       time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.StoredCardsCreated.Inc()
	}

	return toStoredCardOutput(stored), nil
}

// DeleteStoredCard drops the customer's saved token. Purely local: the
// gateway token is left to expire gateway-side.
func (uc *DefaultPaymentUsecase) DeleteStoredCard(ctx context.Context, customerID, token string) error {
	if err := uc.StoredCardRepo.Delete(customerID, token); err != nil {
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.StoredCardsDeleted.Inc()
	}
	return nil
}

func (uc *DefaultPaymentUsecase) ListStoredCards(ctx context.Context, customerID string) ([]*paymentdto.StoredCardOutput, error) {
	cards, err := uc.StoredCardRepo.ListByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*paymentdto.StoredCardOutput, len(cards))
	for i, stored := range cards {
		outputs[i] = toStoredCardOutput(stored)
	}

	return outputs, nil
}

func toStoredCardOutput(stored *domain.StoredCard) *paymentdto.StoredCardOutput {
	return &paymentdto.StoredCardOutput{
		Token:       stored.CustomerToken,
		Scheme:      stored.Scheme,
		LastFour:    stored.LastFour,
		ExpiryMonth: stored.ExpiryMonth,
		ExpiryYear:  stored.ExpiryYear,
		AddedAt:     stored.AddedAt,
	}
}
