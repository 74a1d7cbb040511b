package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zencommerce/trexle-payment-service/internal/card"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	publisher "github.com/zencommerce/trexle-payment-service/internal/infrastructure/kafka"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

const (
	authTypeCard  = "card"
	authTypeToken = "token"
)

// Purchase charges the shopper for an order. Card validation happens
// before the gateway is touched: an invalid card produces a descriptive
// error and no transaction row. A gateway decline is logged and reported
// through the success flag, not as a Go error.
func (uc *DefaultPaymentUsecase) Purchase(ctx context.Context, input *paymentdto.PurchaseInput) (*paymentdto.PurchaseOutput, error) {
	amountMinor, err := amountToMinorUnits(input.Amount)
	if err != nil {
		return nil, err
	}

	chargeReq := &domain.ChargeRequest{
		AmountMinor: amountMinor,
		Currency:    input.Currency,
		Description: input.Description,
		Email:       input.Email,
		IPAddress:   input.IPAddress,
	}

	authType := authTypeCard
	switch {
	case input.StoredCardToken != "":
		stored, err := uc.StoredCardRepo.GetByCustomerToken(input.CustomerID, input.StoredCardToken)
		if err != nil {
			return nil, err
		}
		chargeReq.CustomerToken = stored.CustomerToken
		authType = authTypeToken
	case input.Card != nil:
		c := toCard(input.Card)
		if err := c.Validate(time.Now()); err != nil {
			if uc.Metrics != nil {
				uc.Metrics.ValidationFailTotal.Inc()
			}
			return nil, err
		}
		chargeReq.Card = toCardDetails(input.Card)
	default:
		return nil, errors.New("card details or stored card token required")
	}

	reference, err := newReference()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := uc.Gateway.Charge(ctx, chargeReq)
	uc.observeGateway("charge", start, err)
	if err != nil {
		uc.appendTransaction(&domain.Transaction{
			Reference:    reference,
			CustomerID:   input.CustomerID,
			OrderID:      input.OrderID,
			Action:       domain.ActionPurchase,
			Success:      false,
			ResponseText: err.Error(),
			AuthType:     authType,
			SessionID:    input.SessionID,
		})
		return nil, err
	}

	uc.appendTransaction(&domain.Transaction{
		Reference:    reference,
		CustomerID:   input.CustomerID,
		OrderID:      input.OrderID,
		Action:       domain.ActionPurchase,
		Success:      result.Success,
		ResponseCode: result.Code,
		ResponseText: result.StatusMessage,
		GatewayTxnID: result.ChargeToken,
		AuthType:     authType,
		SentData:     result.RawRequest,
		ReceivedData: result.RawResponse,
		SessionID:    input.SessionID,
	})

	output := &paymentdto.PurchaseOutput{
		Success:     result.Success,
		Reference:   reference,
		ChargeToken: result.ChargeToken,
		Message:     result.StatusMessage,
		Code:        result.Code,
	}

	if result.Success {
		if err := uc.OrderTokenRepo.Save(&domain.OrderToken{
			ID:        uuid.NewString(),
			OrderID:   input.OrderID,
			Token:     result.ChargeToken,
			CreatedAt: time.Now(),
		}); err != nil {
			slog.Error("failed to save order token", "order_id", input.OrderID, "error", err.Error())
		}

		if input.SaveCard && input.Card != nil {
			storedCard, err := uc.StoreCard(ctx, &paymentdto.StoreCardInput{
				CustomerID: input.CustomerID,
				SessionID:  input.SessionID,
				Email:      input.Email,
				Card:       *input.Card,
			})
			if err != nil {
				// the charge already went through, losing the save is acceptable
				slog.Error("failed to store card after purchase", "customer_id", input.CustomerID, "error", err.Error())
			} else {
				output.StoredCard = storedCard
			}
		}
	}

	uc.countPayment(domain.ActionPurchase, result.Success, input.Currency, amountMinor)
	uc.publishEvent(publisher.PaymentEvent{
		Reference:   reference,
		OrderID:     input.OrderID,
		CustomerID:  input.CustomerID,
		Action:      string(domain.ActionPurchase),
		Success:     result.Success,
		AmountMinor: amountMinor,
		Currency:    input.Currency,
		OccurredAt:  time.Now(),
	})

	return output, nil
}

func (uc *DefaultPaymentUsecase) appendTransaction(txn *domain.Transaction) {
	txn.ID = uuid.NewString()
	txn.CreatedAt = time.Now()
	if err := uc.TxnRepo.Append(txn); err != nil {
		slog.Error("failed to append transaction log", "reference", txn.Reference, "error", err.Error())
	}
}

func toCard(input *paymentdto.CardInput) *card.Card {
	return &card.Card{
		Number:      input.Number,
		Name:        input.Name,
		ExpiryMonth: input.ExpiryMonth,
		ExpiryYear:  input.ExpiryYear,
		CVC:         input.CVC,
	}
}

func toCardDetails(input *paymentdto.CardInput) *domain.CardDetails {
	return &domain.CardDetails{
		Number:          card.Normalize(input.Number),
		CVC:             input.CVC,
		Name:            input.Name,
		ExpiryMonth:     input.ExpiryMonth,
		ExpiryYear:      input.ExpiryYear,
		AddressLine1:    input.AddressLine1,
		AddressCity:     input.AddressCity,
		AddressState:    input.AddressState,
		AddressPostcode: input.AddressPostcode,
		AddressCountry:  input.AddressCountry,
	}
}
