package usecase

import (
	"context"
	"time"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
	publisher "github.com/zencommerce/trexle-payment-service/internal/infrastructure/kafka"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

// Refund reverses a charge by order id. The order-token mapping resolves
// the charge token; an unknown order fails before any network call.
func (uc *DefaultPaymentUsecase) Refund(ctx context.Context, input *paymentdto.RefundInput) (*paymentdto.RefundOutput, error) {
	amountMinor, err := amountToMinorUnits(input.Amount)
	if err != nil {
		return nil, err
	}

	orderToken, err := uc.OrderTokenRepo.GetLatestByOrderID(input.OrderID)
	if err != nil {
		return nil, err
	}

	reference, err := newReference()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := uc.Gateway.Refund(ctx, orderToken.Token, amountMinor)
	uc.observeGateway("refund", start, err)
	if err != nil {
		uc.appendTransaction(&domain.Transaction{
			Reference:    reference,
			OrderID:      input.OrderID,
			Action:       domain.ActionRefund,
			Success:      false,
			ResponseText: err.Error(),
			GatewayTxnID: orderToken.Token,
			SessionID:    input.SessionID,
		})
		return nil, err
	}

	uc.appendTransaction(&domain.Transaction{
		Reference:    reference,
		OrderID:      input.OrderID,
		Action:       domain.ActionRefund,
		Success:      result.Success,
		ResponseCode: result.Code,
		ResponseText: result.StatusMessage,
		GatewayTxnID: orderToken.Token,
		SentData:     result.RawRequest,
		ReceivedData: result.RawResponse,
		SessionID:    input.SessionID,
	})

	uc.countPayment(domain.ActionRefund, result.Success, input.Currency, amountMinor)
	uc.publishEvent(publisher.PaymentEvent{
		Reference:   reference,
		OrderID:     input.OrderID,
		Action:      string(domain.ActionRefund),
		Success:     result.Success,
		AmountMinor: amountMinor,
		Currency:    input.Currency,
		OccurredAt:  time.Now(),
	})

	return &paymentdto.RefundOutput{
		Success:     result.Success,
		Reference:   reference,
		RefundToken: result.RefundToken,
		Message:     result.StatusMessage,
		Code:        result.Code,
	}, nil
}
