package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	publisher "github.com/zencommerce/trexle-payment-service/internal/infrastructure/kafka"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/zencommerce/trexle-payment-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	Purchase(ctx context.Context, input *paymentdto.PurchaseInput) (*paymentdto.PurchaseOutput, error)
	Refund(ctx context.Context, input *paymentdto.RefundInput) (*paymentdto.RefundOutput, error)

	StoreCard(ctx context.Context, input *paymentdto.StoreCardInput) (*paymentdto.StoredCardOutput, error)
	DeleteStoredCard(ctx context.Context, customerID, token string) error
	ListStoredCards(ctx context.Context, customerID string) ([]*paymentdto.StoredCardOutput, error)

	GetTransactionsByOrder(orderID string) ([]*domain.Transaction, error)
	GetTransactionsByCustomer(customerID string, page, limit int64) ([]*domain.Transaction, int64, error)
}

type DefaultPaymentUsecase struct {
	TxnRepo        domain.TransactionRepository
	OrderTokenRepo domain.OrderTokenRepository
	StoredCardRepo domain.StoredCardRepository
	Gateway        domain.Gateway
	Publisher      domain.PublisherPort
	Metrics        *metrics.PaymentMetrics
	Topic          string
}

func NewDefaultPaymentUsecase(
	txnRepo domain.TransactionRepository,
	orderTokenRepo domain.OrderTokenRepository,
	storedCardRepo domain.StoredCardRepository,
	gateway domain.Gateway,
	kafkaPublisher domain.PublisherPort,
	paymentMetrics *metrics.PaymentMetrics,
	topic string) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		TxnRepo:        txnRepo,
		OrderTokenRepo: orderTokenRepo,
		StoredCardRepo: storedCardRepo,
		Gateway:        gateway,
		Publisher:      kafkaPublisher,
		Metrics:        paymentMetrics,
		Topic:          topic,
	}
}

func newReference() (string, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}
	return "txn_" + idGenerator(), nil
}

var ErrInvalidAmount = errors.New("invalid amount")

// amountToMinorUnits converts a decimal amount string ("10.00") to
// integer minor units as the gateway expects.
func amountToMinorUnits(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, amount)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	minor := d.Mul(decimal.NewFromInt(100))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, amount)
	}
	return minor.IntPart(), nil
}

// publishEvent is fire-and-forget: a broker outage must never fail a
// checkout that the gateway already processed.
func (uc *DefaultPaymentUsecase) publishEvent(event publisher.PaymentEvent) {
	if uc.Publisher == nil {
		return
	}
	v, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal payment event", "order_id", event.OrderID, "error", err.Error())
		return
	}
	if err := uc.Publisher.Publish(uc.Topic, domain.Message{Key: []byte(event.OrderID), Value: v}); err != nil {
		slog.Error("failed to publish payment event", "order_id", event.OrderID, "error", err.Error())
	}
}

func (uc *DefaultPaymentUsecase) observeGateway(operation string, start time.Time, transportErr error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.GatewayDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if transportErr != nil {
		uc.Metrics.GatewayErrorsTotal.WithLabelValues(operation).Inc()
	}
}

func (uc *DefaultPaymentUsecase) countPayment(action domain.TransactionAction, success bool, currency string, amountMinor int64) {
	if uc.Metrics == nil {
		return
	}
	status := "declined"
	if success {
		status = "approved"
	}
	uc.Metrics.PaymentsTotal.WithLabelValues(string(action), status, currency).Inc()
	if success {
		uc.Metrics.PaymentAmountTotal.WithLabelValues(string(action), currency).Add(float64(amountMinor))
	}
}
