package publisher

import "time"

type PaymentEvent struct {
	Reference   string    `json:"reference"`
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	Action      string    `json:"action"`
	Success     bool      `json:"success"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}
