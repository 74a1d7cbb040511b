package domain

import "time"

type TransactionAction string

const (
	ActionPurchase  TransactionAction = "PURCHASE"
	ActionRefund    TransactionAction = "REFUND"
	ActionStoreCard TransactionAction = "STORE_CARD"
)

// Transaction is a single row of the gateway call log.
// Rows are append-only: one per gateway call, never updated or deleted.
type Transaction struct {
	ID           string
	Reference    string
	CustomerID   string
	OrderID      string
	Action       TransactionAction
	Success      bool
	ResponseCode string
	ResponseText string
	GatewayTxnID string
	AuthType     string
	SentData     string
	ReceivedData string
	SessionID    string
	CreatedAt    time.Time
}
