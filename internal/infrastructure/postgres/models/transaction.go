package models

import (
	"time"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

type TransactionModel struct {
	ID           string                   `gorm:"primaryKey;type:uuid"`
	Reference    string                   `gorm:"uniqueIndex:idx_txn_reference"`
	CustomerID   string                   `gorm:"index:idx_txn_customer"`
	OrderID      string                   `gorm:"index:idx_txn_order"`
	Action       domain.TransactionAction `gorm:"not null"`
	Success      bool                     `gorm:"not null"`
	ResponseCode string
	ResponseText string
	GatewayTxnID string `gorm:"index:idx_txn_gateway"`
	AuthType     string
	SentData     string `gorm:"type:text"`
	ReceivedData string `gorm:"type:text"`
	SessionID    string
	CreatedAt    time.Time `gorm:"index:idx_txn_created_at"`
}

func (TransactionModel) TableName() string {
	return "trexle_transactions"
}
