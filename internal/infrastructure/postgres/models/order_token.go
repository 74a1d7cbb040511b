package models

import "time"

type OrderTokenModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"index:idx_order_token_order;uniqueIndex:idx_order_token_pair"`
	Token     string `gorm:"uniqueIndex:idx_order_token_pair"`
	CreatedAt time.Time
}

func (OrderTokenModel) TableName() string {
	return "trexle_order_tokens"
}
