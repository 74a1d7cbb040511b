package models

import "time"

type StoredCardModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	CustomerID    string `gorm:"index:idx_stored_card_customer;uniqueIndex:idx_stored_card_fingerprint"`
	CustomerToken string `gorm:"uniqueIndex:idx_stored_card_token"`
	CardToken     string
	Scheme        string
	LastFour      string
	ExpiryMonth   int
	ExpiryYear    int
	Fingerprint   string `gorm:"uniqueIndex:idx_stored_card_fingerprint"`
	AddedAt       time.Time
}

func (StoredCardModel) TableName() string {
	return "trexle_stored_cards"
}
