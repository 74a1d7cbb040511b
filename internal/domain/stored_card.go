package domain

import "time"

// StoredCard keeps the gateway tokens for a card a customer opted to save.
// Only masked display data lives here, the PAN never touches storage.
type StoredCard struct {
	ID            string
	CustomerID    string
	CustomerToken string
	CardToken     string
	Scheme        string
	LastFour      string
	ExpiryMonth   int
	ExpiryYear    int
	Fingerprint   string
	AddedAt       time.Time
}
