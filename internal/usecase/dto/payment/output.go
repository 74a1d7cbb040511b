package paymentdto

import "time"

type PurchaseOutput struct {
	Success     bool
	Reference   string
	ChargeToken string
	Message     string
	Code        string
	StoredCard  *StoredCardOutput
}

type RefundOutput struct {
	Success     bool
	Reference   string
	RefundToken string
	Message     string
	Code        string
}

type StoredCardOutput struct {
	Token       string
	Scheme      string
	LastFour    string
	ExpiryMonth int
	ExpiryYear  int
	AddedAt     time.Time
}
