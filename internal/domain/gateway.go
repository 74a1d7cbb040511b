package domain

import "context"

// CardDetails is the raw card payload forwarded to the gateway.
// It never reaches storage; log sinks only ever see masked copies.
type CardDetails struct {
	Number          string
	CVC             string
	Name            string
	ExpiryMonth     int
	ExpiryYear      int
	AddressLine1    string
	AddressCity     string
	AddressState    string
	AddressPostcode string
	AddressCountry  string
}

type ChargeRequest struct {
	AmountMinor int64
	Currency    string
	Description string
	Email       string
	IPAddress   string

	// Exactly one of Card or CustomerToken is set.
	Card          *CardDetails
	CustomerToken string
}

// GatewayResult carries the fields every gateway call logs: a boolean
// success flag, the human-readable message and code extracted from the
// JSON envelope, and the raw payloads (request already masked).
type GatewayResult struct {
	Success       bool
	StatusMessage string
	Code          string
	RawRequest    string
	RawResponse   string
}

type ChargeResult struct {
	GatewayResult
	ChargeToken string
}

type RefundResult struct {
	GatewayResult
	RefundToken string
}

type CustomerResult struct {
	GatewayResult
	CustomerToken string
	CardToken     string
	Scheme        string
	LastFour      string
}

// Gateway is the outbound port to the payment API. Declines come back as
// Success=false results; a non-nil error means the call never completed.
type Gateway interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, chargeToken string, amountMinor int64) (*RefundResult, error)
	StoreCard(ctx context.Context, email string, card *CardDetails) (*CustomerResult, error)
	FetchCharge(ctx context.Context, chargeToken string) (*ChargeResult, error)
}
