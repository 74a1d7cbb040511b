package paymentdto

type CardInput struct {
	Number          string
	Name            string
	CVC             string
	ExpiryMonth     int
	ExpiryYear      int
	AddressLine1    string
	AddressCity     string
	AddressState    string
	AddressPostcode string
	AddressCountry  string
}

type PurchaseInput struct {
	OrderID     string
	CustomerID  string
	SessionID   string
	Email       string
	IPAddress   string
	Amount      string
	Currency    string
	Description string

	// Card for a fresh PAN, StoredCardToken for a saved one.
	Card            *CardInput
	StoredCardToken string
	SaveCard        bool
}

type RefundInput struct {
	OrderID   string
	SessionID string
	Amount    string
	Currency  string
}

type StoreCardInput struct {
	CustomerID string
	SessionID  string
	Email      string
	Card       CardInput
}
