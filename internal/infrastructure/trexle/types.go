package trexle

type cardPayload struct {
	Number          string `json:"number"`
	ExpiryMonth     int    `json:"expiry_month"`
	ExpiryYear      int    `json:"expiry_year"`
	CVC             string `json:"cvc,omitempty"`
	Name            string `json:"name"`
	AddressLine1    string `json:"address_line1,omitempty"`
	AddressCity     string `json:"address_city,omitempty"`
	AddressState    string `json:"address_state,omitempty"`
	AddressPostcode string `json:"address_postcode,omitempty"`
	AddressCountry  string `json:"address_country,omitempty"`
}

type chargeRequest struct {
	Amount        int64        `json:"amount"`
	Currency      string       `json:"currency"`
	Description   string       `json:"description,omitempty"`
	Email         string       `json:"email,omitempty"`
	IPAddress     string       `json:"ip_address,omitempty"`
	Card          *cardPayload `json:"card,omitempty"`
	CustomerToken string       `json:"customer_token,omitempty"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type customerRequest struct {
	Email string       `json:"email"`
	Card  *cardPayload `json:"card"`
}

type chargeResponse struct {
	Response struct {
		Token         string `json:"token"`
		Success       bool   `json:"success"`
		Amount        int64  `json:"amount"`
		Currency      string `json:"currency"`
		StatusMessage string `json:"status_message"`
		Captured      bool   `json:"captured"`
	} `json:"response"`
}

type refundResponse struct {
	Response struct {
		Token         string `json:"token"`
		ChargeToken   string `json:"charge"`
		Amount        int64  `json:"amount"`
		Currency      string `json:"currency"`
		StatusMessage string `json:"status_message"`
		// Success is null while the refund is pending gateway-side.
		Success *bool `json:"success"`
	} `json:"response"`
}

type customerResponse struct {
	Response struct {
		Token string `json:"token"`
		Email string `json:"email"`
		Card  struct {
			Token         string `json:"token"`
			Scheme        string `json:"scheme"`
			DisplayNumber string `json:"display_number"`
			ExpiryMonth   int    `json:"expiry_month"`
			ExpiryYear    int    `json:"expiry_year"`
		} `json:"card"`
	} `json:"response"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
