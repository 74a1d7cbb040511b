package trexle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zencommerce/trexle-payment-service/internal/card"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

const DefaultAPIBase = "https://core.trexle.com/api/v1"

// Client talks to the Trexle REST API. Authentication is HTTP Basic with
// the API secret key as username and a blank password. Every call is a
// single attempt, there is no retry policy.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Charge(ctx context.Context, req *domain.ChargeRequest) (*domain.ChargeResult, error) {
	body := chargeRequest{
		Amount:        req.AmountMinor,
		Currency:      req.Currency,
		Description:   req.Description,
		Email:         req.Email,
		IPAddress:     req.IPAddress,
		CustomerToken: req.CustomerToken,
	}
	if req.Card != nil {
		body.Card = toCardPayload(req.Card)
	}

	status, raw, sent, err := c.do(ctx, http.MethodPost, "/charges", &body)
	if err != nil {
		return nil, err
	}

	result := &domain.ChargeResult{
		GatewayResult: newGatewayResult(status, raw, sent),
	}
	if result.Success {
		var decoded chargeResponse
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding charge response: %w", err)
		}
		result.ChargeToken = decoded.Response.Token
		result.StatusMessage = decoded.Response.StatusMessage
	}

	return result, nil
}

func (c *Client) Refund(ctx context.Context, chargeToken string, amountMinor int64) (*domain.RefundResult, error) {
	body := refundRequest{Amount: amountMinor}

	status, raw, sent, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/charges/%s/refunds", chargeToken), &body)
	if err != nil {
		return nil, err
	}

	result := &domain.RefundResult{
		GatewayResult: newGatewayResult(status, raw, sent),
	}
	if result.Success {
		var decoded refundResponse
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding refund response: %w", err)
		}
		result.RefundToken = decoded.Response.Token
		result.StatusMessage = decoded.Response.StatusMessage
	}

	return result, nil
}

func (c *Client) StoreCard(ctx context.Context, email string, details *domain.CardDetails) (*domain.CustomerResult, error) {
	body := customerRequest{
		Email: email,
		Card:  toCardPayload(details),
	}

	status, raw, sent, err := c.do(ctx, http.MethodPost, "/customers", &body)
	if err != nil {
		return nil, err
	}

	result := &domain.CustomerResult{
		GatewayResult: newGatewayResult(status, raw, sent),
	}
	if result.Success {
		var decoded customerResponse
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding customer response: %w", err)
		}
		result.CustomerToken = decoded.Response.Token
		result.CardToken = decoded.Response.Card.Token
		result.Scheme = decoded.Response.Card.Scheme
		result.LastFour = lastFour(decoded.Response.Card.DisplayNumber)
	}

	return result, nil
}

func (c *Client) FetchCharge(ctx context.Context, chargeToken string) (*domain.ChargeResult, error) {
	status, raw, sent, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/charges/%s", chargeToken), nil)
	if err != nil {
		return nil, err
	}

	result := &domain.ChargeResult{
		GatewayResult: newGatewayResult(status, raw, sent),
	}
	if result.Success {
		var decoded chargeResponse
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding charge response: %w", err)
		}
		result.ChargeToken = decoded.Response.Token
		result.StatusMessage = decoded.Response.StatusMessage
	}

	return result, nil
}

// do performs one request and returns the status code, the raw response
// body, and the masked request body kept for the transaction log.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (int, []byte, string, error) {
	var reqBody io.Reader
	var sent string
	if body != nil {
		requestBodyBytes, err := json.Marshal(body)
		if err != nil {
			return 0, nil, "", err
		}
		reqBody = bytes.NewBuffer(requestBodyBytes)
		sent = maskPayload(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return 0, nil, "", err
	}
	req.SetBasicAuth(c.SecretKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	response, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, sent, fmt.Errorf("gateway request failed: %w", err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, sent, err
	}

	return response.StatusCode, responseBodyBytes, sent, nil
}

func newGatewayResult(status int, raw []byte, sent string) domain.GatewayResult {
	result := domain.GatewayResult{
		RawRequest:  sent,
		RawResponse: string(raw),
	}
	if status >= 200 && status < 300 {
		result.Success = true
		result.Code = fmt.Sprintf("%d", status)
		return result
	}

	result.Code = fmt.Sprintf("%d", status)
	var decoded errorResponse
	if err := json.Unmarshal(raw, &decoded); err == nil {
		if decoded.Error != "" {
			result.Code = decoded.Error
		}
		if decoded.Detail != "" {
			result.StatusMessage = decoded.Detail
		} else {
			result.StatusMessage = decoded.Error
		}
	}
	if result.StatusMessage == "" {
		result.StatusMessage = fmt.Sprintf("gateway returned status %d", status)
	}
	return result
}

func toCardPayload(details *domain.CardDetails) *cardPayload {
	return &cardPayload{
		Number:          details.Number,
		ExpiryMonth:     details.ExpiryMonth,
		ExpiryYear:      details.ExpiryYear,
		CVC:             details.CVC,
		Name:            details.Name,
		AddressLine1:    details.AddressLine1,
		AddressCity:     details.AddressCity,
		AddressState:    details.AddressState,
		AddressPostcode: details.AddressPostcode,
		AddressCountry:  details.AddressCountry,
	}
}

// maskPayload serializes the request with the PAN masked and the CVC
// elided, so the transaction log never sees full card data.
func maskPayload(body interface{}) string {
	masked := func(p *cardPayload) *cardPayload {
		if p == nil {
			return nil
		}
		cp := *p
		cp.Number = card.Mask(cp.Number)
		cp.CVC = ""
		return &cp
	}

	var out interface{} = body
	switch v := body.(type) {
	case *chargeRequest:
		cp := *v
		cp.Card = masked(cp.Card)
		out = &cp
	case *customerRequest:
		cp := *v
		cp.Card = masked(cp.Card)
		out = &cp
	}

	b, err := json.Marshal(out)
	if err != nil {
		return ""
	}
	return string(b)
}

func lastFour(displayNumber string) string {
	digits := make([]byte, 0, len(displayNumber))
	for i := 0; i < len(displayNumber); i++ {
		if displayNumber[i] >= '0' && displayNumber[i] <= '9' {
			digits = append(digits, displayNumber[i])
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
