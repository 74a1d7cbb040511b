package trexle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zencommerce/trexle-payment-service/internal/domain"
)

func testCard() *domain.CardDetails {
	return &domain.CardDetails{
		Number:      "4242424242424242",
		CVC:         "123",
		Name:        "Ada Lovelace",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
	}
}

func TestChargeSuccess(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody chargeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		gotAuth = user + ":" + pass
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"response":{"token":"charge_abc123","success":true,"amount":1000,"currency":"USD","status_message":"Transaction approved","captured":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.Charge(context.Background(), &domain.ChargeRequest{
		AmountMinor: 1000,
		Currency:    "USD",
		Email:       "ada@example.com",
		Card:        testCard(),
	})
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}

	if gotAuth != "sk_test_secret:" {
		t.Errorf("basic auth = %q, want secret key with blank password", gotAuth)
	}
	if gotPath != "POST /charges" {
		t.Errorf("path = %q, want POST /charges", gotPath)
	}
	if gotBody.Amount != 1000 || gotBody.Currency != "USD" {
		t.Errorf("request body amount/currency = %d/%q", gotBody.Amount, gotBody.Currency)
	}
	if gotBody.Card == nil || gotBody.Card.Number != "4242424242424242" {
		t.Error("full card number should be sent to the gateway")
	}

	if !result.Success {
		t.Error("expected success")
	}
	if result.ChargeToken != "charge_abc123" {
		t.Errorf("charge token = %q", result.ChargeToken)
	}
	if result.StatusMessage != "Transaction approved" {
		t.Errorf("status message = %q", result.StatusMessage)
	}
}

func TestChargeMasksLoggedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"response":{"token":"charge_abc","success":true}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.Charge(context.Background(), &domain.ChargeRequest{
		AmountMinor: 500,
		Currency:    "USD",
		Card:        testCard(),
	})
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}

	if strings.Contains(result.RawRequest, "4242424242424242") {
		t.Error("raw request kept for the log must not contain the full PAN")
	}
	if !strings.Contains(result.RawRequest, "424242******4242") {
		t.Errorf("raw request should contain the masked PAN, got %s", result.RawRequest)
	}
	if strings.Contains(result.RawRequest, `"cvc"`) {
		t.Error("raw request must not contain the cvc")
	}
}

func TestChargeDecline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"card_declined","detail":"The card was declined"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.Charge(context.Background(), &domain.ChargeRequest{
		AmountMinor: 1000,
		Currency:    "USD",
		Card:        testCard(),
	})
	if err != nil {
		t.Fatalf("a decline is a result, not an error: %v", err)
	}

	if result.Success {
		t.Error("expected decline")
	}
	if result.Code != "card_declined" {
		t.Errorf("code = %q, want card_declined", result.Code)
	}
	if result.StatusMessage != "The card was declined" {
		t.Errorf("message = %q", result.StatusMessage)
	}
}

func TestChargeErrorEnvelopeWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad_key", 5*time.Second)
	result, err := client.Charge(context.Background(), &domain.ChargeRequest{
		AmountMinor: 1000,
		Currency:    "USD",
		Card:        testCard(),
	})
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	if result.Success {
		t.Error("expected failure")
	}
	if result.StatusMessage != "unauthorized" {
		t.Errorf("message should fall back to the error code, got %q", result.StatusMessage)
	}
}

func TestRefund(t *testing.T) {
	var gotPath string
	var gotBody refundRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"response":{"token":"refund_xyz","charge":"charge_abc","amount":500,"status_message":"Pending"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.Refund(context.Background(), "charge_abc", 500)
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}

	if gotPath != "POST /charges/charge_abc/refunds" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Amount != 500 {
		t.Errorf("amount = %d, want 500", gotBody.Amount)
	}
	if !result.Success || result.RefundToken != "refund_xyz" {
		t.Errorf("result = %+v", result)
	}
}

func TestStoreCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers" {
			t.Errorf("path = %q, want /customers", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"response":{"token":"token_cust","email":"ada@example.com","card":{"token":"token_card","scheme":"visa","display_number":"XXXX-XXXX-XXXX-4242","expiry_month":12,"expiry_year":2030}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.StoreCard(context.Background(), "ada@example.com", testCard())
	if err != nil {
		t.Fatalf("StoreCard: %v", err)
	}

	if result.CustomerToken != "token_cust" || result.CardToken != "token_card" {
		t.Errorf("tokens = %q/%q", result.CustomerToken, result.CardToken)
	}
	if result.Scheme != "visa" {
		t.Errorf("scheme = %q", result.Scheme)
	}
	if result.LastFour != "4242" {
		t.Errorf("last four = %q, want 4242 from display number", result.LastFour)
	}
}

func TestFetchCharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/charges/charge_abc" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"response":{"token":"charge_abc","success":true,"status_message":"Transaction approved"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 5*time.Second)
	result, err := client.FetchCharge(context.Background(), "charge_abc")
	if err != nil {
		t.Fatalf("FetchCharge: %v", err)
	}
	if !result.Success || result.ChargeToken != "charge_abc" {
		t.Errorf("result = %+v", result)
	}
}

func TestTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "sk_test_secret", 500*time.Millisecond)
	_, err := client.Charge(context.Background(), &domain.ChargeRequest{
		AmountMinor: 1000,
		Currency:    "USD",
		Card:        testCard(),
	})
	if err == nil {
		t.Fatal("expected transport error")
	}
}
