package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/zencommerce/trexle-payment-service/internal/domain"
	"github.com/zencommerce/trexle-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "payment_test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.TransactionModel{}, &models.OrderTokenModel{}, &models.StoredCardModel{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTransaction(orderID string, createdAt time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:           uuid.NewString(),
		Reference:    "txn_" + uuid.NewString(),
		CustomerID:   "cust-1",
		OrderID:      orderID,
		Action:       domain.ActionPurchase,
		Success:      true,
		ResponseCode: "201",
		ResponseText: "Transaction approved",
		GatewayTxnID: "charge_abc",
		AuthType:     "card",
		SentData:     `{"amount":1000}`,
		ReceivedData: `{"response":{}}`,
		SessionID:    "sess-1",
		CreatedAt:    createdAt,
	}
}

func TestTransactionAppendAndQuery(t *testing.T) {
	repo := NewDefaultTransactionRepository(newTestDB(t))

	first := newTransaction("order-1", time.Now().Add(-time.Minute))
	second := newTransaction("order-1", time.Now())
	if err := repo.Append(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(second); err != nil {
		t.Fatalf("append: %v", err)
	}

	txns, err := repo.GetByOrderID("order-1")
	if err != nil {
		t.Fatalf("get by order: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	if txns[0].Reference != second.Reference {
		t.Error("expected newest transaction first")
	}

	got, err := repo.GetByReference(first.Reference)
	if err != nil {
		t.Fatalf("get by reference: %v", err)
	}
	if got.GatewayTxnID != "charge_abc" || got.SentData != `{"amount":1000}` {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := repo.GetByReference("txn_missing"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("missing reference error = %v", err)
	}
}

func TestTransactionCustomerPagination(t *testing.T) {
	repo := NewDefaultTransactionRepository(newTestDB(t))

	for i := 0; i < 5; i++ {
		txn := newTransaction("order-x", time.Now().Add(time.Duration(i)*time.Second))
		if err := repo.Append(txn); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	txns, total, err := repo.GetByCustomerID("cust-1", 1, 2)
	if err != nil {
		t.Fatalf("get by customer: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(txns) != 2 {
		t.Errorf("page size = %d, want 2", len(txns))
	}
}

func TestOrderTokenLookup(t *testing.T) {
	repo := NewDefaultOrderTokenRepository(newTestDB(t))

	older := &domain.OrderToken{
		ID:        uuid.NewString(),
		OrderID:   "order-1",
		Token:     "charge_old",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &domain.OrderToken{
		ID:        uuid.NewString(),
		OrderID:   "order-1",
		Token:     "charge_new",
		CreatedAt: time.Now(),
	}
	if err := repo.Save(older); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(newer); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetLatestByOrderID("order-1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if got.Token != "charge_new" {
		t.Errorf("latest token = %q, want charge_new", got.Token)
	}

	byToken, err := repo.GetByToken("charge_old")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if byToken.OrderID != "order-1" {
		t.Errorf("order id = %q", byToken.OrderID)
	}

	if _, err := repo.GetLatestByOrderID("order-unknown"); !errors.Is(err, domain.ErrOrderTokenNotFound) {
		t.Errorf("unknown order error = %v", err)
	}
}

func newStoredCard(customerID, token, fingerprint string) *domain.StoredCard {
	return &domain.StoredCard{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		CustomerToken: token,
		CardToken:     "card_" + token,
		Scheme:        "visa",
		LastFour:      "4242",
		ExpiryMonth:   12,
		ExpiryYear:    2030,
		Fingerprint:   fingerprint,
		AddedAt:       time.Now(),
	}
}

func TestStoredCardUpsertDedupe(t *testing.T) {
	repo := NewDefaultStoredCardRepository(newTestDB(t))

	first, err := repo.Upsert(newStoredCard("cust-1", "token_a", "fp-1"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// same customer, same fingerprint: tokens refresh, row identity stays
	refreshed := newStoredCard("cust-1", "token_b", "fp-1")
	refreshed.ExpiryYear = 2032
	second, err := repo.Upsert(refreshed)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Error("dedupe should keep the original row")
	}
	if second.CustomerToken != "token_b" || second.ExpiryYear != 2032 {
		t.Errorf("tokens not refreshed: %+v", second)
	}

	cards, err := repo.ListByCustomerID("cust-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}

	// same fingerprint for another customer is a fresh row
	if _, err := repo.Upsert(newStoredCard("cust-2", "token_c", "fp-1")); err != nil {
		t.Fatalf("other customer insert: %v", err)
	}
}

func TestStoredCardTokenUniqueAcrossCustomers(t *testing.T) {
	repo := NewDefaultStoredCardRepository(newTestDB(t))

	if _, err := repo.Upsert(newStoredCard("cust-1", "token_a", "fp-1")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := repo.Upsert(newStoredCard("cust-2", "token_a", "fp-2"))
	if !errors.Is(err, domain.ErrDuplicateStoredCard) {
		t.Errorf("token collision error = %v, want ErrDuplicateStoredCard", err)
	}
}

func TestStoredCardDelete(t *testing.T) {
	repo := NewDefaultStoredCardRepository(newTestDB(t))

	if _, err := repo.Upsert(newStoredCard("cust-1", "token_a", "fp-1")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// another customer cannot delete the token
	if err := repo.Delete("cust-2", "token_a"); !errors.Is(err, domain.ErrStoredCardNotFound) {
		t.Errorf("cross-customer delete error = %v", err)
	}

	if err := repo.Delete("cust-1", "token_a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := repo.Delete("cust-1", "token_a"); !errors.Is(err, domain.ErrStoredCardNotFound) {
		t.Errorf("second delete error = %v", err)
	}

	cards, err := repo.ListByCustomerID("cust-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("got %d cards after delete, want 0", len(cards))
	}
}
