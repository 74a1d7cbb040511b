package domain

type TransactionRepository interface {
	Append(txn *Transaction) error
	GetByOrderID(orderID string) ([]*Transaction, error)
	GetByCustomerID(customerID string, page, limit int64) ([]*Transaction, int64, error)
	GetByReference(reference string) (*Transaction, error)
}

type OrderTokenRepository interface {
	Save(token *OrderToken) error
	GetLatestByOrderID(orderID string) (*OrderToken, error)
	GetByToken(token string) (*OrderToken, error)
}

type StoredCardRepository interface {
	// Upsert inserts the card, or refreshes the gateway tokens when the
	// customer already stored a card with the same fingerprint.
	Upsert(card *StoredCard) (*StoredCard, error)
	ListByCustomerID(customerID string) ([]*StoredCard, error)
	GetByCustomerToken(customerID, customerToken string) (*StoredCard, error)
	Delete(customerID, customerToken string) error
}
