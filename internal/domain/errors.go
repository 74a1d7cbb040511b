package domain

import "errors"

var (
	ErrStoredCardNotFound  = errors.New("stored card not found")
	ErrOrderTokenNotFound  = errors.New("order token not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateStoredCard = errors.New("card already stored for customer")
	ErrSessionNotFound     = errors.New("session not found")
	ErrGatewayDeclined     = errors.New("gateway declined the request")
)
