package domain

import "time"

// OrderToken maps a storefront order to the gateway charge token issued for it.
type OrderToken struct {
	ID        string
	OrderID   string
	Token     string
	CreatedAt time.Time
}
