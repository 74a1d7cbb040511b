package card

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Card is the credit-card value object validated before any gateway call.
type Card struct {
	Number      string
	Name        string
	ExpiryMonth int
	ExpiryYear  int
	CVC         string
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid card %s: %s", e.Field, e.Reason)
}

// Normalize strips spaces and dashes from the PAN.
func Normalize(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Luhn reports whether the number passes the Luhn mod-10 checksum.
func Luhn(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Validate checks the card fields, returning a descriptive error for the
// first problem found. Called before the network is touched.
func (c *Card) Validate(now time.Time) error {
	number := Normalize(c.Number)
	if number == "" {
		return &ValidationError{Field: "number", Reason: "is required"}
	}
	if len(number) < 12 || len(number) > 19 {
		return &ValidationError{Field: "number", Reason: "must be 12 to 19 digits"}
	}
	if !Luhn(number) {
		return &ValidationError{Field: "number", Reason: "failed checksum"}
	}
	brand := Detect(number)
	if brand == BrandUnknown {
		return &ValidationError{Field: "number", Reason: "unsupported card brand"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if c.ExpiryMonth < 1 || c.ExpiryMonth > 12 {
		return &ValidationError{Field: "expiry_month", Reason: "must be 1 to 12"}
	}
	if expired(c.ExpiryMonth, c.ExpiryYear, now) {
		return &ValidationError{Field: "expiry", Reason: "card has expired"}
	}
	if err := validateCVC(c.CVC, brand); err != nil {
		return err
	}
	return nil
}

// Brand returns the detected brand of the normalized PAN.
func (c *Card) Brand() Brand {
	return Detect(Normalize(c.Number))
}

// LastFour returns the trailing four digits of the normalized PAN.
func (c *Card) LastFour() string {
	number := Normalize(c.Number)
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}

// Mask renders the PAN as first six + last four with the middle elided,
// the only form allowed into the transaction log.
func Mask(number string) string {
	number = Normalize(number)
	if len(number) <= 10 {
		return strings.Repeat("*", len(number))
	}
	return number[:6] + strings.Repeat("*", len(number)-10) + number[len(number)-4:]
}

// Fingerprint derives the stored-card dedupe key from PAN and expiry.
func (c *Card) Fingerprint() string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s|%02d|%04d", Normalize(c.Number), c.ExpiryMonth, c.ExpiryYear))
	return hex.EncodeToString(h[:])
}

func expired(month, year int, now time.Time) bool {
	if year < 100 {
		year += 2000
	}
	if year < now.Year() {
		return true
	}
	if year > now.Year() {
		return false
	}
	return month < int(now.Month())
}

func validateCVC(cvc string, brand Brand) error {
	if cvc == "" {
		return &ValidationError{Field: "cvc", Reason: "is required"}
	}
	for _, r := range cvc {
		if r < '0' || r > '9' {
			return &ValidationError{Field: "cvc", Reason: "must be numeric"}
		}
	}
	want := 3
	if brand == BrandAmex {
		want = 4
	}
	if len(cvc) != want {
		return &ValidationError{Field: "cvc", Reason: fmt.Sprintf("must be %d digits", want)}
	}
	return nil
}
