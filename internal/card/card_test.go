package card

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func validCard() Card {
	return Card{
		Number:      "4242424242424242",
		Name:        "Ada Lovelace",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVC:         "123",
	}
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"4242424242424242", true},
		{"4111111111111111", true},
		{"5555555555554444", true},
		{"378282246310005", true},
		{"6011111111111117", true},
		{"4242424242424241", false},
		{"1234567890123456", false},
		{"", false},
		{"42424242424242ab", false},
	}

	for _, tt := range tests {
		if got := Luhn(tt.number); got != tt.want {
			t.Errorf("Luhn(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		number string
		want   Brand
	}{
		{"4242424242424242", BrandVisa},
		{"4111111111111111", BrandVisa},
		{"4222222222222", BrandVisa},
		{"5555555555554444", BrandMastercard},
		{"5105105105105100", BrandMastercard},
		{"2223003122003222", BrandMastercard},
		{"378282246310005", BrandAmex},
		{"371449635398431", BrandAmex},
		{"30569309025904", BrandDiners},
		{"38520000023237", BrandDiners},
		{"6011111111111117", BrandDiscover},
		{"6011000990139424", BrandDiscover},
		{"3530111333300000", BrandJCB},
		{"3566002020360505", BrandJCB},
		{"6759649826438453", BrandMaestro},
		{"1234567890123456", BrandUnknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.number); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestValidateAcceptsKnownTestNumbers(t *testing.T) {
	numbers := []string{
		"4242424242424242",
		"4111 1111 1111 1111",
		"5555-5555-5555-4444",
		"6011111111111117",
		"3530111333300000",
	}

	for _, number := range numbers {
		c := validCard()
		c.Number = number
		if err := c.Validate(testNow); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", number, err)
		}
	}
}

func TestValidateAmexCVC(t *testing.T) {
	c := validCard()
	c.Number = "378282246310005"
	c.CVC = "1234"
	if err := c.Validate(testNow); err != nil {
		t.Fatalf("amex with 4-digit cvc: %v", err)
	}

	c.CVC = "123"
	if err := c.Validate(testNow); err == nil {
		t.Fatal("amex with 3-digit cvc should fail")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Card)
		field  string
	}{
		{"bad checksum", func(c *Card) { c.Number = "4242424242424241" }, "number"},
		{"too short", func(c *Card) { c.Number = "42424242424" }, "number"},
		{"unknown brand", func(c *Card) { c.Number = "1234567890123452" }, "number"},
		{"missing name", func(c *Card) { c.Name = " " }, "name"},
		{"month zero", func(c *Card) { c.ExpiryMonth = 0 }, "expiry_month"},
		{"month thirteen", func(c *Card) { c.ExpiryMonth = 13 }, "expiry_month"},
		{"expired year", func(c *Card) { c.ExpiryYear = 2024 }, "expiry"},
		{"expired month", func(c *Card) { c.ExpiryMonth = 2; c.ExpiryYear = 2026 }, "expiry"},
		{"missing cvc", func(c *Card) { c.CVC = "" }, "cvc"},
		{"alpha cvc", func(c *Card) { c.CVC = "12a" }, "cvc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)
			err := c.Validate(testNow)
			if err == nil {
				t.Fatal("expected validation error")
			}
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestValidateTwoDigitYear(t *testing.T) {
	c := validCard()
	c.ExpiryYear = 30
	if err := c.Validate(testNow); err != nil {
		t.Fatalf("two-digit future year: %v", err)
	}

	c.ExpiryYear = 25
	if err := c.Validate(testNow); err == nil {
		t.Fatal("two-digit past year should fail")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4242424242424242", "424242******4242"},
		{"378282246310005", "378282*****0005"},
		{"4111 1111 1111 1111", "411111******1111"},
		{"1234", "****"},
	}

	for _, tt := range tests {
		if got := Mask(tt.number); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestFingerprintStableUnderFormatting(t *testing.T) {
	a := validCard()
	b := validCard()
	b.Number = "4242 4242 4242 4242"
	b.CVC = "999"
	b.Name = "Different Name"

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("fingerprint should ignore formatting, cvc and name")
	}

	c := validCard()
	c.ExpiryYear = 2031
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("fingerprint should change with expiry")
	}
}

func TestLastFour(t *testing.T) {
	c := validCard()
	if got := c.LastFour(); got != "4242" {
		t.Errorf("LastFour() = %q, want 4242", got)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	c := validCard()
	c.Number = "4242424242424241"
	err := c.Validate(testNow)
	if err == nil || !strings.Contains(err.Error(), "number") {
		t.Fatalf("error should name the field, got %v", err)
	}
}
