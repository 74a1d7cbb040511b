package card

import "regexp"

type Brand string

const (
	BrandUnknown    Brand = ""
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiners     Brand = "diners"
	BrandDiscover   Brand = "discover"
	BrandJCB        Brand = "jcb"
	BrandMaestro    Brand = "maestro"
)

// Brand patterns keyed to leading digit groups and length. Order matters:
// the first match wins, so narrower ranges come before maestro.
var brandPatterns = []struct {
	brand   Brand
	pattern *regexp.Regexp
}{
	{BrandVisa, regexp.MustCompile(`^4\d{12}(\d{3})?(\d{3})?$`)},
	{BrandMastercard, regexp.MustCompile(`^(5[1-5]\d{4}|677189|222[1-9]\d{2}|22[3-9]\d{3}|2[3-6]\d{4}|27[01]\d{3}|2720\d{2})\d{10}$`)},
	{BrandAmex, regexp.MustCompile(`^3[47]\d{13}$`)},
	{BrandDiners, regexp.MustCompile(`^3(0[0-5]|[68]\d)\d{11}$`)},
	{BrandDiscover, regexp.MustCompile(`^(6011|65\d{2}|64[4-9]\d)\d{12}$`)},
	{BrandJCB, regexp.MustCompile(`^35(28|29|[3-8]\d)\d{12}$`)},
	{BrandMaestro, regexp.MustCompile(`^(5[06-8]\d{2}|6\d{3})\d{8,15}$`)},
}

// Detect returns the brand of a normalized PAN, BrandUnknown if no
// pattern matches.
func Detect(number string) Brand {
	for _, p := range brandPatterns {
		if p.pattern.MatchString(number) {
			return p.brand
		}
	}
	return BrandUnknown
}
