package usecase

import (
	"strings"
	"unicode"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// ValidateEmail checks basic address shape: one @ with a dotted domain part.
func ValidateEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

// ValidatePhone requires at least ten digits, ignoring separators.
func ValidatePhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}

// ValidateZip requires at least five non-space characters.
func ValidateZip(zip string) bool {
	return len(strings.TrimSpace(zip)) >= 5
}

// ValidateAddress collects field-level problems with a shipping address.
// A nil return means the address is acceptable.
func ValidateAddress(addr model.Address) *domainErrors.ValidationError {
	v := domainErrors.NewValidationError()
	if strings.TrimSpace(addr.Name) == "" {
		v.Add("name", "name is required")
	}
	if !ValidateEmail(addr.Email) {
		v.Add("email", "valid email is required")
	}
	if !ValidatePhone(addr.Phone) {
		v.Add("phone", "phone must contain at least 10 digits")
	}
	if strings.TrimSpace(addr.Line1) == "" {
		v.Add("line1", "address line is required")
	}
	if strings.TrimSpace(addr.City) == "" {
		v.Add("city", "city is required")
	}
	if strings.TrimSpace(addr.State) == "" {
		v.Add("state", "state is required")
	}
	if !ValidateZip(addr.Zip) {
		v.Add("zip", "zip must be at least 5 characters")
	}
	if v.Empty() {
		return nil
	}
	return v
}

// ValidatePaymentMethod accepts only the supported checkout methods.
func ValidatePaymentMethod(method model.PaymentMethod) bool {
	return method == model.PaymentMethodUPI || method == model.PaymentMethodCard
}
