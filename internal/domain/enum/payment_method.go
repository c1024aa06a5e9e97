package enum

import (
	"fmt"
	"strings"
)

// PaymentMethod is how a payment was settled
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// PaymentMethods lists every method in report breakdown order
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodWallet,
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether m belongs to the closed set of methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodCash, PaymentMethodWallet:
		return true
	}
	return false
}

// Label returns the human readable name of the method
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodUPI:
		return "UPI"
	case "":
		return "All methods"
	default:
		return strings.ToUpper(string(m[:1])) + string(m[1:])
	}
}

// PaymentLabel is the label of the method a payment was settled with. A value
// outside the closed set, including an absent one, reads "Unknown".
func (m PaymentMethod) PaymentLabel() string {
	if !m.IsValid() {
		return "Unknown"
	}
	return m.Label()
}

// ParsePaymentMethod parses an optional method filter. The empty string means
// "all methods" and is returned as is.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == "" || m.IsValid() {
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}
