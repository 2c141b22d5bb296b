package entity

import "strings"

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCOD  PaymentMethod = "cod"
)

// ParsePaymentMethod falls back to card for anything that is not cash on delivery.
func ParsePaymentMethod(s string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cod", "cash_on_delivery", "cash-on-delivery", "cash on delivery":
		return PaymentCOD
	default:
		return PaymentCard
	}
}
