// Package domain defines the order and webhook models of the payments backend.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyINR is the only currency orders are created in.
const CurrencyINR = "INR"

// minorUnitExponent is the number of decimal digits between a rupee and a paisa.
const minorUnitExponent = 2

const (
	receiptPrefix = "receipt_"
	guestUserID   = "guest"
)

// OrderRequest is what a client asks for. Amount is in major units (rupees).
type OrderRequest struct {
	Amount  int64 `validate:"gt=0"`
	Receipt string
	UserID  string
}

// ReceiptOrDefault returns the client receipt, or one derived from the user id
// ("receipt_<userId>", falling back to "receipt_guest").
func (r OrderRequest) ReceiptOrDefault() string {
	if r.Receipt != "" {
		return r.Receipt
	}
	if r.UserID != "" {
		return receiptPrefix + r.UserID
	}
	return receiptPrefix + guestUserID
}

// OrderResult is returned to the client after the provider accepted the order.
type OrderResult struct {
	OrderID        string
	PublishableKey string
}

// ProviderOrderRequest is the payload sent to the payment gateway. Amount is in
// minor units (paise).
type ProviderOrderRequest struct {
	Amount         int64
	Currency       string
	Receipt        string
	PaymentCapture bool
}

// ProviderOrder is the order as the gateway created it. Only ID is guaranteed.
type ProviderOrder struct {
	ID        string
	Amount    int64
	Currency  string
	Receipt   string
	Status    string
	CreatedAt time.Time
}

// ToMinorUnits converts a major-unit amount to minor units.
func ToMinorUnits(amount int64) int64 {
	return decimal.New(amount, minorUnitExponent).IntPart()
}
