package connector

import "encoding/json"

// PaymentMethodData is the instrument a payment is made with.
type PaymentMethodData interface {
	isPaymentMethodData()
}

type CardPaymentMethod struct {
	Card Card `json:"card"`
}

type WalletPaymentMethod struct {
	Wallet WalletData `json:"-"`
}

type BankRedirectPaymentMethod struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

type PayLaterPaymentMethod struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

func (CardPaymentMethod) isPaymentMethodData()         {}
func (WalletPaymentMethod) isPaymentMethodData()       {}
func (BankRedirectPaymentMethod) isPaymentMethodData() {}
func (PayLaterPaymentMethod) isPaymentMethodData()     {}
