package connector

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"unicode/utf8"

	"github.com/goliatone/go-connectors/core"
)

// WalletData is a wallet payload. Each variant decides whether it carries a
// token.
type WalletData interface {
	walletToken() (string, error)
}

type GooglePayWalletData struct {
	PMType           string                     `json:"type"`
	Description      string                     `json:"description"`
	Info             GooglePayPaymentMethodInfo `json:"info"`
	TokenizationData GpayTokenizationData       `json:"tokenization_data"`
}

type GooglePayPaymentMethodInfo struct {
	CardNetwork string `json:"card_network"`
	CardDetails string `json:"card_details"`
}

type GpayTokenizationData struct {
	TokenType string `json:"type"`
	Token     string `json:"token"`
}

type ApplePayWalletData struct {
	// PaymentData is the base64 encoded payment token.
	PaymentData           string                `json:"payment_data"`
	PaymentMethod         ApplepayPaymentMethod `json:"payment_method"`
	TransactionIdentifier string                `json:"transaction_identifier"`
}

type ApplepayPaymentMethod struct {
	DisplayName string `json:"display_name"`
	Network     string `json:"network"`
	PMType      string `json:"type"`
}

type PaypalSdkData struct {
	Token string `json:"token"`
}

type (
	PaypalRedirection    struct{}
	AliPayRedirection    struct{}
	WeChatPayRedirection struct{}
	GooglePayRedirect    struct{}
	ApplePayRedirect     struct{}
)

type MbWayRedirection struct {
	TelephoneNumber Secret `json:"telephone_number"`
}

type SamsungPay struct {
	Token json.RawMessage `json:"token"`
}

func (d GooglePayWalletData) walletToken() (string, error) {
	return d.TokenizationData.Token, nil
}

func (d ApplePayWalletData) walletToken() (string, error) {
	return d.GetApplePayDecodedPaymentData()
}

func (d PaypalSdkData) walletToken() (string, error) {
	return d.Token, nil
}

func (PaypalRedirection) walletToken() (string, error)    { return "", invalidWallet() }
func (AliPayRedirection) walletToken() (string, error)    { return "", invalidWallet() }
func (WeChatPayRedirection) walletToken() (string, error) { return "", invalidWallet() }
func (MbWayRedirection) walletToken() (string, error)     { return "", invalidWallet() }
func (SamsungPay) walletToken() (string, error)           { return "", invalidWallet() }
func (GooglePayRedirect) walletToken() (string, error)    { return "", invalidWallet() }
func (ApplePayRedirect) walletToken() (string, error)     { return "", invalidWallet() }

func invalidWallet() error {
	return core.NewError(core.ErrorInvalidWallet, "", nil)
}

// GetApplePayDecodedPaymentData decodes PaymentData from padded standard
// base64 and requires the result to be UTF-8.
func (d ApplePayWalletData) GetApplePayDecodedPaymentData() (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(d.PaymentData)
	if err != nil {
		return "", core.WrapError(err, core.ErrorInvalidWalletToken, "", nil)
	}
	if !utf8.Valid(decoded) {
		return "", core.WrapError(errors.New("decoded apple pay payment data is not valid utf-8"), core.ErrorInvalidWalletToken, "", nil)
	}
	return string(decoded), nil
}

// GetWalletToken extracts the token of a token-bearing wallet. Other wallets
// fail with InvalidWallet.
func GetWalletToken(wallet WalletData) (string, error) {
	if wallet == nil {
		return "", invalidWallet()
	}
	return wallet.walletToken()
}

// WalletTokenAs decodes the wallet token as a JSON document of type T.
func WalletTokenAs[T any](wallet WalletData) (T, error) {
	var out T
	token, err := GetWalletToken(wallet)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(token), &out); err != nil {
		return out, core.WrapError(err, core.ErrorInvalidWalletToken, "", nil)
	}
	return out, nil
}
