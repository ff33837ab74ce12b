package connector

import (
	"encoding/base64"
	"testing"

	"github.com/goliatone/go-connectors/core"
)

func TestGetWalletToken(t *testing.T) {
	google := GooglePayWalletData{TokenizationData: GpayTokenizationData{Token: "gpay-token"}}
	if got, err := GetWalletToken(google); err != nil || got != "gpay-token" {
		t.Fatalf("expected google pay token, got %q (%v)", got, err)
	}
	paypal := PaypalSdkData{Token: "pp-token"}
	if got, err := GetWalletToken(paypal); err != nil || got != "pp-token" {
		t.Fatalf("expected paypal token, got %q (%v)", got, err)
	}
	apple := ApplePayWalletData{PaymentData: base64.StdEncoding.EncodeToString([]byte(`{"data":"enc"}`))}
	if got, err := GetWalletToken(apple); err != nil || got != `{"data":"enc"}` {
		t.Fatalf("expected decoded apple pay token, got %q (%v)", got, err)
	}
}

func TestGetWalletToken_NonTokenWallets(t *testing.T) {
	wallets := []WalletData{
		nil,
		PaypalRedirection{},
		AliPayRedirection{},
		WeChatPayRedirection{},
		MbWayRedirection{TelephoneNumber: "+351900000000"},
		SamsungPay{},
		GooglePayRedirect{},
		ApplePayRedirect{},
	}
	for _, wallet := range wallets {
		if _, err := GetWalletToken(wallet); !core.IsKind(err, core.ErrorInvalidWallet) {
			t.Fatalf("%T: expected invalid wallet, got %v", wallet, err)
		}
	}
}

func TestApplePayDecode_Failures(t *testing.T) {
	cases := map[string]string{
		"not base64":      "%%%",
		"url alphabet":    "-_-_",
		"missing padding": "YWJj ZA",
		"not utf-8":       base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
	}
	for name, payload := range cases {
		_, err := ApplePayWalletData{PaymentData: payload}.GetApplePayDecodedPaymentData()
		if !core.IsKind(err, core.ErrorInvalidWalletToken) {
			t.Fatalf("%s: expected invalid wallet token, got %v", name, err)
		}
	}
}

func TestWalletTokenAs(t *testing.T) {
	type applePayToken struct {
		Data    string `json:"data"`
		Version string `json:"version"`
	}
	apple := ApplePayWalletData{PaymentData: base64.StdEncoding.EncodeToString([]byte(`{"data":"enc","version":"EC_v1"}`))}
	token, err := WalletTokenAs[applePayToken](apple)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if token.Version != "EC_v1" || token.Data != "enc" {
		t.Fatalf("unexpected token %#v", token)
	}

	if _, err := WalletTokenAs[applePayToken](PaypalSdkData{Token: "not-json"}); !core.IsKind(err, core.ErrorInvalidWalletToken) {
		t.Fatalf("expected invalid wallet token, got %v", err)
	}
	if _, err := WalletTokenAs[applePayToken](AliPayRedirection{}); !core.IsKind(err, core.ErrorInvalidWallet) {
		t.Fatalf("expected invalid wallet, got %v", err)
	}
}
