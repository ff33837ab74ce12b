package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"
	"testing"

	"github.com/goliatone/go-connectors/core"
)

func signHexHMAC(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func signBase64HMAC(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestHeaderHMACVerifier(t *testing.T) {
	body := []byte(`{"event":"payment_succeeded"}`)
	verifier := HeaderHMACVerifier{Header: "X-Signature", Prefix: "sha256=", Secret: "whsec", Encoding: EncodingHex}

	headers := http.Header{}
	headers.Set("X-Signature", "sha256="+signHexHMAC("whsec", body))
	if err := verifier.Verify(context.Background(), Request{Headers: headers, Body: body}); err != nil {
		t.Fatalf("expected valid signature: %v", err)
	}

	tampered := []byte(`{"event":"payment_failed"}`)
	if err := verifier.Verify(context.Background(), Request{Headers: headers, Body: tampered}); !core.IsKind(err, core.ErrorWebhookSourceVerificationFailed) {
		t.Fatalf("expected verification failure for tampered body, got %v", err)
	}

	if err := verifier.Verify(context.Background(), Request{Headers: http.Header{}, Body: body}); !core.IsKind(err, core.ErrorWebhookSourceVerificationFailed) {
		t.Fatalf("expected verification failure for missing header, got %v", err)
	}

	b64 := HeaderHMACVerifier{Header: "X-Signature", Secret: "whsec", Encoding: EncodingBase64}
	headers = http.Header{}
	headers.Set("X-Signature", signBase64HMAC("whsec", body))
	if err := b64.Verify(context.Background(), Request{Headers: headers, Body: body}); err != nil {
		t.Fatalf("expected valid base64 signature: %v", err)
	}

	if err := (HeaderHMACVerifier{Header: "X-Signature"}).Verify(context.Background(), Request{Headers: headers, Body: body}); !core.IsKind(err, core.ErrorInternal) {
		t.Fatalf("expected missing secret error, got %v", err)
	}
}

func TestCanonicalPayloadVerifier_BodyField(t *testing.T) {
	payload := map[string]string{"amount": "10", "status": "paid"}
	values := []string{"10", "paid"}
	signature := signHexHMAC("canon", []byte(strings.Join(values, "/")))
	body := []byte(`{"amount":"` + payload["amount"] + `","status":"` + payload["status"] + `","signature":"` + signature + `"}`)

	verifier := CanonicalPayloadVerifier{
		SignatureField: "signature",
		Secret:         "canon",
		Separator:      "/",
		Sorted:         true,
	}
	if err := verifier.Verify(context.Background(), Request{Body: body}); err != nil {
		t.Fatalf("expected valid canonical signature: %v", err)
	}

	tampered := []byte(strings.Replace(string(body), `"paid"`, `"void"`, 1))
	if err := verifier.Verify(context.Background(), Request{Body: tampered}); !core.IsKind(err, core.ErrorWebhookSourceVerificationFailed) {
		t.Fatalf("expected verification failure, got %v", err)
	}

	if err := verifier.Verify(context.Background(), Request{Body: []byte(`{"amount":"10"}`)}); !core.IsKind(err, core.ErrorWebhookSignatureNotFound) {
		t.Fatalf("expected signature not found, got %v", err)
	}
	if err := verifier.Verify(context.Background(), Request{Body: []byte(`{"amount":`)}); !core.IsKind(err, core.ErrorResponseDeserializationFailed) {
		t.Fatalf("expected deserialization failure, got %v", err)
	}
}

func TestCanonicalPayloadVerifier_HeaderSignature(t *testing.T) {
	body := []byte(`{"b":2,"a":"one"}`)
	// unsorted walk visits a then b
	signature := signBase64HMAC("canon", []byte("one|2.00"))
	headers := http.Header{}
	headers.Set("X-Webhook-Signature", signature)

	verifier := CanonicalPayloadVerifier{
		SignatureHeader: "X-Webhook-Signature",
		Secret:          "canon",
		Encoding:        EncodingBase64,
		Separator:       "|",
	}
	if err := verifier.Verify(context.Background(), Request{Headers: headers, Body: body}); err != nil {
		t.Fatalf("expected valid canonical signature: %v", err)
	}
}

func TestRegistry_Verify(t *testing.T) {
	registry := NewRegistry()
	body := []byte(`{"ok":true}`)
	if err := registry.Register(" Adyen ", HeaderHMACVerifier{Header: "X-Sig", Secret: "s"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("", HeaderHMACVerifier{}); !core.IsKind(err, core.ErrorMissingRequiredField) {
		t.Fatalf("expected missing connector name, got %v", err)
	}
	if err := registry.Register("stripe", nil); err == nil {
		t.Fatalf("expected nil verifier to be rejected")
	}

	headers := http.Header{}
	headers.Set("X-Sig", signHexHMAC("s", body))
	if err := registry.Verify(context.Background(), Request{Connector: "adyen", Headers: headers, Body: body}); err != nil {
		t.Fatalf("expected registered verifier to accept: %v", err)
	}
	if err := registry.Verify(context.Background(), Request{Connector: "unknown", Body: body}); !core.IsKind(err, core.ErrorNotImplemented) {
		t.Fatalf("expected not implemented for unknown connector, got %v", err)
	}
}
