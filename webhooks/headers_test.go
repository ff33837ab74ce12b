package webhooks

import (
	"net/http"
	"testing"

	"github.com/goliatone/go-connectors/core"
)

func TestHTTPHeaderValue(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Signature", "abc\tdef")
	got, err := HTTPHeaderValue("x-signature", headers)
	if err != nil || got != "abc\tdef" {
		t.Fatalf("expected canonical lookup to succeed, got %q (%v)", got, err)
	}

	if _, err := HTTPHeaderValue("X-Missing", headers); !core.IsKind(err, core.ErrorWebhookSourceVerificationFailed) {
		t.Fatalf("expected verification failure for missing header, got %v", err)
	}

	headers.Set("X-Binary", "caf\xc3\xa9")
	if _, err := HTTPHeaderValue("X-Binary", headers); !core.IsKind(err, core.ErrorWebhookSignatureNotFound) {
		t.Fatalf("expected signature not found for non ascii header, got %v", err)
	}
}

func TestHeaderMapValue(t *testing.T) {
	headers := map[string]string{"X-Signature": "abc", "X-Control": "a\x01b"}
	got, err := HeaderMapValue("X-Signature", headers)
	if err != nil || got != "abc" {
		t.Fatalf("expected abc, got %q (%v)", got, err)
	}
	if _, err := HeaderMapValue("x-signature", headers); !core.IsKind(err, core.ErrorWebhookSourceVerificationFailed) {
		t.Fatalf("expected exact key lookup, got %v", err)
	}
	if _, err := HeaderMapValue("X-Control", headers); !core.IsKind(err, core.ErrorWebhookSignatureNotFound) {
		t.Fatalf("expected signature not found for control byte, got %v", err)
	}
}
