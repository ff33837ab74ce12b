package webhooks

import (
	"slices"
	"strings"
	"testing"

	"github.com/goliatone/go-connectors/core"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	value, err := DecodePayload([]byte(body))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return value
}

func TestCollectValuesExcludingSignature(t *testing.T) {
	value := decode(t, `{"a":"sig123","b":[1,"x"]}`)
	got, err := CollectValuesExcludingSignature(value, "sig123")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !slices.Equal(got, []string{"1.00", "x"}) {
		t.Fatalf("expected [1.00 x], got %v", got)
	}
}

func TestCollectValuesExcludingSignature_Primitives(t *testing.T) {
	value := decode(t, `{"z":null,"y":true,"x":false,"w":-2.5,"v":{"nested":["deep",3]},"u":"keep"}`)
	got, err := CollectValuesExcludingSignature(value, "absent")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	// members are visited in key order: u v w x y z
	want := []string{"keep", "deep", "3.00", "-2.50", "false", "true", "null"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCollectValuesExcludingSignature_KeysAreNotEmitted(t *testing.T) {
	got, err := CollectValuesExcludingSignature(decode(t, `{"sig":"value"}`), "sig")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !slices.Equal(got, []string{"value"}) {
		t.Fatalf("expected only the value, got %v", got)
	}
}

func TestCollectValuesExcludingSignature_EmptyContainers(t *testing.T) {
	for _, body := range []string{`{}`, `[]`, `{"a":[],"b":{}}`, `"sig"`} {
		got, err := CollectValuesExcludingSignature(decode(t, body), "sig")
		if err != nil {
			t.Fatalf("%s: collect: %v", body, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: expected empty non-nil result, got %#v", body, got)
		}
	}
}

func TestCollectValuesExcludingSignature_OverflowingNumberKeepsText(t *testing.T) {
	got, err := CollectValuesExcludingSignature(decode(t, `[1e400, 0.005, 12]`), "")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !slices.Equal(got, []string{"1e400", "0.01", "12.00"}) {
		t.Fatalf("unexpected values %v", got)
	}
}

func TestCollectAndSortValuesExcludingSignature(t *testing.T) {
	value := decode(t, `{"a":"b","c":["a",10,"sig"],"d":"B"}`)
	got, err := CollectAndSortValuesExcludingSignature(value, "sig")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{"10.00", "B", "a", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizer_Limits(t *testing.T) {
	deep := strings.Repeat("[", 10) + "1" + strings.Repeat("]", 10)
	if _, err := (Canonicalizer{MaxDepth: 5}).Collect(decode(t, deep), ""); !core.IsKind(err, core.ErrorParsingFailed) {
		t.Fatalf("expected depth limit failure, got %v", err)
	}
	if _, err := (Canonicalizer{MaxDepth: 10}).Collect(decode(t, deep), ""); err != nil {
		t.Fatalf("expected depth 10 to be accepted: %v", err)
	}
	if _, err := (Canonicalizer{MaxValues: 2}).Collect(decode(t, `[1,2,3]`), ""); !core.IsKind(err, core.ErrorParsingFailed) {
		t.Fatalf("expected value limit failure, got %v", err)
	}
	limited := NewCanonicalizer(core.WebhookConfig{MaxDepth: 4, MaxValues: 3})
	if got, err := limited.Collect(decode(t, `[1,2,3]`), ""); err != nil || len(got) != 3 {
		t.Fatalf("expected three values within limits, got %v (%v)", got, err)
	}
}

func TestCanonicalizer_UnsupportedValue(t *testing.T) {
	if _, err := CollectValuesExcludingSignature(struct{}{}, ""); !core.IsKind(err, core.ErrorParsingFailed) {
		t.Fatalf("expected parsing failure, got %v", err)
	}
}

func TestDecodePayload_Malformed(t *testing.T) {
	for _, body := range []string{``, `{"a":`, `{} {}`} {
		if _, err := DecodePayload([]byte(body)); !core.IsKind(err, core.ErrorResponseDeserializationFailed) {
			t.Fatalf("%q: expected response deserialization failure, got %v", body, err)
		}
	}
}
