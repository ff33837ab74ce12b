package connector

import (
	"testing"

	"github.com/goliatone/go-connectors/core"
)

func ptr[T any](value T) *T {
	return &value
}

func assertMissingField(t *testing.T, err error, want string) {
	t.Helper()
	got, ok := core.MissingFieldName(err)
	if !ok {
		t.Fatalf("expected missing field %q, got %v", want, err)
	}
	if got != want {
		t.Fatalf("expected missing field %q, got %q", want, got)
	}
}
