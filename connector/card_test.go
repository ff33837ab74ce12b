package connector

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-connectors/cards"
	"github.com/goliatone/go-connectors/core"
)

func TestCard_ExpiryFormatting(t *testing.T) {
	cases := []struct {
		year      string
		twoDigit  string
		withDelim string
		yyyymm    string
	}{
		{"2099", "99", "03/99", "2099-03"},
		{"99", "99", "03/99", "2099-03"},
		{"2030", "30", "03/30", "2030-03"},
	}
	for _, tc := range cases {
		card := Card{CardExpMonth: "03", CardExpYear: Secret(tc.year)}
		if got := card.GetCardExpiryYear2Digit().Peek(); got != tc.twoDigit {
			t.Fatalf("%s: expected %q, got %q", tc.year, tc.twoDigit, got)
		}
		if got := card.GetCardExpiryMonthYear2DigitWithDelimiter("/").Peek(); got != tc.withDelim {
			t.Fatalf("%s: expected %q, got %q", tc.year, tc.withDelim, got)
		}
		if got := card.GetExpiryDateAsYYYYMM("-").Peek(); got != tc.yyyymm {
			t.Fatalf("%s: expected %q, got %q", tc.year, tc.yyyymm, got)
		}
	}
}

func TestCard_ShortExpiryYearDoesNotPanic(t *testing.T) {
	card := Card{CardExpMonth: "01", CardExpYear: "9"}
	if got := card.GetCardExpiryYear2Digit().Peek(); got != "9" {
		t.Fatalf("expected short year to pass through, got %q", got)
	}
}

func TestCard_GetCardIssuer(t *testing.T) {
	card := Card{CardNumber: "4111111111111111"}
	issuer, err := card.GetCardIssuer()
	if err != nil || issuer != cards.Visa {
		t.Fatalf("expected Visa, got %s (%v)", issuer, err)
	}
	card.CardNumber = "0000"
	if _, err := card.GetCardIssuer(); !core.IsKind(err, core.ErrorNotImplemented) {
		t.Fatalf("expected not implemented, got %v", err)
	}
}

func TestSecret_RedactsWhenFormatted(t *testing.T) {
	card := Card{CardNumber: "4111111111111111", CardCVC: "123"}
	rendered := fmt.Sprintf("%v %s %#v", card.CardNumber, card.CardCVC, card.CardNumber)
	if rendered != "[REDACTED] [REDACTED] [REDACTED]" {
		t.Fatalf("expected redacted output, got %q", rendered)
	}
	raw, err := card.CardNumber.MarshalJSON()
	if err != nil || string(raw) != `"4111111111111111"` {
		t.Fatalf("expected raw value in json, got %s (%v)", raw, err)
	}
}
