package connector

import (
	"github.com/goliatone/go-connectors/cards"
)

type Card struct {
	CardNumber     Secret  `json:"card_number"`
	CardExpMonth   Secret  `json:"card_exp_month"`
	CardExpYear    Secret  `json:"card_exp_year"`
	CardHolderName Secret  `json:"card_holder_name"`
	CardCVC        Secret  `json:"card_cvc"`
	CardIssuer     *string `json:"card_issuer,omitempty"`
	CardNetwork    *string `json:"card_network,omitempty"`
}

type CardAccessor interface {
	GetCardExpiryYear2Digit() Secret
	GetCardIssuer() (cards.Issuer, error)
	GetCardExpiryMonthYear2DigitWithDelimiter(delimiter string) Secret
	GetExpiryDateAsYYYYMM(delimiter string) Secret
}

// GetCardExpiryYear2Digit returns the last two characters of the expiry year.
// Years shorter than two characters are returned unchanged.
func (c Card) GetCardExpiryYear2Digit() Secret {
	year := c.CardExpYear.Peek()
	if len(year) < 2 {
		return Secret(year)
	}
	return Secret(year[len(year)-2:])
}

func (c Card) GetCardIssuer() (cards.Issuer, error) {
	return cards.Classify(c.CardNumber.Peek())
}

// GetCardExpiryMonthYear2DigitWithDelimiter renders "MM<delimiter>YY".
func (c Card) GetCardExpiryMonthYear2DigitWithDelimiter(delimiter string) Secret {
	return Secret(c.CardExpMonth.Peek() + delimiter + c.GetCardExpiryYear2Digit().Peek())
}

// GetExpiryDateAsYYYYMM renders "YYYY<delimiter>MM", widening two digit
// years into the 2000s.
func (c Card) GetExpiryDateAsYYYYMM(delimiter string) Secret {
	year := c.CardExpYear.Peek()
	if len(year) == 2 {
		year = "20" + year
	}
	return Secret(year + delimiter + c.CardExpMonth.Peek())
}
