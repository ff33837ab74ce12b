package cards

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/goliatone/go-connectors/core"
)

type Issuer int

const (
	AmericanExpress Issuer = iota + 1
	Master
	Maestro
	Visa
	Discover
	DinersClub
	JCB
)

var issuerNames = map[Issuer]string{
	AmericanExpress: "AmericanExpress",
	Master:          "Master",
	Maestro:         "Maestro",
	Visa:            "Visa",
	Discover:        "Discover",
	DinersClub:      "DinersClub",
	JCB:             "JCB",
}

func (i Issuer) String() string {
	if name, ok := issuerNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Issuer(%d)", int(i))
}

// ParseIssuer maps a variant name back to its Issuer. Matching ignores case.
func ParseIssuer(value string) (Issuer, error) {
	trimmed := strings.TrimSpace(value)
	for issuer, name := range issuerNames {
		if strings.EqualFold(name, trimmed) {
			return issuer, nil
		}
	}
	return 0, core.NewError(core.ErrorParsingFailed, fmt.Sprintf("unknown card issuer %q", value), map[string]any{
		core.MetadataFieldName: "card_issuer",
	})
}

// The Discover alternation is anchored only on its first and last branch.
var issuerPatterns = map[Issuer]string{
	Master:          `^5[1-5][0-9]{14}$`,
	AmericanExpress: `^3[47][0-9]{13}$`,
	Visa:            `^4[0-9]{12}(?:[0-9]{3})?$`,
	Discover:        `^65[4-9][0-9]{13}|64[4-9][0-9]{13}|6011[0-9]{12}|(622(?:12[6-9]|1[3-9][0-9]|[2-8][0-9][0-9]|9[01][0-9]|92[0-5])[0-9]{10})$`,
	Maestro:         `^(5018|5020|5038|5893|6304|6759|6761|6762|6763)[0-9]{8,15}$`,
	DinersClub:      `^3(?:0[0-5]|[68][0-9])[0-9]{11}$`,
	JCB:             `^(3(?:088|096|112|158|337|5(?:2[89]|[3-8][0-9]))\d{12})$`,
}

type issuerTable map[Issuer]compiledPattern

type compiledPattern struct {
	re  *regexp.Regexp
	err error
}

var loadIssuerTable = sync.OnceValue(func() issuerTable {
	return compileIssuerTable(issuerPatterns)
})

func compileIssuerTable(patterns map[Issuer]string) issuerTable {
	table := make(issuerTable, len(patterns))
	for issuer, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		table[issuer] = compiledPattern{re: re, err: err}
	}
	return table
}

// Classify returns the issuer whose BIN pattern matches number. When more
// than one pattern matches, which one wins is unspecified.
func Classify(number string) (Issuer, error) {
	return loadIssuerTable().classify(number)
}

func (t issuerTable) classify(number string) (Issuer, error) {
	for issuer, entry := range t {
		if entry.err != nil {
			return 0, core.WrapError(entry.err, core.ErrorRequestEncodingFailed, "card issuer pattern failed to compile", map[string]any{
				core.MetadataSubject: issuer.String(),
			})
		}
		if entry.re.MatchString(number) {
			return issuer, nil
		}
	}
	return 0, core.NotImplemented("Card Type")
}
