package connector

import (
	"encoding/json"

	"github.com/goliatone/go-connectors/core"
)

// Secret holds a sensitive string. Formatting it prints a redaction marker;
// JSON encoding passes the value through because processors need it.
type Secret string

func NewSecret(value string) Secret {
	return Secret(value)
}

func (s Secret) Peek() string {
	return string(s)
}

func (s Secret) String() string {
	return core.RedactedValue
}

func (s Secret) GoString() string {
	return core.RedactedValue
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
