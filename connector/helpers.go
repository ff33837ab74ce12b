package connector

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-connectors/core"
)

// ToBoolean maps "true"/"yes" to true. Anything else is false.
func ToBoolean(value string) bool {
	switch value {
	case "true", "yes":
		return true
	default:
		return false
	}
}

// Base64Decode decodes a processor response field encoded in padded
// standard base64.
func Base64Decode(data string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, core.WrapError(err, core.ErrorResponseDeserializationFailed, "", nil)
	}
	return decoded, nil
}

// FloatString is a numeric string that encodes as a JSON number.
type FloatString string

func (f FloatString) MarshalJSON() ([]byte, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil {
		return nil, fmt.Errorf("connector: invalid string %q, cannot be converted to float value", string(f))
	}
	return strconv.AppendFloat(nil, value, 'f', -1, 64), nil
}
