package webhooks

import (
	"net/http"

	"github.com/goliatone/go-connectors/core"
)

// HTTPHeaderValue returns the first value of key. Lookup uses the canonical
// header form.
func HTTPHeaderValue(key string, headers http.Header) (string, error) {
	values := headers.Values(key)
	if len(values) == 0 {
		return "", missingHeader(key)
	}
	return visibleHeaderValue(key, values[0])
}

// HeaderMapValue returns the value stored under exactly key.
func HeaderMapValue(key string, headers map[string]string) (string, error) {
	value, ok := headers[key]
	if !ok {
		return "", missingHeader(key)
	}
	return visibleHeaderValue(key, value)
}

func missingHeader(key string) error {
	return core.NewError(core.ErrorWebhookSourceVerificationFailed, "webhook header "+key+" is missing", map[string]any{
		core.MetadataFieldName: key,
	})
}

// visibleHeaderValue accepts visible ASCII and horizontal tabs only.
func visibleHeaderValue(key, value string) (string, error) {
	for i := 0; i < len(value); i++ {
		b := value[i]
		if b == '\t' || (b >= 0x20 && b < 0x7f) {
			continue
		}
		return "", core.NewError(core.ErrorWebhookSignatureNotFound, "webhook header "+key+" is not visible ascii", map[string]any{
			core.MetadataFieldName: key,
		})
	}
	return value, nil
}
