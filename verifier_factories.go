package connectors

import (
	"strings"

	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/webhooks"
)

// HeaderHMACVerifier builds a raw-body HMAC verifier.
func HeaderHMACVerifier(header, prefix, secret, encoding string) (webhooks.HeaderHMACVerifier, error) {
	if strings.TrimSpace(header) == "" {
		return webhooks.HeaderHMACVerifier{}, core.MissingField("signature_header")
	}
	if strings.TrimSpace(secret) == "" {
		return webhooks.HeaderHMACVerifier{}, core.MissingField("webhook_secret")
	}
	normalized, err := normalizeEncoding(encoding)
	if err != nil {
		return webhooks.HeaderHMACVerifier{}, err
	}
	return webhooks.HeaderHMACVerifier{
		Header:   header,
		Prefix:   prefix,
		Secret:   secret,
		Encoding: normalized,
	}, nil
}

type CanonicalVerifierConfig struct {
	SignatureHeader string
	SignatureField  string
	Secret          string
	Encoding        string
	Sorted          bool
}

// CanonicalPayloadVerifier builds a canonical-values verifier bound to the
// service's separator and canonicalizer limits.
func (s *Service) CanonicalPayloadVerifier(cfg CanonicalVerifierConfig) (webhooks.CanonicalPayloadVerifier, error) {
	if s == nil {
		return webhooks.CanonicalPayloadVerifier{}, core.NewError(core.ErrorInternal, "connectors: service is nil", nil)
	}
	if strings.TrimSpace(cfg.SignatureHeader) == "" && strings.TrimSpace(cfg.SignatureField) == "" {
		return webhooks.CanonicalPayloadVerifier{}, core.MissingField("signature_header")
	}
	if strings.TrimSpace(cfg.Secret) == "" {
		return webhooks.CanonicalPayloadVerifier{}, core.MissingField("webhook_secret")
	}
	encoding, err := normalizeEncoding(cfg.Encoding)
	if err != nil {
		return webhooks.CanonicalPayloadVerifier{}, err
	}
	return webhooks.CanonicalPayloadVerifier{
		SignatureHeader: cfg.SignatureHeader,
		SignatureField:  cfg.SignatureField,
		Secret:          cfg.Secret,
		Encoding:        encoding,
		Separator:       s.config.Webhooks.Separator,
		Sorted:          cfg.Sorted,
		Canonicalizer:   s.canonicalizer,
	}, nil
}

func normalizeEncoding(encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", webhooks.EncodingHex:
		return webhooks.EncodingHex, nil
	case webhooks.EncodingBase64:
		return webhooks.EncodingBase64, nil
	default:
		return "", core.NewError(core.ErrorParsingFailed, "unsupported webhook signature encoding "+encoding, map[string]any{
			core.MetadataFieldName: "encoding",
		})
	}
}
