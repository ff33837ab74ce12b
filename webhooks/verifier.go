package webhooks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"github.com/goliatone/go-connectors/core"
)

// Request is an inbound webhook as received from a processor.
type Request struct {
	Connector string
	Headers   http.Header
	Body      []byte
}

type Verifier interface {
	Verify(ctx context.Context, req Request) error
}

const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// HeaderHMACVerifier checks an HMAC-SHA256 of the raw body carried in a
// header.
type HeaderHMACVerifier struct {
	Header   string
	Prefix   string
	Secret   string
	Encoding string // hex | base64
}

func (v HeaderHMACVerifier) Verify(_ context.Context, req Request) error {
	secret := strings.TrimSpace(v.Secret)
	if secret == "" {
		return core.NewError(core.ErrorInternal, "webhook signature secret is required", nil)
	}
	header, err := HTTPHeaderValue(strings.TrimSpace(v.Header), req.Headers)
	if err != nil {
		return err
	}
	signature := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), strings.TrimSpace(v.Prefix)))
	if signature == "" {
		return core.NewError(core.ErrorWebhookSignatureNotFound, "webhook signature value is empty", nil)
	}
	return compareSignature(signature, v.Encoding, sign(secret, req.Body))
}

// CanonicalPayloadVerifier checks an HMAC-SHA256 over the canonical values of
// the decoded body, joined with Separator. The signature is read from
// SignatureHeader when set, otherwise from the top-level body field
// SignatureField.
type CanonicalPayloadVerifier struct {
	SignatureHeader string
	SignatureField  string
	Secret          string
	Encoding        string // hex | base64
	Separator       string
	Sorted          bool
	Canonicalizer   Canonicalizer
}

func (v CanonicalPayloadVerifier) Verify(_ context.Context, req Request) error {
	secret := strings.TrimSpace(v.Secret)
	if secret == "" {
		return core.NewError(core.ErrorInternal, "webhook signature secret is required", nil)
	}
	payload, err := DecodePayload(req.Body)
	if err != nil {
		return err
	}
	signature, err := v.signature(req, payload)
	if err != nil {
		return err
	}

	var values []string
	if v.Sorted {
		values, err = v.Canonicalizer.CollectSorted(payload, signature)
	} else {
		values, err = v.Canonicalizer.Collect(payload, signature)
	}
	if err != nil {
		return err
	}
	message := strings.Join(values, v.Separator)
	return compareSignature(signature, v.Encoding, sign(secret, []byte(message)))
}

func (v CanonicalPayloadVerifier) signature(req Request, payload any) (string, error) {
	if header := strings.TrimSpace(v.SignatureHeader); header != "" {
		value, err := HTTPHeaderValue(header, req.Headers)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(value), nil
	}
	field := strings.TrimSpace(v.SignatureField)
	object, ok := payload.(map[string]any)
	if !ok || field == "" {
		return "", core.NewError(core.ErrorWebhookSignatureNotFound, "webhook signature field not found", map[string]any{
			core.MetadataFieldName: field,
		})
	}
	value, ok := object[field].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", core.NewError(core.ErrorWebhookSignatureNotFound, "webhook signature field not found", map[string]any{
			core.MetadataFieldName: field,
		})
	}
	return value, nil
}

func sign(secret string, message []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(message)
	return mac.Sum(nil)
}

func compareSignature(signature, encoding string, expected []byte) error {
	var (
		decoded []byte
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case EncodingBase64:
		decoded, err = base64.StdEncoding.DecodeString(signature)
	default:
		decoded, err = hex.DecodeString(signature)
	}
	if err != nil {
		return core.WrapError(err, core.ErrorWebhookSourceVerificationFailed, "webhook signature is not decodable", nil)
	}
	if subtle.ConstantTimeCompare(decoded, expected) != 1 {
		return core.NewError(core.ErrorWebhookSourceVerificationFailed, "webhook signature mismatch", nil)
	}
	return nil
}

// Registry maps connector names to verifiers. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	verifiers map[string]Verifier
}

func NewRegistry() *Registry {
	return &Registry{verifiers: map[string]Verifier{}}
}

func (r *Registry) Register(connector string, verifier Verifier) error {
	key := strings.ToLower(strings.TrimSpace(connector))
	if key == "" {
		return core.MissingField("connector_name")
	}
	if verifier == nil {
		return core.NewError(core.ErrorInternal, "webhook verifier is required", map[string]any{
			core.MetadataSubject: key,
		})
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.verifiers == nil {
		r.verifiers = map[string]Verifier{}
	}
	r.verifiers[key] = verifier
	return nil
}

func (r *Registry) Lookup(connector string) (Verifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	verifier, ok := r.verifiers[strings.ToLower(strings.TrimSpace(connector))]
	return verifier, ok
}

// Verify dispatches req to the verifier registered for req.Connector.
func (r *Registry) Verify(ctx context.Context, req Request) error {
	verifier, ok := r.Lookup(req.Connector)
	if !ok {
		return core.NotImplemented("webhook verification for " + strings.TrimSpace(req.Connector))
	}
	return verifier.Verify(ctx, req)
}
