package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrorKind is the stable text code attached to every connector error.
type ErrorKind string

const (
	ErrorMissingRequiredField            ErrorKind = "CONNECTOR_MISSING_REQUIRED_FIELD"
	ErrorCaptureMethodNotSupported       ErrorKind = "CONNECTOR_CAPTURE_METHOD_NOT_SUPPORTED"
	ErrorInvalidWallet                   ErrorKind = "CONNECTOR_INVALID_WALLET"
	ErrorInvalidWalletToken              ErrorKind = "CONNECTOR_INVALID_WALLET_TOKEN"
	ErrorNotImplemented                  ErrorKind = "CONNECTOR_NOT_IMPLEMENTED"
	ErrorParsingFailed                   ErrorKind = "CONNECTOR_PARSING_FAILED"
	ErrorDateFormattingFailed            ErrorKind = "CONNECTOR_DATE_FORMATTING_FAILED"
	ErrorRequestEncodingFailed           ErrorKind = "CONNECTOR_REQUEST_ENCODING_FAILED"
	ErrorResponseDeserializationFailed   ErrorKind = "CONNECTOR_RESPONSE_DESERIALIZATION_FAILED"
	ErrorMissingConnectorTransactionID   ErrorKind = "CONNECTOR_MISSING_TRANSACTION_ID"
	ErrorWebhookSignatureNotFound        ErrorKind = "CONNECTOR_WEBHOOK_SIGNATURE_NOT_FOUND"
	ErrorWebhookSourceVerificationFailed ErrorKind = "CONNECTOR_WEBHOOK_SOURCE_VERIFICATION_FAILED"
	ErrorNoConnectorMetaData             ErrorKind = "CONNECTOR_NO_METADATA"
	ErrorInternal                        ErrorKind = "CONNECTOR_INTERNAL_ERROR"
)

const (
	MetadataFieldName = "field_name"
	MetadataSubject   = "subject"
)

type errorSpec struct {
	category goerrors.Category
	code     int
	message  string
}

var errorSpecs = map[ErrorKind]errorSpec{
	ErrorMissingRequiredField: {
		category: goerrors.CategoryValidation,
		code:     http.StatusBadRequest,
		message:  "missing required field",
	},
	ErrorCaptureMethodNotSupported: {
		category: goerrors.CategoryOperation,
		code:     http.StatusUnprocessableEntity,
		message:  "capture method not supported",
	},
	ErrorInvalidWallet: {
		category: goerrors.CategoryBadInput,
		code:     http.StatusBadRequest,
		message:  "invalid wallet",
	},
	ErrorInvalidWalletToken: {
		category: goerrors.CategoryBadInput,
		code:     http.StatusBadRequest,
		message:  "invalid wallet token",
	},
	ErrorNotImplemented: {
		category: goerrors.CategoryOperation,
		code:     http.StatusNotImplemented,
		message:  "not implemented",
	},
	ErrorParsingFailed: {
		category: goerrors.CategoryBadInput,
		code:     http.StatusBadRequest,
		message:  "failed to parse value",
	},
	ErrorDateFormattingFailed: {
		category: goerrors.CategoryInternal,
		code:     http.StatusInternalServerError,
		message:  "failed to format date",
	},
	ErrorRequestEncodingFailed: {
		category: goerrors.CategoryInternal,
		code:     http.StatusInternalServerError,
		message:  "failed to encode connector request",
	},
	ErrorResponseDeserializationFailed: {
		category: goerrors.CategoryExternal,
		code:     http.StatusBadGateway,
		message:  "failed to deserialize connector response",
	},
	ErrorMissingConnectorTransactionID: {
		category: goerrors.CategoryValidation,
		code:     http.StatusBadRequest,
		message:  "missing connector transaction id",
	},
	ErrorWebhookSignatureNotFound: {
		category: goerrors.CategoryAuth,
		code:     http.StatusUnauthorized,
		message:  "webhook signature not found",
	},
	ErrorWebhookSourceVerificationFailed: {
		category: goerrors.CategoryAuth,
		code:     http.StatusUnauthorized,
		message:  "webhook source verification failed",
	},
	ErrorNoConnectorMetaData: {
		category: goerrors.CategoryValidation,
		code:     http.StatusBadRequest,
		message:  "connector metadata is missing or malformed",
	},
	ErrorInternal: {
		category: goerrors.CategoryInternal,
		code:     http.StatusInternalServerError,
		message:  "an unexpected error occurred",
	},
}

func specFor(kind ErrorKind) errorSpec {
	if spec, ok := errorSpecs[kind]; ok {
		return spec
	}
	return errorSpecs[ErrorInternal]
}

// DefaultMessage returns the human readable message registered for kind.
func (k ErrorKind) DefaultMessage() string {
	return specFor(k).message
}

// Category returns the go-errors category registered for kind.
func (k ErrorKind) Category() goerrors.Category {
	return specFor(k).category
}

// NewError builds a connector error of the given kind. An empty message falls
// back to the kind's default message.
func NewError(kind ErrorKind, message string, metadata map[string]any) error {
	spec := specFor(kind)
	if strings.TrimSpace(message) == "" {
		message = spec.message
	}
	err := goerrors.New(message, spec.category).
		WithCode(spec.code).
		WithTextCode(string(kind))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// WrapError attaches kind and message to source, keeping source as the cause.
func WrapError(source error, kind ErrorKind, message string, metadata map[string]any) error {
	if source == nil {
		return NewError(kind, message, metadata)
	}
	spec := specFor(kind)
	if strings.TrimSpace(message) == "" {
		message = spec.message
	}
	// goerrors.Wrap clones a rich source instead of chaining it.
	err := goerrors.New(message, spec.category).
		WithCode(spec.code).
		WithTextCode(string(kind))
	err.Source = source
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// MissingField reports an absent required field. fieldName is the dotted path
// of the field inside the request, e.g. "billing.address.country".
func MissingField(fieldName string) error {
	return NewError(
		ErrorMissingRequiredField,
		"missing required field: "+fieldName,
		map[string]any{MetadataFieldName: fieldName},
	)
}

// NotImplemented reports an unsupported subject, e.g. "Card Type".
func NotImplemented(subject string) error {
	return NewError(
		ErrorNotImplemented,
		"not implemented: "+subject,
		map[string]any{MetadataSubject: subject},
	)
}

// InvalidMessage reports a command or query message that is missing field.
// The field is recorded both as a go-errors field error and as metadata.
func InvalidMessage(scope string, field string, message string) error {
	return goerrors.NewValidation(scope+": validation failed", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(string(ErrorMissingRequiredField)).
		WithMetadata(map[string]any{MetadataFieldName: field}).
		WithSeverity(goerrors.SeverityError)
}

func MissingDependency(message string) error {
	return NewError(ErrorInternal, message, nil)
}

// KindOf returns the kind of the outermost connector error in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich == nil {
		return ""
	}
	kind := ErrorKind(strings.TrimSpace(rich.TextCode))
	if _, ok := errorSpecs[kind]; !ok {
		return ""
	}
	return kind
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// MissingFieldName extracts the dotted field path from a missing field error.
func MissingFieldName(err error) (string, bool) {
	if KindOf(err) != ErrorMissingRequiredField {
		return "", false
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) || rich == nil {
		return "", false
	}
	name, ok := rich.Metadata[MetadataFieldName].(string)
	return name, ok
}

// MapError normalizes arbitrary errors into the connector error envelope.
func MapError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return ensureErrorEnvelope(rich)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "signature"):
		return ensureErrorEnvelope(newEnvelope(err.Error(), ErrorWebhookSourceVerificationFailed))
	case strings.Contains(msg, "required"), strings.Contains(msg, "missing"):
		return ensureErrorEnvelope(newEnvelope(err.Error(), ErrorMissingRequiredField))
	case strings.Contains(msg, "parse"), strings.Contains(msg, "invalid"):
		return ensureErrorEnvelope(newEnvelope(err.Error(), ErrorParsingFailed))
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureErrorEnvelope(mapped)
}

func newEnvelope(message string, kind ErrorKind) *goerrors.Error {
	spec := specFor(kind)
	return goerrors.New(message, spec.category).
		WithCode(spec.code).
		WithTextCode(string(kind))
}

func ensureErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = string(defaultKind(err.Category))
	}
	if err.Code == 0 {
		err.Code = specFor(ErrorKind(err.TextCode)).code
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = errorSpecs[ErrorInternal].message
	}
	return err
}

func defaultKind(category goerrors.Category) ErrorKind {
	switch category {
	case goerrors.CategoryBadInput:
		return ErrorParsingFailed
	case goerrors.CategoryValidation:
		return ErrorMissingRequiredField
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return ErrorWebhookSourceVerificationFailed
	case goerrors.CategoryOperation:
		return ErrorNotImplemented
	case goerrors.CategoryExternal:
		return ErrorResponseDeserializationFailed
	default:
		return ErrorInternal
	}
}
