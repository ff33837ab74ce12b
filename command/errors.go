package command

import (
	"net/http"

	"github.com/goliatone/go-connectors/core"
	goerrors "github.com/goliatone/go-errors"
)

// wrapInputError keeps connector errors as they are and files anything else
// as a parsing failure.
func wrapInputError(err error, message string) error {
	if err == nil || core.KindOf(err) != "" {
		return err
	}
	wrapped := goerrors.New(message, goerrors.CategoryValidation).
		WithCode(http.StatusBadRequest).
		WithTextCode(string(core.ErrorParsingFailed))
	wrapped.Source = err
	return wrapped
}
