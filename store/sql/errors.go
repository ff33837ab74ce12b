package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeStoreNotConfigured = "CONNECTOR_ACCOUNT_STORE_NOT_CONFIGURED"
	textCodeAccountConflict    = "CONNECTOR_ACCOUNT_CONFLICT"
	textCodeListTruncated      = "CONNECTOR_ACCOUNT_LIST_TRUNCATED"
)

func errStoreNotConfigured(name string) error {
	return goerrors.New("sqlstore: "+name+" is not configured", goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(textCodeStoreNotConfigured)
}

func errListTruncated(merchantID string, total int) error {
	return goerrors.New(
		fmt.Sprintf("sqlstore: merchant has %d connector accounts, more than the %d a list returns", total, MaxAccountsPerMerchant),
		goerrors.CategoryOperation,
	).
		WithCode(http.StatusUnprocessableEntity).
		WithTextCode(textCodeListTruncated).
		WithMetadata(map[string]any{
			"merchant_id": merchantID,
			"total":       total,
			"limit":       MaxAccountsPerMerchant,
		})
}

// IsListTruncated reports whether a list hit MaxAccountsPerMerchant.
func IsListTruncated(err error) bool {
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich != nil && rich.TextCode == textCodeListTruncated
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich != nil && rich.Category == goerrors.CategoryNotFound
}

// mapWriteError turns unique constraint violations into conflict errors.
func mapWriteError(err error, metadata map[string]any) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		conflict := goerrors.New("sqlstore: merchant connector account already exists", goerrors.CategoryConflict).
			WithCode(http.StatusConflict).
			WithTextCode(textCodeAccountConflict).
			WithMetadata(metadata)
		conflict.Source = err
		return conflict
	}
	return err
}

// IsConflict reports whether err is a duplicate merchant connector account.
func IsConflict(err error) bool {
	var rich *goerrors.Error
	return goerrors.As(err, &rich) && rich != nil && rich.TextCode == textCodeAccountConflict
}

func isUniqueViolation(err error) bool {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich != nil && rich.Category == goerrors.CategoryConflict {
		return true
	}
	for current := err; current != nil; current = errors.Unwrap(current) {
		msg := strings.ToLower(current.Error())
		if strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate") {
			return true
		}
	}
	return false
}
