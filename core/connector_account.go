package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrConnectorAccountNotFound = errors.New("core: merchant connector account not found")

type ConnectorType string

const (
	ConnectorTypePaymentProcessor  ConnectorType = "payment_processor"
	ConnectorTypePaymentVas        ConnectorType = "payment_vas"
	ConnectorTypeFinOperations     ConnectorType = "fin_operations"
	ConnectorTypeFizOperations     ConnectorType = "fiz_operations"
	ConnectorTypeNetworks          ConnectorType = "networks"
	ConnectorTypeBankingEntities   ConnectorType = "banking_entities"
	ConnectorTypeNonBankingFinance ConnectorType = "non_banking_finance"
)

func ParseConnectorType(value string) (ConnectorType, error) {
	normalized := ConnectorType(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case ConnectorTypePaymentProcessor,
		ConnectorTypePaymentVas,
		ConnectorTypeFinOperations,
		ConnectorTypeFizOperations,
		ConnectorTypeNetworks,
		ConnectorTypeBankingEntities,
		ConnectorTypeNonBankingFinance:
		return normalized, nil
	case "":
		return ConnectorTypePaymentProcessor, nil
	default:
		return "", fmt.Errorf("core: invalid connector type %q", value)
	}
}

// MerchantConnectorAccount is a merchant's configured integration with one
// payment processor.
type MerchantConnectorAccount struct {
	ID                      string
	MerchantID              string
	ConnectorName           string
	ConnectorAccountDetails json.RawMessage
	TestMode                *bool
	Disabled                *bool
	MerchantConnectorID     string
	PaymentMethodsEnabled   []json.RawMessage
	ConnectorType           ConnectorType
	Metadata                json.RawMessage
	ConnectorLabel          string
	BusinessCountry         string
	BusinessLabel           string
	BusinessSubLabel        *string
}

// IsDisabled treats an unset flag as enabled.
func (a MerchantConnectorAccount) IsDisabled() bool {
	return a.Disabled != nil && *a.Disabled
}

type NewMerchantConnectorAccount struct {
	MerchantID              string
	ConnectorType           ConnectorType
	ConnectorName           string
	ConnectorAccountDetails json.RawMessage
	TestMode                *bool
	Disabled                *bool
	MerchantConnectorID     string
	PaymentMethodsEnabled   []json.RawMessage
	Metadata                json.RawMessage
	ConnectorLabel          string
	BusinessCountry         string
	BusinessLabel           string
	BusinessSubLabel        *string
}

func (in NewMerchantConnectorAccount) Validate() error {
	if strings.TrimSpace(in.MerchantID) == "" {
		return MissingField("merchant_id")
	}
	if strings.TrimSpace(in.ConnectorName) == "" {
		return MissingField("connector_name")
	}
	if strings.TrimSpace(in.MerchantConnectorID) == "" {
		return MissingField("merchant_connector_id")
	}
	if _, err := ParseConnectorType(string(in.ConnectorType)); err != nil {
		return WrapError(err, ErrorParsingFailed, "invalid connector type", map[string]any{
			MetadataFieldName: "connector_type",
		})
	}
	if err := validateJSON("connector_account_details", in.ConnectorAccountDetails); err != nil {
		return err
	}
	if err := validateJSON("metadata", in.Metadata); err != nil {
		return err
	}
	for _, entry := range in.PaymentMethodsEnabled {
		if err := validateJSON("payment_methods_enabled", entry); err != nil {
			return err
		}
	}
	return nil
}

// MerchantConnectorAccountUpdate is a partial update; nil fields are left
// untouched.
type MerchantConnectorAccountUpdate struct {
	ConnectorType           *ConnectorType
	ConnectorName           *string
	ConnectorAccountDetails json.RawMessage
	TestMode                *bool
	Disabled                *bool
	PaymentMethodsEnabled   []json.RawMessage
	Metadata                json.RawMessage
	ConnectorLabel          *string
	BusinessCountry         *string
	BusinessLabel           *string
	BusinessSubLabel        *string
}

func (u MerchantConnectorAccountUpdate) Validate() error {
	if u.ConnectorType != nil {
		if _, err := ParseConnectorType(string(*u.ConnectorType)); err != nil {
			return WrapError(err, ErrorParsingFailed, "invalid connector type", map[string]any{
				MetadataFieldName: "connector_type",
			})
		}
	}
	if u.ConnectorName != nil && strings.TrimSpace(*u.ConnectorName) == "" {
		return MissingField("connector_name")
	}
	if err := validateJSON("connector_account_details", u.ConnectorAccountDetails); err != nil {
		return err
	}
	if err := validateJSON("metadata", u.Metadata); err != nil {
		return err
	}
	return nil
}

// Apply returns a copy of account with the update's set fields applied.
func (u MerchantConnectorAccountUpdate) Apply(account MerchantConnectorAccount) MerchantConnectorAccount {
	if u.ConnectorType != nil {
		account.ConnectorType = *u.ConnectorType
	}
	if u.ConnectorName != nil {
		account.ConnectorName = strings.TrimSpace(*u.ConnectorName)
	}
	if u.ConnectorAccountDetails != nil {
		account.ConnectorAccountDetails = cloneRaw(u.ConnectorAccountDetails)
	}
	if u.TestMode != nil {
		value := *u.TestMode
		account.TestMode = &value
	}
	if u.Disabled != nil {
		value := *u.Disabled
		account.Disabled = &value
	}
	if u.PaymentMethodsEnabled != nil {
		account.PaymentMethodsEnabled = cloneRawList(u.PaymentMethodsEnabled)
	}
	if u.Metadata != nil {
		account.Metadata = cloneRaw(u.Metadata)
	}
	if u.ConnectorLabel != nil {
		account.ConnectorLabel = *u.ConnectorLabel
	}
	if u.BusinessCountry != nil {
		account.BusinessCountry = *u.BusinessCountry
	}
	if u.BusinessLabel != nil {
		account.BusinessLabel = *u.BusinessLabel
	}
	if u.BusinessSubLabel != nil {
		value := *u.BusinessSubLabel
		account.BusinessSubLabel = &value
	}
	return account
}

func validateJSON(field string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return NewError(ErrorParsingFailed, field+" is not valid JSON", map[string]any{
			MetadataFieldName: field,
		})
	}
	return nil
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

func cloneRawList(list []json.RawMessage) []json.RawMessage {
	if list == nil {
		return nil
	}
	out := make([]json.RawMessage, len(list))
	for i, entry := range list {
		out[i] = cloneRaw(entry)
	}
	return out
}
