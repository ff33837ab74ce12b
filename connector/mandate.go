package connector

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/currency"
)

const (
	mandateEndDateField  = "mandate_data.mandate_type.{multi_use|single_use}.end_date"
	mandateMetadataField = "mandate_data.mandate_type.{multi_use|single_use}.metadata"
)

type DateFormat string

const (
	DateFormatYYYYMMDDHHmmss DateFormat = "YYYYMMDDHHmmss"
	DateFormatYYYYMMDD       DateFormat = "YYYYMMDD"
)

var dateLayouts = map[DateFormat]string{
	DateFormatYYYYMMDDHHmmss: "20060102150405",
	DateFormatYYYYMMDD:       "20060102",
}

// FormatDate renders value in UTC using format.
func FormatDate(value time.Time, format DateFormat) (string, error) {
	layout, ok := dateLayouts[format]
	if !ok {
		return "", core.NewError(core.ErrorDateFormattingFailed, fmt.Sprintf("unsupported date format %q", format), nil)
	}
	return value.UTC().Format(layout), nil
}

type MandateIDs struct {
	MandateID          string             `json:"mandate_id"`
	MandateReferenceID MandateReferenceID `json:"-"`
}

// MandateReferenceID identifies a stored mandate either by the processor's
// own id or by a card network id.
type MandateReferenceID interface {
	isMandateReferenceID()
}

type ConnectorMandateReferenceID struct {
	ConnectorMandateID *string `json:"connector_mandate_id,omitempty"`
	PaymentMethodID    *string `json:"payment_method_id,omitempty"`
}

type NetworkMandateID struct {
	ID string `json:"network_mandate_id"`
}

func (ConnectorMandateReferenceID) isMandateReferenceID() {}
func (NetworkMandateID) isMandateReferenceID()            {}

type MandateReferenceAccessor interface {
	GetConnectorMandateID() (string, error)
}

func (m ConnectorMandateReferenceID) GetConnectorMandateID() (string, error) {
	return required(m.ConnectorMandateID, "mandate_id")
}

type MandateData struct {
	CustomerAcceptance *CustomerAcceptance `json:"customer_acceptance,omitempty"`
	MandateType        MandateType         `json:"-"`
}

type CustomerAcceptance struct {
	AcceptanceType string         `json:"acceptance_type"`
	AcceptedAt     *time.Time     `json:"accepted_at,omitempty"`
	Online         *OnlineMandate `json:"online,omitempty"`
}

type OnlineMandate struct {
	IPAddress Secret `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// MandateType is either single or multi use. Both carry optional amount data.
type MandateType interface {
	AmountData() *MandateAmountData
	isMandateType()
}

type SingleUse struct {
	Data MandateAmountData `json:"single_use"`
}

type MultiUse struct {
	Data *MandateAmountData `json:"multi_use,omitempty"`
}

func (SingleUse) isMandateType() {}
func (MultiUse) isMandateType()  {}

func (m SingleUse) AmountData() *MandateAmountData {
	data := m.Data
	return &data
}

func (m MultiUse) AmountData() *MandateAmountData {
	return m.Data
}

type MandateAmountData struct {
	Amount    int64           `json:"amount"`
	Currency  currency.Code   `json:"currency"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

type MandateAccessor interface {
	GetEndDate(format DateFormat) (string, error)
	GetMetadata() (json.RawMessage, error)
}

func (m MandateAmountData) GetEndDate(format DateFormat) (string, error) {
	if m.EndDate == nil {
		return "", core.MissingField(mandateEndDateField)
	}
	return FormatDate(*m.EndDate, format)
}

// GetMetadata treats a JSON null like an absent blob, as connector metadata does.
func (m MandateAmountData) GetMetadata() (json.RawMessage, error) {
	return requireBlob(m.Metadata, mandateMetadataField)
}
