package sqlstore

import (
	"encoding/json"
	"time"

	"github.com/goliatone/go-connectors/core"
	"github.com/uptrace/bun"
)

type merchantConnectorAccountRecord struct {
	bun.BaseModel `bun:"table:merchant_connector_accounts,alias:mca"`

	ID                      string            `bun:"id,pk"`
	MerchantID              string            `bun:"merchant_id,notnull"`
	ConnectorName           string            `bun:"connector_name,notnull"`
	ConnectorAccountDetails json.RawMessage   `bun:"connector_account_details,type:jsonb,nullzero"`
	TestMode                *bool             `bun:"test_mode"`
	Disabled                *bool             `bun:"disabled"`
	MerchantConnectorID     string            `bun:"merchant_connector_id,notnull"`
	PaymentMethodsEnabled   []json.RawMessage `bun:"payment_methods_enabled,type:jsonb,nullzero"`
	ConnectorType           string            `bun:"connector_type,notnull"`
	Metadata                json.RawMessage   `bun:"metadata,type:jsonb,nullzero"`
	ConnectorLabel          string            `bun:"connector_label,notnull"`
	BusinessCountry         string            `bun:"business_country,notnull"`
	BusinessLabel           string            `bun:"business_label,notnull"`
	BusinessSubLabel        *string           `bun:"business_sub_label"`
	CreatedAt               time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt               time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func newMerchantConnectorAccountRecord(in core.NewMerchantConnectorAccount, id string, now time.Time) *merchantConnectorAccountRecord {
	connectorType, _ := core.ParseConnectorType(string(in.ConnectorType))
	return &merchantConnectorAccountRecord{
		ID:                      id,
		MerchantID:              in.MerchantID,
		ConnectorName:           in.ConnectorName,
		ConnectorAccountDetails: cloneRaw(in.ConnectorAccountDetails),
		TestMode:                cloneBool(in.TestMode),
		Disabled:                cloneBool(in.Disabled),
		MerchantConnectorID:     in.MerchantConnectorID,
		PaymentMethodsEnabled:   cloneRawList(in.PaymentMethodsEnabled),
		ConnectorType:           string(connectorType),
		Metadata:                cloneRaw(in.Metadata),
		ConnectorLabel:          in.ConnectorLabel,
		BusinessCountry:         in.BusinessCountry,
		BusinessLabel:           in.BusinessLabel,
		BusinessSubLabel:        cloneString(in.BusinessSubLabel),
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func (r *merchantConnectorAccountRecord) toDomain() core.MerchantConnectorAccount {
	if r == nil {
		return core.MerchantConnectorAccount{}
	}
	return core.MerchantConnectorAccount{
		ID:                      r.ID,
		MerchantID:              r.MerchantID,
		ConnectorName:           r.ConnectorName,
		ConnectorAccountDetails: cloneRaw(r.ConnectorAccountDetails),
		TestMode:                cloneBool(r.TestMode),
		Disabled:                cloneBool(r.Disabled),
		MerchantConnectorID:     r.MerchantConnectorID,
		PaymentMethodsEnabled:   cloneRawList(r.PaymentMethodsEnabled),
		ConnectorType:           core.ConnectorType(r.ConnectorType),
		Metadata:                cloneRaw(r.Metadata),
		ConnectorLabel:          r.ConnectorLabel,
		BusinessCountry:         r.BusinessCountry,
		BusinessLabel:           r.BusinessLabel,
		BusinessSubLabel:        cloneString(r.BusinessSubLabel),
	}
}

// applyDomain copies the mutable fields of account onto the record.
func (r *merchantConnectorAccountRecord) applyDomain(account core.MerchantConnectorAccount) {
	r.ConnectorName = account.ConnectorName
	r.ConnectorAccountDetails = cloneRaw(account.ConnectorAccountDetails)
	r.TestMode = cloneBool(account.TestMode)
	r.Disabled = cloneBool(account.Disabled)
	r.PaymentMethodsEnabled = cloneRawList(account.PaymentMethodsEnabled)
	r.ConnectorType = string(account.ConnectorType)
	r.Metadata = cloneRaw(account.Metadata)
	r.ConnectorLabel = account.ConnectorLabel
	r.BusinessCountry = account.BusinessCountry
	r.BusinessLabel = account.BusinessLabel
	r.BusinessSubLabel = cloneString(account.BusinessSubLabel)
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
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

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}
