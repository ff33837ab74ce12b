package query

import (
	"strings"

	"github.com/goliatone/go-connectors/core"
)

const (
	TypeGetConnectorAccount   = "connectors.query.account.get"
	TypeListConnectorAccounts = "connectors.query.account.list"
	TypeConnectorMetadata     = "connectors.query.account.metadata"
)

// GetConnectorAccountMessage looks an account up by ID, or by merchant and
// merchant connector ID when ID is empty.
type GetConnectorAccountMessage struct {
	ID                  string
	MerchantID          string
	MerchantConnectorID string
}

func (GetConnectorAccountMessage) Type() string { return TypeGetConnectorAccount }

func (m GetConnectorAccountMessage) Validate() error {
	if strings.TrimSpace(m.ID) != "" {
		return nil
	}
	return validateAccountRef(m.MerchantID, m.MerchantConnectorID)
}

type ListConnectorAccountsMessage struct {
	MerchantID      string
	IncludeDisabled bool
}

func (ListConnectorAccountsMessage) Type() string { return TypeListConnectorAccounts }

func (m ListConnectorAccountsMessage) Validate() error {
	if strings.TrimSpace(m.MerchantID) == "" {
		return core.InvalidMessage("query", "merchant_id", "merchant id is required")
	}
	return nil
}

type ConnectorMetadataMessage struct {
	MerchantID          string
	MerchantConnectorID string
}

func (ConnectorMetadataMessage) Type() string { return TypeConnectorMetadata }

func (m ConnectorMetadataMessage) Validate() error {
	return validateAccountRef(m.MerchantID, m.MerchantConnectorID)
}

func validateAccountRef(merchantID, merchantConnectorID string) error {
	if strings.TrimSpace(merchantID) == "" {
		return core.InvalidMessage("query", "merchant_id", "merchant id is required")
	}
	if strings.TrimSpace(merchantConnectorID) == "" {
		return core.InvalidMessage("query", "merchant_connector_id", "merchant connector id is required")
	}
	return nil
}
