package command

import (
	"strings"

	"github.com/goliatone/go-connectors/core"
)

const (
	TypeCreateConnectorAccount = "connectors.command.account.create"
	TypeUpdateConnectorAccount = "connectors.command.account.update"
)

type CreateConnectorAccountMessage struct {
	Input core.NewMerchantConnectorAccount
}

func (CreateConnectorAccountMessage) Type() string { return TypeCreateConnectorAccount }

func (m CreateConnectorAccountMessage) Validate() error {
	if strings.TrimSpace(m.Input.MerchantID) == "" {
		return core.InvalidMessage("command", "merchant_id", "merchant id is required")
	}
	if strings.TrimSpace(m.Input.ConnectorName) == "" {
		return core.InvalidMessage("command", "connector_name", "connector name is required")
	}
	if strings.TrimSpace(m.Input.MerchantConnectorID) == "" {
		return core.InvalidMessage("command", "merchant_connector_id", "merchant connector id is required")
	}
	return wrapInputError(m.Input.Validate(), "command: invalid connector account")
}

type UpdateConnectorAccountMessage struct {
	MerchantID          string
	MerchantConnectorID string
	Update              core.MerchantConnectorAccountUpdate
}

func (UpdateConnectorAccountMessage) Type() string { return TypeUpdateConnectorAccount }

func (m UpdateConnectorAccountMessage) Validate() error {
	if strings.TrimSpace(m.MerchantID) == "" {
		return core.InvalidMessage("command", "merchant_id", "merchant id is required")
	}
	if strings.TrimSpace(m.MerchantConnectorID) == "" {
		return core.InvalidMessage("command", "merchant_connector_id", "merchant connector id is required")
	}
	return wrapInputError(m.Update.Validate(), "command: invalid connector account update")
}
