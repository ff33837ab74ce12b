package query

import (
	"encoding/json"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-connectors/core"
)

var (
	_ gocmd.Querier[GetConnectorAccountMessage, core.MerchantConnectorAccount]     = (*GetConnectorAccountQuery)(nil)
	_ gocmd.Querier[ListConnectorAccountsMessage, []core.MerchantConnectorAccount] = (*ListConnectorAccountsQuery)(nil)
	_ gocmd.Querier[ConnectorMetadataMessage, json.RawMessage]                     = (*ConnectorMetadataQuery)(nil)
)
