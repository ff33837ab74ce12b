package sqlstore

import "github.com/goliatone/go-connectors/core"

var (
	_ core.ConnectorAccountStore  = (*ConnectorAccountStore)(nil)
	_ core.ConnectorAccountStore  = (*CachedConnectorAccountStore)(nil)
	_ core.ConnectorAccountReader = (*CachedConnectorAccountStore)(nil)
)
