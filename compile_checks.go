package connectors

import "github.com/goliatone/go-connectors/core"

var (
	_ CommandQueryService         = (*Service)(nil)
	_ core.ConnectorAccountReader = (*Service)(nil)
)
