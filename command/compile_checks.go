package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[CreateConnectorAccountMessage] = (*CreateConnectorAccountCommand)(nil)
	_ gocmd.Commander[UpdateConnectorAccountMessage] = (*UpdateConnectorAccountCommand)(nil)
)
