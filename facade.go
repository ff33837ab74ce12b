package connectors

import (
	"fmt"

	connectorscommand "github.com/goliatone/go-connectors/command"
	"github.com/goliatone/go-connectors/core"
	connectorsquery "github.com/goliatone/go-connectors/query"
)

// CommandQueryService is what the facade's commands and queries run against.
// *Service satisfies it.
type CommandQueryService interface {
	core.ConnectorAccountStore
	connectorsquery.ConnectorAccountLister
}

type Commands struct {
	CreateConnectorAccount *connectorscommand.CreateConnectorAccountCommand
	UpdateConnectorAccount *connectorscommand.UpdateConnectorAccountCommand
}

type Queries struct {
	GetConnectorAccount   *connectorsquery.GetConnectorAccountQuery
	ListConnectorAccounts *connectorsquery.ListConnectorAccountsQuery
	ConnectorMetadata     *connectorsquery.ConnectorMetadataQuery
}

type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("connectors: command/query service is required")
	}
	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateConnectorAccount: connectorscommand.NewCreateConnectorAccountCommand(service),
		UpdateConnectorAccount: connectorscommand.NewUpdateConnectorAccountCommand(service),
	}
	facade.queries = Queries{
		GetConnectorAccount:   connectorsquery.NewGetConnectorAccountQuery(service),
		ListConnectorAccounts: connectorsquery.NewListConnectorAccountsQuery(service),
		ConnectorMetadata:     connectorsquery.NewConnectorMetadataQuery(service),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}
