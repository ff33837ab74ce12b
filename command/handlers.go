package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-connectors/core"
)

type CreateConnectorAccountCommand struct {
	store core.ConnectorAccountStore
}

func NewCreateConnectorAccountCommand(store core.ConnectorAccountStore) *CreateConnectorAccountCommand {
	return &CreateConnectorAccountCommand{store: store}
}

func (c *CreateConnectorAccountCommand) Execute(ctx context.Context, msg CreateConnectorAccountMessage) error {
	if c == nil || c.store == nil {
		return core.MissingDependency("command: connector account store is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	out, err := c.store.Create(ctx, msg.Input)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type UpdateConnectorAccountCommand struct {
	store core.ConnectorAccountStore
}

func NewUpdateConnectorAccountCommand(store core.ConnectorAccountStore) *UpdateConnectorAccountCommand {
	return &UpdateConnectorAccountCommand{store: store}
}

func (c *UpdateConnectorAccountCommand) Execute(ctx context.Context, msg UpdateConnectorAccountMessage) error {
	if c == nil || c.store == nil {
		return core.MissingDependency("command: connector account store is required")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	out, err := c.store.Update(ctx, msg.MerchantID, msg.MerchantConnectorID, msg.Update)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
