package query

import (
	"context"
	"encoding/json"

	"github.com/goliatone/go-connectors/connector"
	"github.com/goliatone/go-connectors/core"
)

type ConnectorAccountLister interface {
	ListByMerchant(ctx context.Context, merchantID string, includeDisabled bool) ([]core.MerchantConnectorAccount, error)
}

type GetConnectorAccountQuery struct {
	reader core.ConnectorAccountReader
}

func NewGetConnectorAccountQuery(reader core.ConnectorAccountReader) *GetConnectorAccountQuery {
	return &GetConnectorAccountQuery{reader: reader}
}

func (q *GetConnectorAccountQuery) Query(
	ctx context.Context,
	msg GetConnectorAccountMessage,
) (core.MerchantConnectorAccount, error) {
	if q == nil || q.reader == nil {
		return core.MerchantConnectorAccount{}, core.MissingDependency("query: connector account reader is required")
	}
	if err := msg.Validate(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	if msg.ID != "" {
		return q.reader.Get(ctx, msg.ID)
	}
	return q.reader.FindByMerchantConnectorID(ctx, msg.MerchantID, msg.MerchantConnectorID)
}

type ListConnectorAccountsQuery struct {
	lister ConnectorAccountLister
}

func NewListConnectorAccountsQuery(lister ConnectorAccountLister) *ListConnectorAccountsQuery {
	return &ListConnectorAccountsQuery{lister: lister}
}

func (q *ListConnectorAccountsQuery) Query(
	ctx context.Context,
	msg ListConnectorAccountsMessage,
) ([]core.MerchantConnectorAccount, error) {
	if q == nil || q.lister == nil {
		return nil, core.MissingDependency("query: connector account lister is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return q.lister.ListByMerchant(ctx, msg.MerchantID, msg.IncludeDisabled)
}

// ConnectorMetadataQuery returns an account's connector metadata blob. An
// account without metadata fails with NoConnectorMetaData.
type ConnectorMetadataQuery struct {
	reader core.ConnectorAccountReader
}

func NewConnectorMetadataQuery(reader core.ConnectorAccountReader) *ConnectorMetadataQuery {
	return &ConnectorMetadataQuery{reader: reader}
}

func (q *ConnectorMetadataQuery) Query(ctx context.Context, msg ConnectorMetadataMessage) (json.RawMessage, error) {
	if q == nil || q.reader == nil {
		return nil, core.MissingDependency("query: connector account reader is required")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	account, err := q.reader.FindByMerchantConnectorID(ctx, msg.MerchantID, msg.MerchantConnectorID)
	if err != nil {
		return nil, err
	}
	raw, err := connector.RequireConnectorMeta(account.Metadata)
	if err != nil {
		return nil, core.WrapError(err, core.ErrorNoConnectorMetaData, "", map[string]any{
			"merchant_id":           account.MerchantID,
			"merchant_connector_id": account.MerchantConnectorID,
		})
	}
	return raw, nil
}
