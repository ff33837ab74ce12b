package connector

import (
	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/currency"
)

type RefundsData struct {
	RefundID               string        `json:"refund_id"`
	ConnectorTransactionID string        `json:"connector_transaction_id"`
	ConnectorRefundID      *string       `json:"connector_refund_id,omitempty"`
	Currency               currency.Code `json:"currency"`
	PaymentAmount          int64         `json:"payment_amount"`
	RefundAmount           int64         `json:"refund_amount"`
	Reason                 *string       `json:"reason,omitempty"`
}

type RefundsRequest interface {
	GetConnectorRefundID() (string, error)
}

// GetConnectorRefundID fails with MissingConnectorTransactionID, keeping the
// missing connector_refund_id field as the cause.
func (d RefundsData) GetConnectorRefundID() (string, error) {
	if d.ConnectorRefundID == nil {
		return "", core.WrapError(core.MissingField("connector_refund_id"), core.ErrorMissingConnectorTransactionID, "", map[string]any{
			core.MetadataFieldName: "connector_refund_id",
		})
	}
	return *d.ConnectorRefundID, nil
}

type AccessTokenRequestData struct {
	AppID Secret  `json:"app_id"`
	ID    *string `json:"id,omitempty"`
}

type AccessTokenRequest interface {
	GetRequestID() (string, error)
}

// GetRequestID is read off the refresh token envelope, hence the request
// prefix in the field path.
func (d AccessTokenRequestData) GetRequestID() (string, error) {
	return required(d.ID, "request.id")
}
