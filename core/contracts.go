package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"
)

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger

// ConnectorAccountReader supplies merchant connector accounts, and with them
// the connector metadata blobs the accessor layer deserializes.
type ConnectorAccountReader interface {
	Get(ctx context.Context, id string) (MerchantConnectorAccount, error)
	FindByMerchantConnectorID(
		ctx context.Context,
		merchantID string,
		merchantConnectorID string,
	) (MerchantConnectorAccount, error)
}

type ConnectorAccountStore interface {
	ConnectorAccountReader
	Create(ctx context.Context, in NewMerchantConnectorAccount) (MerchantConnectorAccount, error)
	Update(
		ctx context.Context,
		merchantID string,
		merchantConnectorID string,
		update MerchantConnectorAccountUpdate,
	) (MerchantConnectorAccount, error)
}
