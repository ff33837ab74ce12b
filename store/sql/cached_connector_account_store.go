package sqlstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-connectors/core"
	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

const connectorAccountCacheKeyPrefix = "go-connectors::merchant_connector_account::v1"

// CachedConnectorAccountStore serves account reads through a cache and
// invalidates entries on update. Create does not touch the cache.
type CachedConnectorAccountStore struct {
	base  core.ConnectorAccountStore
	cache repositorycache.CacheService
}

func NewCachedConnectorAccountStore(
	base core.ConnectorAccountStore,
	cacheService repositorycache.CacheService,
) (*CachedConnectorAccountStore, error) {
	if base == nil {
		return nil, fmt.Errorf("sqlstore: base connector account store is required")
	}
	if cacheService == nil {
		return nil, fmt.Errorf("sqlstore: connector account cache service is required")
	}
	return &CachedConnectorAccountStore{base: base, cache: cacheService}, nil
}

// ConnectorAccountCacheKey returns
// go-connectors::merchant_connector_account::v1::<merchant_id>::<merchant_connector_id>
// with each segment URL-path escaped.
func ConnectorAccountCacheKey(merchantID, merchantConnectorID string) (string, error) {
	merchantID = strings.TrimSpace(merchantID)
	merchantConnectorID = strings.TrimSpace(merchantConnectorID)
	if merchantID == "" {
		return "", core.MissingField("merchant_id")
	}
	if merchantConnectorID == "" {
		return "", core.MissingField("merchant_connector_id")
	}
	return strings.Join([]string{
		connectorAccountCacheKeyPrefix,
		url.PathEscape(merchantID),
		url.PathEscape(merchantConnectorID),
	}, "::"), nil
}

func (s *CachedConnectorAccountStore) configured() bool {
	return s != nil && s.base != nil && s.cache != nil
}

func (s *CachedConnectorAccountStore) Create(
	ctx context.Context,
	in core.NewMerchantConnectorAccount,
) (core.MerchantConnectorAccount, error) {
	if !s.configured() {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("cached connector account store")
	}
	return s.base.Create(ctx, in)
}

// Get reads by primary key and bypasses the cache.
func (s *CachedConnectorAccountStore) Get(ctx context.Context, id string) (core.MerchantConnectorAccount, error) {
	if !s.configured() {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("cached connector account store")
	}
	return s.base.Get(ctx, id)
}

func (s *CachedConnectorAccountStore) FindByMerchantConnectorID(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
) (core.MerchantConnectorAccount, error) {
	if !s.configured() {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("cached connector account store")
	}
	cacheKey, err := ConnectorAccountCacheKey(merchantID, merchantConnectorID)
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	account, err := repositorycache.GetOrFetch(ctx, s.cache, cacheKey, func(ctx context.Context) (core.MerchantConnectorAccount, error) {
		return s.base.FindByMerchantConnectorID(ctx, merchantID, merchantConnectorID)
	})
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return cloneAccount(account), nil
}

func (s *CachedConnectorAccountStore) Update(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
	update core.MerchantConnectorAccountUpdate,
) (core.MerchantConnectorAccount, error) {
	if !s.configured() {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("cached connector account store")
	}
	updated, err := s.base.Update(ctx, merchantID, merchantConnectorID, update)
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	cacheKey, err := ConnectorAccountCacheKey(merchantID, merchantConnectorID)
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return updated, nil
}

func cloneAccount(account core.MerchantConnectorAccount) core.MerchantConnectorAccount {
	cloned := account
	cloned.ConnectorAccountDetails = cloneRaw(account.ConnectorAccountDetails)
	cloned.PaymentMethodsEnabled = cloneRawList(account.PaymentMethodsEnabled)
	cloned.Metadata = cloneRaw(account.Metadata)
	cloned.TestMode = cloneBool(account.TestMode)
	cloned.Disabled = cloneBool(account.Disabled)
	cloned.BusinessSubLabel = cloneString(account.BusinessSubLabel)
	return cloned
}
