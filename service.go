package connectors

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goliatone/go-connectors/connector"
	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/currency"
	"github.com/goliatone/go-connectors/query"
	sqlstore "github.com/goliatone/go-connectors/store/sql"
	"github.com/goliatone/go-connectors/webhooks"
	glog "github.com/goliatone/go-logger/glog"
)

type Config = core.Config

type Logger = core.Logger

type LoggerProvider = core.LoggerProvider

type MerchantConnectorAccount = core.MerchantConnectorAccount

func DefaultConfig() Config {
	return core.DefaultConfig()
}

// Service wires the connector helpers to configuration, logging, the
// merchant connector account store and the webhook verifier registry.
type Service struct {
	config        Config
	logger        Logger
	converter     *currency.Converter
	canonicalizer webhooks.Canonicalizer
	webhooks      *webhooks.Registry
	accounts      core.ConnectorAccountStore
	lister        query.ConnectorAccountLister
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	builder := serviceBuilder{runtimeConfig: cfg}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve("connectors", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("connectors"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	resolved, err := core.ResolveConfig(
		context.Background(),
		builder.runtimeConfig,
		builder.configProvider,
		builder.optionsResolver,
	)
	if err != nil {
		return nil, core.WrapError(err, core.ErrorInternal, "connectors: invalid configuration", nil)
	}

	svc := &Service{
		config:        resolved,
		logger:        logger,
		canonicalizer: webhooks.NewCanonicalizer(resolved.Webhooks),
		webhooks:      webhooks.NewRegistry(),
	}
	if builder.exponentSource != nil {
		svc.converter = currency.NewConverter(builder.exponentSource)
	} else {
		svc.converter = currency.NewConverterFromConfig(resolved.Currency)
	}

	if err := svc.wireAccounts(builder); err != nil {
		return nil, err
	}
	for name, verifier := range builder.verifiers {
		if err := svc.webhooks.Register(name, verifier); err != nil {
			return nil, err
		}
	}
	if builder.hooks != nil {
		if err := builder.hooks.ApplyVerifierPacks(svc.webhooks); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

func (s *Service) wireAccounts(builder serviceBuilder) error {
	store := builder.accountStore
	if store == nil && builder.persistenceClient != nil {
		factory, err := sqlstore.NewRepositoryFactory().BuildStores(builder.persistenceClient)
		if err != nil {
			return core.WrapError(err, core.ErrorInternal, "connectors: build connector account store", nil)
		}
		store = factory.ConnectorAccountStore()
	}
	if store == nil {
		return nil
	}
	if lister, ok := store.(query.ConnectorAccountLister); ok {
		s.lister = lister
	}
	if builder.cacheService != nil {
		cached, err := sqlstore.NewCachedConnectorAccountStore(store, builder.cacheService)
		if err != nil {
			return core.WrapError(err, core.ErrorInternal, "connectors: wrap connector account store", nil)
		}
		store = cached
	}
	s.accounts = store
	return nil
}

func (s *Service) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.config
}

func (s *Service) Converter() *currency.Converter {
	if s == nil {
		return nil
	}
	return s.converter
}

func (s *Service) Canonicalizer() webhooks.Canonicalizer {
	if s == nil {
		return webhooks.Canonicalizer{}
	}
	return s.canonicalizer
}

func (s *Service) WebhookRegistry() *webhooks.Registry {
	if s == nil {
		return nil
	}
	return s.webhooks
}

func (s *Service) Create(ctx context.Context, in core.NewMerchantConnectorAccount) (out core.MerchantConnectorAccount, err error) {
	startedAt := time.Now()
	defer func() {
		s.observeOperation(ctx, startedAt, "connector_account.create", err, map[string]any{
			"merchant_id":               in.MerchantID,
			"merchant_connector_id":     in.MerchantConnectorID,
			"connector_name":            in.ConnectorName,
			"connector_account_details": core.RedactSensitiveJSON(in.ConnectorAccountDetails),
		})
	}()
	if err = s.requireAccounts(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return s.accounts.Create(ctx, in)
}

func (s *Service) Update(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
	update core.MerchantConnectorAccountUpdate,
) (out core.MerchantConnectorAccount, err error) {
	startedAt := time.Now()
	defer func() {
		s.observeOperation(ctx, startedAt, "connector_account.update", err, map[string]any{
			"merchant_id":               merchantID,
			"merchant_connector_id":     merchantConnectorID,
			"connector_account_details": core.RedactSensitiveJSON(update.ConnectorAccountDetails),
		})
	}()
	if err = s.requireAccounts(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return s.accounts.Update(ctx, merchantID, merchantConnectorID, update)
}

func (s *Service) Get(ctx context.Context, id string) (core.MerchantConnectorAccount, error) {
	if err := s.requireAccounts(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return s.accounts.Get(ctx, id)
}

func (s *Service) FindByMerchantConnectorID(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
) (core.MerchantConnectorAccount, error) {
	if err := s.requireAccounts(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return s.accounts.FindByMerchantConnectorID(ctx, merchantID, merchantConnectorID)
}

func (s *Service) ListByMerchant(
	ctx context.Context,
	merchantID string,
	includeDisabled bool,
) ([]core.MerchantConnectorAccount, error) {
	if s == nil || s.lister == nil {
		return nil, core.NotImplemented("connector account listing")
	}
	return s.lister.ListByMerchant(ctx, merchantID, includeDisabled)
}

// ConnectorMetadata returns the stored metadata blob of a merchant connector
// account, failing with NoConnectorMetaData when the account has none.
func (s *Service) ConnectorMetadata(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
) (raw json.RawMessage, err error) {
	startedAt := time.Now()
	defer func() {
		s.observeOperation(ctx, startedAt, "connector_account.metadata", err, map[string]any{
			"merchant_id":           merchantID,
			"merchant_connector_id": merchantConnectorID,
		})
	}()
	return query.NewConnectorMetadataQuery(s).Query(ctx, query.ConnectorMetadataMessage{
		MerchantID:          merchantID,
		MerchantConnectorID: merchantConnectorID,
	})
}

// DecodeConnectorMetadata loads the account metadata and decodes it into T.
func DecodeConnectorMetadata[T any](
	ctx context.Context,
	svc *Service,
	merchantID string,
	merchantConnectorID string,
) (T, error) {
	var zero T
	if svc == nil {
		return zero, core.NewError(core.ErrorInternal, "connectors: service is nil", nil)
	}
	account, err := svc.FindByMerchantConnectorID(ctx, merchantID, merchantConnectorID)
	if err != nil {
		return zero, err
	}
	return connector.ToConnectorMeta[T](accountMetaSource{account: account})
}

type accountMetaSource struct {
	account core.MerchantConnectorAccount
}

func (s accountMetaSource) GetConnectorMeta() (json.RawMessage, error) {
	return connector.RequireConnectorMeta(s.account.Metadata)
}

// VerifyWebhook dispatches req to the verifier registered for its connector.
func (s *Service) VerifyWebhook(ctx context.Context, req webhooks.Request) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observeOperation(ctx, startedAt, "webhook.verify", err, map[string]any{
			"connector":  req.Connector,
			"body_bytes": len(req.Body),
		})
	}()
	if s == nil || s.webhooks == nil {
		return core.NewError(core.ErrorInternal, "connectors: webhook registry is not configured", nil)
	}
	return s.webhooks.Verify(ctx, req)
}

func (s *Service) requireAccounts() error {
	if s == nil || s.accounts == nil {
		return core.NewError(core.ErrorInternal, "connectors: connector account store is not configured", nil)
	}
	return nil
}
