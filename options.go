package connectors

import (
	"github.com/goliatone/go-connectors/core"
	"github.com/goliatone/go-connectors/currency"
	"github.com/goliatone/go-connectors/webhooks"
	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

type Option func(*serviceBuilder)

type serviceBuilder struct {
	runtimeConfig     Config
	logger            Logger
	loggerProvider    LoggerProvider
	configProvider    core.ConfigProvider
	optionsResolver   core.OptionsResolver
	exponentSource    currency.ExponentSource
	persistenceClient any
	accountStore      core.ConnectorAccountStore
	cacheService      repositorycache.CacheService
	verifiers         map[string]webhooks.Verifier
	hooks             *ExtensionHooks
}

func WithLogger(logger Logger) Option {
	return func(b *serviceBuilder) {
		b.logger = logger
	}
}

func WithLoggerProvider(provider LoggerProvider) Option {
	return func(b *serviceBuilder) {
		b.loggerProvider = provider
	}
}

func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *serviceBuilder) {
		b.configProvider = provider
	}
}

func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *serviceBuilder) {
		b.optionsResolver = resolver
	}
}

// WithExponentSource replaces the config-driven exponent table.
func WithExponentSource(source currency.ExponentSource) Option {
	return func(b *serviceBuilder) {
		b.exponentSource = source
	}
}

// WithPersistenceClient builds the SQL connector account store from a
// *bun.DB or a go-persistence-bun client.
func WithPersistenceClient(client any) Option {
	return func(b *serviceBuilder) {
		b.persistenceClient = client
	}
}

func WithConnectorAccountStore(store core.ConnectorAccountStore) Option {
	return func(b *serviceBuilder) {
		b.accountStore = store
	}
}

// WithCacheService serves merchant connector account lookups through cache.
func WithCacheService(cache repositorycache.CacheService) Option {
	return func(b *serviceBuilder) {
		b.cacheService = cache
	}
}

func WithWebhookVerifier(connector string, verifier webhooks.Verifier) Option {
	return func(b *serviceBuilder) {
		if b.verifiers == nil {
			b.verifiers = map[string]webhooks.Verifier{}
		}
		b.verifiers[connector] = verifier
	}
}

func WithExtensionHooks(hooks *ExtensionHooks) Option {
	return func(b *serviceBuilder) {
		b.hooks = hooks
	}
}
