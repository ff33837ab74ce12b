package core

import (
	"fmt"
	"strings"
)

const (
	DefaultWebhookMaxDepth  = 128
	DefaultWebhookMaxValues = 100000
	DefaultWebhookSeparator = "/"
	maxCurrencyExponent     = 4
)

type CurrencyConfig struct {
	// ExponentOverrides maps an ISO 4217 code to the number of minor-unit
	// digits a processor expects for it.
	ExponentOverrides map[string]int `koanf:"exponent_overrides" mapstructure:"exponent_overrides"`
}

type WebhookConfig struct {
	MaxDepth  int    `koanf:"max_depth" mapstructure:"max_depth"`
	MaxValues int    `koanf:"max_values" mapstructure:"max_values"`
	Separator string `koanf:"separator" mapstructure:"separator"`
}

type Config struct {
	ServiceName string         `koanf:"service_name" mapstructure:"service_name"`
	Currency    CurrencyConfig `koanf:"currency" mapstructure:"currency"`
	Webhooks    WebhookConfig  `koanf:"webhooks" mapstructure:"webhooks"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "connectors",
		Currency:    CurrencyConfig{},
		Webhooks: WebhookConfig{
			MaxDepth:  DefaultWebhookMaxDepth,
			MaxValues: DefaultWebhookMaxValues,
			Separator: DefaultWebhookSeparator,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	for code, exponent := range c.Currency.ExponentOverrides {
		if len(strings.TrimSpace(code)) != 3 {
			return fmt.Errorf("core: currency.exponent_overrides key %q is not an ISO 4217 code", code)
		}
		if exponent < 0 || exponent > maxCurrencyExponent {
			return fmt.Errorf("core: currency.exponent_overrides[%s]=%d is out of range", code, exponent)
		}
	}
	if c.Webhooks.MaxDepth <= 0 {
		return fmt.Errorf("core: webhooks.max_depth must be positive")
	}
	if c.Webhooks.MaxValues <= 0 {
		return fmt.Errorf("core: webhooks.max_values must be positive")
	}
	return nil
}
