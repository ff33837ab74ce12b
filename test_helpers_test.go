package connectors

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-connectors/core"
	glog "github.com/goliatone/go-logger/glog"
)

type logCall struct {
	level string
	msg   string
	args  []any
}

type capturingLogger struct {
	mu    sync.Mutex
	calls []logCall
}

func (l *capturingLogger) record(level string, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, logCall{level: level, msg: msg, args: append([]any(nil), args...)})
}

func (l *capturingLogger) Trace(string, ...any) {}
func (l *capturingLogger) Debug(string, ...any) {}
func (l *capturingLogger) Warn(string, ...any)  {}
func (l *capturingLogger) Fatal(string, ...any) {}

func (l *capturingLogger) Info(msg string, args ...any) {
	l.record("info", msg, args)
}

func (l *capturingLogger) Error(msg string, args ...any) {
	l.record("error", msg, args)
}

func (l *capturingLogger) WithContext(context.Context) glog.Logger {
	return l
}

func (l *capturingLogger) snapshot() []logCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logCall(nil), l.calls...)
}

func (c logCall) field(key string) (any, bool) {
	for i := 0; i+1 < len(c.args); i += 2 {
		if name, ok := c.args[i].(string); ok && name == key {
			return c.args[i+1], true
		}
	}
	return nil, false
}

type memoryAccountStore struct {
	mu       sync.Mutex
	accounts map[string]core.MerchantConnectorAccount
	sequence int
}

func newMemoryAccountStore() *memoryAccountStore {
	return &memoryAccountStore{accounts: map[string]core.MerchantConnectorAccount{}}
}

func accountKey(merchantID, merchantConnectorID string) string {
	return strings.TrimSpace(merchantID) + "/" + strings.TrimSpace(merchantConnectorID)
}

func (s *memoryAccountStore) Create(_ context.Context, in core.NewMerchantConnectorAccount) (core.MerchantConnectorAccount, error) {
	if err := in.Validate(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := accountKey(in.MerchantID, in.MerchantConnectorID)
	if _, exists := s.accounts[key]; exists {
		return core.MerchantConnectorAccount{}, fmt.Errorf("duplicate merchant connector account %s", key)
	}
	s.sequence++
	account := core.MerchantConnectorAccount{
		ID:                      fmt.Sprintf("mca-%d", s.sequence),
		MerchantID:              strings.TrimSpace(in.MerchantID),
		ConnectorName:           in.ConnectorName,
		ConnectorAccountDetails: in.ConnectorAccountDetails,
		TestMode:                in.TestMode,
		Disabled:                in.Disabled,
		MerchantConnectorID:     strings.TrimSpace(in.MerchantConnectorID),
		ConnectorType:           core.ConnectorTypePaymentProcessor,
		Metadata:                in.Metadata,
		ConnectorLabel:          in.ConnectorLabel,
	}
	s.accounts[key] = account
	return account, nil
}

func (s *memoryAccountStore) Get(_ context.Context, id string) (core.MerchantConnectorAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return core.MerchantConnectorAccount{}, core.ErrConnectorAccountNotFound
}

func (s *memoryAccountStore) FindByMerchantConnectorID(
	_ context.Context,
	merchantID string,
	merchantConnectorID string,
) (core.MerchantConnectorAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountKey(merchantID, merchantConnectorID)]
	if !ok {
		return core.MerchantConnectorAccount{}, core.ErrConnectorAccountNotFound
	}
	return account, nil
}

func (s *memoryAccountStore) Update(
	_ context.Context,
	merchantID string,
	merchantConnectorID string,
	update core.MerchantConnectorAccountUpdate,
) (core.MerchantConnectorAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := accountKey(merchantID, merchantConnectorID)
	account, ok := s.accounts[key]
	if !ok {
		return core.MerchantConnectorAccount{}, core.ErrConnectorAccountNotFound
	}
	account = update.Apply(account)
	s.accounts[key] = account
	return account, nil
}

func (s *memoryAccountStore) ListByMerchant(
	_ context.Context,
	merchantID string,
	includeDisabled bool,
) ([]core.MerchantConnectorAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []core.MerchantConnectorAccount{}
	for _, account := range s.accounts {
		if account.MerchantID != merchantID {
			continue
		}
		if !includeDisabled && account.IsDisabled() {
			continue
		}
		out = append(out, account)
	}
	return out, nil
}
