package connectors

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-connectors/webhooks"
)

// VerifierPack is a named set of webhook verifiers keyed by connector name.
type VerifierPack struct {
	Name      string
	Verifiers map[string]webhooks.Verifier
}

type CommandQueryBundleFactory func(service CommandQueryService) (any, error)

type ExtensionHooks struct {
	mu sync.RWMutex

	verifierPacks map[string]VerifierPack
	bundles       map[string]CommandQueryBundleFactory
}

func NewExtensionHooks() *ExtensionHooks {
	return &ExtensionHooks{
		verifierPacks: map[string]VerifierPack{},
		bundles:       map[string]CommandQueryBundleFactory{},
	}
}

func (h *ExtensionHooks) RegisterVerifierPack(pack VerifierPack) error {
	if h == nil {
		return fmt.Errorf("connectors: extension hooks are nil")
	}
	name := strings.TrimSpace(pack.Name)
	if name == "" {
		return fmt.Errorf("connectors: verifier pack name is required")
	}
	if len(pack.Verifiers) == 0 {
		return fmt.Errorf("connectors: verifier pack %q has no verifiers", name)
	}

	normalized := VerifierPack{
		Name:      name,
		Verifiers: make(map[string]webhooks.Verifier, len(pack.Verifiers)),
	}
	for connector, verifier := range pack.Verifiers {
		key := strings.ToLower(strings.TrimSpace(connector))
		if key == "" {
			return fmt.Errorf("connectors: verifier pack %q has an empty connector name", name)
		}
		if verifier == nil {
			return fmt.Errorf("connectors: verifier pack %q contains nil verifier for %q", name, key)
		}
		normalized.Verifiers[key] = verifier
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.verifierPacks[name]; exists {
		return fmt.Errorf("connectors: verifier pack %q already registered", name)
	}
	h.verifierPacks[name] = normalized
	return nil
}

func (h *ExtensionHooks) RegisterCommandQueryBundle(
	name string,
	factory CommandQueryBundleFactory,
) error {
	if h == nil {
		return fmt.Errorf("connectors: extension hooks are nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("connectors: command/query bundle name is required")
	}
	if factory == nil {
		return fmt.Errorf("connectors: command/query bundle %q factory is required", name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.bundles[name]; exists {
		return fmt.Errorf("connectors: command/query bundle %q already registered", name)
	}
	h.bundles[name] = factory
	return nil
}

// ApplyVerifierPacks registers every pack's verifiers in pack name order, so a
// later pack overrides an earlier one for the same connector.
func (h *ExtensionHooks) ApplyVerifierPacks(registry *webhooks.Registry) error {
	if h == nil {
		return nil
	}
	if registry == nil {
		return fmt.Errorf("connectors: webhook registry is required")
	}

	for _, pack := range h.VerifierPacks() {
		connectors := make([]string, 0, len(pack.Verifiers))
		for connector := range pack.Verifiers {
			connectors = append(connectors, connector)
		}
		sort.Strings(connectors)
		for _, connector := range connectors {
			if err := registry.Register(connector, pack.Verifiers[connector]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *ExtensionHooks) BuildCommandQueryBundles(
	service CommandQueryService,
) (map[string]any, error) {
	if h == nil {
		return map[string]any{}, nil
	}
	if service == nil {
		return nil, fmt.Errorf("connectors: command/query service is required")
	}

	h.mu.RLock()
	names := make([]string, 0, len(h.bundles))
	for name := range h.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	factories := make(map[string]CommandQueryBundleFactory, len(h.bundles))
	for name, factory := range h.bundles {
		factories[name] = factory
	}
	h.mu.RUnlock()

	result := make(map[string]any, len(names))
	for _, name := range names {
		bundle, err := factories[name](service)
		if err != nil {
			return nil, err
		}
		result[name] = bundle
	}
	return result, nil
}

func (h *ExtensionHooks) VerifierPacks() []VerifierPack {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.verifierPacks))
	for name := range h.verifierPacks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]VerifierPack, 0, len(names))
	for _, name := range names {
		pack := h.verifierPacks[name]
		verifiers := make(map[string]webhooks.Verifier, len(pack.Verifiers))
		for connector, verifier := range pack.Verifiers {
			verifiers[connector] = verifier
		}
		out = append(out, VerifierPack{Name: pack.Name, Verifiers: verifiers})
	}
	return out
}

func (h *ExtensionHooks) BundleNames() []string {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.bundles))
	for name := range h.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
