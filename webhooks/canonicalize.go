package webhooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/goliatone/go-connectors/core"
)

// DecodePayload decodes a webhook body, keeping numbers in their textual
// form.
func DecodePayload(body []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, core.WrapError(err, core.ErrorResponseDeserializationFailed, "failed to decode webhook payload", nil)
	}
	if decoder.More() {
		return nil, core.NewError(core.ErrorResponseDeserializationFailed, "webhook payload has trailing data", nil)
	}
	return value, nil
}

// Canonicalizer flattens decoded payloads. Zero limits fall back to the
// configured defaults.
type Canonicalizer struct {
	MaxDepth  int
	MaxValues int
}

func NewCanonicalizer(cfg core.WebhookConfig) Canonicalizer {
	return Canonicalizer{MaxDepth: cfg.MaxDepth, MaxValues: cfg.MaxValues}
}

var defaultCanonicalizer = Canonicalizer{}

// CollectValuesExcludingSignature flattens value with the default limits.
func CollectValuesExcludingSignature(value any, signature string) ([]string, error) {
	return defaultCanonicalizer.Collect(value, signature)
}

func CollectAndSortValuesExcludingSignature(value any, signature string) ([]string, error) {
	return defaultCanonicalizer.CollectSorted(value, signature)
}

// Collect emits one string per primitive leaf of value, depth-first. Strings
// equal to signature are dropped. Object members are visited in ascending
// key order and keys themselves are never emitted.
func (c Canonicalizer) Collect(value any, signature string) ([]string, error) {
	walker := canonicalWalker{
		signature: signature,
		maxDepth:  c.MaxDepth,
		maxValues: c.MaxValues,
	}
	if walker.maxDepth <= 0 {
		walker.maxDepth = core.DefaultWebhookMaxDepth
	}
	if walker.maxValues <= 0 {
		walker.maxValues = core.DefaultWebhookMaxValues
	}
	if err := walker.walk(value, 0); err != nil {
		return nil, err
	}
	if walker.out == nil {
		return []string{}, nil
	}
	return walker.out, nil
}

// CollectSorted is Collect followed by a lexicographic byte-order sort.
func (c Canonicalizer) CollectSorted(value any, signature string) ([]string, error) {
	values, err := c.Collect(value, signature)
	if err != nil {
		return nil, err
	}
	slices.Sort(values)
	return values, nil
}

type canonicalWalker struct {
	signature string
	maxDepth  int
	maxValues int
	out       []string
}

func (w *canonicalWalker) emit(value string) error {
	if len(w.out) >= w.maxValues {
		return core.NewError(core.ErrorParsingFailed, fmt.Sprintf("webhook payload exceeds %d values", w.maxValues), nil)
	}
	w.out = append(w.out, value)
	return nil
}

func (w *canonicalWalker) walk(value any, depth int) error {
	if depth > w.maxDepth {
		return core.NewError(core.ErrorParsingFailed, fmt.Sprintf("webhook payload exceeds depth %d", w.maxDepth), nil)
	}
	switch typed := value.(type) {
	case nil:
		return w.emit("null")
	case bool:
		return w.emit(strconv.FormatBool(typed))
	case json.Number:
		return w.emit(formatNumber(typed.String()))
	case float64:
		return w.emit(fmt.Sprintf("%.2f", typed))
	case int:
		return w.emit(fmt.Sprintf("%.2f", float64(typed)))
	case int64:
		return w.emit(fmt.Sprintf("%.2f", float64(typed)))
	case string:
		if typed == w.signature {
			return nil
		}
		return w.emit(typed)
	case []any:
		for _, item := range typed {
			if err := w.walk(item, depth+1); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if err := w.walk(typed[key], depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return core.NewError(core.ErrorParsingFailed, fmt.Sprintf("unsupported webhook value %T", value), nil)
	}
}

// formatNumber renders two decimals when text is a finite float and the raw
// text otherwise.
func formatNumber(text string) string {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return text
	}
	return fmt.Sprintf("%.2f", parsed)
}
