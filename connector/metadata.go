package connector

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-connectors/core"
)

const connectorMetaField = "connector_meta_data"

// ConnectorMetaSource exposes a connector metadata blob.
type ConnectorMetaSource interface {
	GetConnectorMeta() (json.RawMessage, error)
}

// RequireConnectorMeta returns raw, treating empty input and a JSON null as
// absent.
func RequireConnectorMeta(raw json.RawMessage) (json.RawMessage, error) {
	return requireBlob(raw, connectorMetaField)
}

// requireBlob is the shared absent rule for metadata blobs: empty input and a
// JSON null are both missing field.
func requireBlob(raw json.RawMessage, field string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, core.MissingField(field)
	}
	return append(json.RawMessage(nil), trimmed...), nil
}

// ToConnectorMeta decodes the source's metadata into T. Absent and malformed
// metadata both fail with NoConnectorMetaData.
func ToConnectorMeta[T any](source ConnectorMetaSource) (T, error) {
	var out T
	if source == nil {
		return out, core.WrapError(core.MissingField(connectorMetaField), core.ErrorNoConnectorMetaData, "", nil)
	}
	raw, err := source.GetConnectorMeta()
	if err != nil {
		return out, core.WrapError(err, core.ErrorNoConnectorMetaData, "", nil)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, core.WrapError(err, core.ErrorNoConnectorMetaData, decodeMessage[T](), nil)
	}
	return out, nil
}

// ConnectorMetaFromValue decodes raw into T. Absent metadata is a missing
// field; malformed metadata fails with ParsingFailed.
func ConnectorMetaFromValue[T any](raw json.RawMessage) (T, error) {
	var out T
	value, err := RequireConnectorMeta(raw)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(value, &out); err != nil {
		return out, core.WrapError(err, core.ErrorParsingFailed, decodeMessage[T](), map[string]any{
			core.MetadataFieldName: connectorMetaField,
		})
	}
	return out, nil
}

func decodeMessage[T any]() string {
	var zero T
	return fmt.Sprintf("failed to decode connector metadata into %T", zero)
}
