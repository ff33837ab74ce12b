package sqlstore

import (
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

func merchantConnectorAccountHandlers() repository.ModelHandlers[*merchantConnectorAccountRecord] {
	return repository.ModelHandlers[*merchantConnectorAccountRecord]{
		NewRecord: func() *merchantConnectorAccountRecord {
			return &merchantConnectorAccountRecord{}
		},
		GetID: func(record *merchantConnectorAccountRecord) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return parseUUID(record.ID)
		},
		SetID: func(record *merchantConnectorAccountRecord, id uuid.UUID) {
			if record == nil {
				return
			}
			record.ID = id.String()
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(record *merchantConnectorAccountRecord) string {
			if record == nil {
				return ""
			}
			return strings.TrimSpace(record.ID)
		},
	}
}

func parseUUID(value string) uuid.UUID {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil
	}
	return parsed
}
