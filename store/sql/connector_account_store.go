package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-connectors/core"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// MaxAccountsPerMerchant bounds ListByMerchant.
const MaxAccountsPerMerchant = 500

type ConnectorAccountStore struct {
	db   *bun.DB
	repo repository.Repository[*merchantConnectorAccountRecord]
	now  func() time.Time
}

func NewConnectorAccountStore(db *bun.DB) (*ConnectorAccountStore, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlstore: bun db is required")
	}
	repo := repository.NewRepository[*merchantConnectorAccountRecord](db, merchantConnectorAccountHandlers())
	if validator, ok := repo.(repository.Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, fmt.Errorf("sqlstore: invalid merchant connector account repository wiring: %w", err)
		}
	}
	return &ConnectorAccountStore{
		db:   db,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *ConnectorAccountStore) Create(
	ctx context.Context,
	in core.NewMerchantConnectorAccount,
) (core.MerchantConnectorAccount, error) {
	if s == nil || s.repo == nil {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("connector account store")
	}
	in.MerchantID = strings.TrimSpace(in.MerchantID)
	in.ConnectorName = strings.TrimSpace(in.ConnectorName)
	in.MerchantConnectorID = strings.TrimSpace(in.MerchantConnectorID)
	if err := in.Validate(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}

	record := newMerchantConnectorAccountRecord(in, uuid.NewString(), s.now())
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return core.MerchantConnectorAccount{}, mapWriteError(err, map[string]any{
			"merchant_id":           in.MerchantID,
			"merchant_connector_id": in.MerchantConnectorID,
		})
	}
	return created.toDomain(), nil
}

func (s *ConnectorAccountStore) Get(ctx context.Context, id string) (core.MerchantConnectorAccount, error) {
	if s == nil || s.repo == nil {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("connector account store")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return core.MerchantConnectorAccount{}, core.MissingField("id")
	}
	record, err := s.repo.GetByID(ctx, trimmed)
	if err != nil {
		if isNotFound(err) {
			return core.MerchantConnectorAccount{}, core.ErrConnectorAccountNotFound
		}
		return core.MerchantConnectorAccount{}, err
	}
	return record.toDomain(), nil
}

func (s *ConnectorAccountStore) FindByMerchantConnectorID(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
) (core.MerchantConnectorAccount, error) {
	if s == nil || s.db == nil {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("connector account store")
	}
	record, err := findMerchantConnectorAccount(ctx, s.db, merchantID, merchantConnectorID)
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return record.toDomain(), nil
}

// ListByMerchant returns the merchant's accounts, oldest first. A merchant
// with more than MaxAccountsPerMerchant matching accounts fails with
// IsListTruncated rather than returning a partial list.
func (s *ConnectorAccountStore) ListByMerchant(
	ctx context.Context,
	merchantID string,
	includeDisabled bool,
) ([]core.MerchantConnectorAccount, error) {
	if s == nil || s.repo == nil {
		return nil, errStoreNotConfigured("connector account store")
	}
	trimmed := strings.TrimSpace(merchantID)
	if trimmed == "" {
		return nil, core.MissingField("merchant_id")
	}
	criteria := []repository.SelectCriteria{
		repository.SelectBy("merchant_id", "=", trimmed),
		repository.OrderBy("created_at ASC"),
		repository.SelectPaginate(MaxAccountsPerMerchant, 0),
	}
	if !includeDisabled {
		criteria = append(criteria, repository.SelectCriteria(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("(?TableAlias.disabled IS NULL OR ?TableAlias.disabled = ?)", false)
		}))
	}
	records, total, err := s.repo.List(ctx, criteria...)
	if err != nil {
		return nil, err
	}
	if total > len(records) {
		return nil, errListTruncated(trimmed, total)
	}
	out := make([]core.MerchantConnectorAccount, 0, len(records))
	for _, record := range records {
		out = append(out, record.toDomain())
	}
	return out, nil
}

func (s *ConnectorAccountStore) Update(
	ctx context.Context,
	merchantID string,
	merchantConnectorID string,
	update core.MerchantConnectorAccountUpdate,
) (core.MerchantConnectorAccount, error) {
	if s == nil || s.db == nil {
		return core.MerchantConnectorAccount{}, errStoreNotConfigured("connector account store")
	}
	if err := update.Validate(); err != nil {
		return core.MerchantConnectorAccount{}, err
	}

	var updated core.MerchantConnectorAccount
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		record, err := findMerchantConnectorAccount(ctx, tx, merchantID, merchantConnectorID)
		if err != nil {
			return err
		}
		record.applyDomain(update.Apply(record.toDomain()))
		record.UpdatedAt = s.now()
		if _, err := tx.NewUpdate().
			Model(record).
			Where("id = ?", record.ID).
			Exec(ctx); err != nil {
			return mapWriteError(err, map[string]any{
				"merchant_id":           record.MerchantID,
				"merchant_connector_id": record.MerchantConnectorID,
			})
		}
		updated = record.toDomain()
		return nil
	})
	if err != nil {
		return core.MerchantConnectorAccount{}, err
	}
	return updated, nil
}

func findMerchantConnectorAccount(
	ctx context.Context,
	db bun.IDB,
	merchantID string,
	merchantConnectorID string,
) (*merchantConnectorAccountRecord, error) {
	merchantID = strings.TrimSpace(merchantID)
	merchantConnectorID = strings.TrimSpace(merchantConnectorID)
	if merchantID == "" {
		return nil, core.MissingField("merchant_id")
	}
	if merchantConnectorID == "" {
		return nil, core.MissingField("merchant_connector_id")
	}
	record := &merchantConnectorAccountRecord{}
	err := db.NewSelect().
		Model(record).
		Where("?TableAlias.merchant_id = ?", merchantID).
		Where("?TableAlias.merchant_connector_id = ?", merchantConnectorID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, core.ErrConnectorAccountNotFound
		}
		return nil, err
	}
	return record, nil
}
