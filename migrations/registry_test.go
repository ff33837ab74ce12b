package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	connectors "github.com/goliatone/go-connectors"
	_ "github.com/mattn/go-sqlite3"
)

func TestSources_ReturnsPostgresAndSQLite(t *testing.T) {
	sources, err := Sources(nil)
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}

	var postgresFound bool
	var sqliteFound bool
	for _, entry := range sources {
		matches, globErr := fs.Glob(entry.FS, "*.up.sql")
		if globErr != nil {
			t.Fatalf("glob %s: %v", entry.Dialect, globErr)
		}
		if len(matches) == 0 {
			t.Fatalf("expected %s migration files, got none", entry.Dialect)
		}
		switch entry.Dialect {
		case DialectPostgres:
			postgresFound = true
			if entry.Path != "data/sql/migrations" {
				t.Fatalf("unexpected postgres path %q", entry.Path)
			}
		case DialectSQLite:
			sqliteFound = true
			if entry.Path != "data/sql/migrations/sqlite" {
				t.Fatalf("unexpected sqlite path %q", entry.Path)
			}
		}
	}

	if !postgresFound {
		t.Fatalf("expected postgres filesystem")
	}
	if !sqliteFound {
		t.Fatalf("expected sqlite filesystem")
	}
}

func TestSources_AcceptsBareMigrationsDirectory(t *testing.T) {
	source := fstest.MapFS{
		"00001_init.up.sql":        &fstest.MapFile{Data: []byte("SELECT 1;")},
		"sqlite/00001_init.up.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	sources, err := Sources(source)
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	if sources[0].Path != "." || sources[1].Path != "sqlite" {
		t.Fatalf("unexpected paths %q and %q", sources[0].Path, sources[1].Path)
	}
}

func TestSources_RejectsDialectWithoutMigrations(t *testing.T) {
	source := fstest.MapFS{
		"data/sql/migrations/00001_init.up.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"data/sql/migrations/sqlite/README":     &fstest.MapFile{Data: []byte("empty")},
	}
	if _, err := Sources(source); err == nil {
		t.Fatalf("expected error for sqlite directory without migrations")
	}
}

func TestRegister_OnlySelectedDialects(t *testing.T) {
	var calls []Dialect
	plan, err := Register(context.Background(), func(_ context.Context, dialect Dialect, _ string, _ fs.FS) error {
		calls = append(calls, dialect)
		return nil
	}, WithDialects(" SQLite "))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(calls) != 1 {
		t.Fatalf("expected 1 registration call, got %d", len(calls))
	}
	if calls[0] != DialectSQLite {
		t.Fatalf("expected sqlite registration, got %q", calls[0])
	}
	if plan.Label != DefaultSourceLabel {
		t.Fatalf("expected default source label, got %q", plan.Label)
	}
}

func TestRegister_PropagatesRegisterErrors(t *testing.T) {
	boom := errors.New("boom")
	var label string
	_, err := Register(context.Background(), func(_ context.Context, _ Dialect, got string, _ fs.FS) error {
		label = got
		return boom
	}, WithSourceLabel("custom"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped register error, got %v", err)
	}
	if label != "custom" {
		t.Fatalf("expected custom label, got %q", label)
	}
}

func TestRegister_RequiresRegisterFunc(t *testing.T) {
	if _, err := Register(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil register function")
	}
}

func TestMerchantConnectorAccountsMigrationPair_ExistsForBothDialects(t *testing.T) {
	root := connectors.GetMigrationsFS()
	paths := []string{
		"data/sql/migrations/00001_connectors_merchant_connector_accounts.up.sql",
		"data/sql/migrations/00001_connectors_merchant_connector_accounts.down.sql",
		"data/sql/migrations/sqlite/00001_connectors_merchant_connector_accounts.up.sql",
		"data/sql/migrations/sqlite/00001_connectors_merchant_connector_accounts.down.sql",
	}
	for _, migrationPath := range paths {
		content, err := fs.ReadFile(root, migrationPath)
		if err != nil {
			t.Fatalf("read migration %s: %v", migrationPath, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			t.Fatalf("expected migration %s to have SQL content", migrationPath)
		}
	}
}

func TestSQLiteMerchantConnectorAccountsMigration_ApplyAndRollback(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrations-merchant-connector-accounts?mode=memory&cache=shared&_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	root := connectors.GetMigrationsFS()
	sqliteMigrations, err := fs.Sub(root, "data/sql/migrations/sqlite")
	if err != nil {
		t.Fatalf("resolve sqlite migrations: %v", err)
	}

	if err := execSQLMigration(
		context.Background(),
		db,
		sqliteMigrations,
		"00001_connectors_merchant_connector_accounts.up.sql",
	); err != nil {
		t.Fatalf("apply merchant connector accounts migration up: %v", err)
	}

	insertStatement := `
		INSERT INTO merchant_connector_accounts (
			id,
			merchant_id,
			connector_name,
			merchant_connector_id,
			metadata
		) VALUES (?, ?, ?, ?, ?)
	`
	if _, err := db.ExecContext(
		context.Background(),
		insertStatement,
		"mca-1",
		"merchant_1",
		"adyen",
		"mca_adyen_1",
		`{"terminal_id":"t1"}`,
	); err != nil {
		t.Fatalf("insert seed row: %v", err)
	}
	if _, err := db.ExecContext(
		context.Background(),
		insertStatement,
		"mca-2",
		"merchant_1",
		"adyen",
		"mca_adyen_1",
		`{}`,
	); err == nil {
		t.Fatalf("expected unique index violation for duplicate merchant connector id")
	}

	var connectorType string
	if err := db.QueryRowContext(
		context.Background(),
		`SELECT connector_type FROM merchant_connector_accounts WHERE id = ?`,
		"mca-1",
	).Scan(&connectorType); err != nil {
		t.Fatalf("select seed row: %v", err)
	}
	if connectorType != "payment_processor" {
		t.Fatalf("expected default connector type, got %q", connectorType)
	}

	if err := execSQLMigration(
		context.Background(),
		db,
		sqliteMigrations,
		"00001_connectors_merchant_connector_accounts.down.sql",
	); err != nil {
		t.Fatalf("apply merchant connector accounts migration down: %v", err)
	}

	var count int
	if err := db.QueryRowContext(
		context.Background(),
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`,
		"merchant_connector_accounts",
	).Scan(&count); err != nil {
		t.Fatalf("query sqlite_master after down migration: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected merchant_connector_accounts to be dropped after down migration")
	}
}

func execSQLMigration(ctx context.Context, db *sql.DB, fsys fs.FS, filename string) error {
	content, err := fs.ReadFile(fsys, filepath.Clean(filename))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(content))
	return err
}
