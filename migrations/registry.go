// Package migrations exposes the connector account schema to a host's
// migration runner, one filesystem per SQL dialect.
package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	connectors "github.com/goliatone/go-connectors"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const (
	DefaultSourceLabel = "go-connectors"
	migrationsDir      = "data/sql/migrations"
)

// dialectDirs lists each dialect's directory relative to the migrations root.
var dialectDirs = []struct {
	dialect Dialect
	dir     string
}{
	{DialectPostgres, "."},
	{DialectSQLite, "sqlite"},
}

// Source is one dialect's migration directory.
type Source struct {
	Dialect Dialect
	Path    string
	FS      fs.FS
}

type Plan struct {
	Label    string
	Dialects []Dialect
	Sources  []Source
}

type RegisterFunc func(ctx context.Context, dialect Dialect, label string, fsys fs.FS) error

type Option func(*Plan)

func WithSourceLabel(label string) Option {
	return func(p *Plan) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			p.Label = trimmed
		}
	}
}

// WithDialects restricts registration to the given dialects.
func WithDialects(dialects ...Dialect) Option {
	return func(p *Plan) {
		if normalized := normalizeDialects(dialects); len(normalized) > 0 {
			p.Dialects = normalized
		}
	}
}

// WithSources replaces the embedded sources, for hosts that ship their own
// copy of the schema.
func WithSources(sources ...Source) Option {
	return func(p *Plan) {
		kept := make([]Source, 0, len(sources))
		for _, source := range sources {
			dialect := normalizeDialect(source.Dialect)
			if dialect == "" || source.FS == nil {
				continue
			}
			source.Dialect = dialect
			kept = append(kept, source)
		}
		if len(kept) > 0 {
			p.Sources = kept
		}
	}
}

// Sources resolves every dialect directory below root, or below the embedded
// tree when root is nil. A dialect directory without *.up.sql files is an
// error.
func Sources(root fs.FS) ([]Source, error) {
	if root == nil {
		root = connectors.GetMigrationsFS()
	}
	base, basePath, err := locateRoot(root)
	if err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(dialectDirs))
	for _, entry := range dialectDirs {
		fsys := base
		if entry.dir != "." {
			if fsys, err = fs.Sub(base, entry.dir); err != nil {
				return nil, fmt.Errorf("migrations: resolve %s directory: %w", entry.dialect, err)
			}
		}
		sourcePath := path.Join(basePath, entry.dir)
		ups, err := fs.Glob(fsys, "*.up.sql")
		if err != nil {
			return nil, fmt.Errorf("migrations: glob %s %s: %w", entry.dialect, sourcePath, err)
		}
		if len(ups) == 0 {
			return nil, fmt.Errorf("migrations: %s directory %q has no *.up.sql files", entry.dialect, sourcePath)
		}
		sources = append(sources, Source{Dialect: entry.dialect, Path: sourcePath, FS: fsys})
	}
	return sources, nil
}

// Register passes each selected dialect's filesystem to registerFn, usually
// wrapping a persistence client's RegisterSQLMigrations.
func Register(ctx context.Context, registerFn RegisterFunc, opts ...Option) (Plan, error) {
	plan := Plan{
		Label:    DefaultSourceLabel,
		Dialects: []Dialect{DialectPostgres, DialectSQLite},
	}
	sources, err := Sources(nil)
	if err != nil {
		return plan, err
	}
	plan.Sources = sources

	for _, opt := range opts {
		if opt != nil {
			opt(&plan)
		}
	}
	if registerFn == nil {
		return plan, fmt.Errorf("migrations: register function is required")
	}

	for _, source := range plan.Sources {
		if !slices.Contains(plan.Dialects, source.Dialect) {
			continue
		}
		if err := registerFn(ctx, source.Dialect, plan.Label, source.FS); err != nil {
			return plan, fmt.Errorf("migrations: register %s (%s): %w", source.Dialect, source.Path, err)
		}
	}
	return plan, nil
}

func locateRoot(root fs.FS) (fs.FS, string, error) {
	if info, err := fs.Stat(root, migrationsDir); err == nil && info.IsDir() {
		sub, err := fs.Sub(root, migrationsDir)
		if err != nil {
			return nil, "", fmt.Errorf("migrations: open %s: %w", migrationsDir, err)
		}
		return sub, migrationsDir, nil
	}
	// A root that already is the migrations directory.
	if ups, err := fs.Glob(root, "*.up.sql"); err == nil && len(ups) > 0 {
		return root, ".", nil
	}
	return nil, "", fmt.Errorf("migrations: %s not found", migrationsDir)
}

func normalizeDialect(dialect Dialect) Dialect {
	return Dialect(strings.ToLower(strings.TrimSpace(string(dialect))))
}

func normalizeDialects(dialects []Dialect) []Dialect {
	out := make([]Dialect, 0, len(dialects))
	for _, dialect := range dialects {
		normalized := normalizeDialect(dialect)
		if normalized == "" || slices.Contains(out, normalized) {
			continue
		}
		out = append(out, normalized)
	}
	return out
}
