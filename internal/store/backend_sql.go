package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/migrations"
	"github.com/vperelygin/go-conf-sync/models"
)

// documentRowID is the fixed primary key of the single-row document table.
const documentRowID = 1

// sqlBackend persists the document as a JSON blob in a single-row table,
// shared between the sqlite and postgres drivers. Only the placeholder
// format and the migration dialect differ.
type sqlBackend struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLiteBackend opens (creating if needed) an sqlite database at path and
// runs pending migrations.
func NewSQLiteBackend(ctx context.Context, path string, log *logger.Logger) (DocumentBackend, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewSQLiteBackend").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteBackend").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn, "sqlite3"); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqlBackend{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

// NewPostgresBackend connects to postgres via the pgx stdlib driver and runs
// pending migrations.
func NewPostgresBackend(ctx context.Context, dsn string, log *logger.Logger) (DocumentBackend, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewPostgresBackend").
			Str("pg_code", classifyPostgresError(err)).
			Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn, "pgx"); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqlBackend{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  log,
	}, nil
}

func (s *sqlBackend) Load(ctx context.Context) (models.Tree, error) {
	query, args, err := s.builder.
		Select("body").
		From("config_document").
		Where(sq.Eq{"id": documentRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document select: %w", err)
	}

	var body string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Err(err).Str("pg_code", classifyPostgresError(err)).Msg("document select failed")
		return nil, fmt.Errorf("%w: load document row: %w", ErrStoreUnavailable, err)
	}

	var doc models.Tree
	if err = json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode document row: %w", err)
	}

	return doc, nil
}

func (s *sqlBackend) Save(ctx context.Context, doc models.Tree) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	query, args, err := s.builder.
		Insert("config_document").
		Columns("id", "body").
		Values(documentRowID, string(payload)).
		Suffix("ON CONFLICT (id) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build document upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("pg_code", classifyPostgresError(err)).Msg("document upsert failed")
		return fmt.Errorf("save document row: %w", err)
	}

	return nil
}

func (s *sqlBackend) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
