package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

func newMockBackend(t *testing.T) (*sqlBackend, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	backend := &sqlBackend{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger.Nop(),
	}
	return backend, mock
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSQLBackend_Load(t *testing.T) {
	backend, mock := newMockBackend(t)

	mock.ExpectQuery(`SELECT body FROM config_document WHERE id = \$1`).
		WithArgs(documentRowID).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`{"devtools":true}`))

	doc, err := backend.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Tree{"devtools": true}, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_Load_NoRowMeansFirstRun(t *testing.T) {
	backend, mock := newMockBackend(t)

	mock.ExpectQuery(`SELECT body FROM config_document WHERE id = \$1`).
		WithArgs(documentRowID).
		WillReturnError(sql.ErrNoRows)

	doc, err := backend.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_Load_CorruptRowErrors(t *testing.T) {
	backend, mock := newMockBackend(t)

	mock.ExpectQuery(`SELECT body FROM config_document WHERE id = \$1`).
		WithArgs(documentRowID).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`{broken`))

	_, err := backend.Load(context.Background())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSQLBackend_Save_Upserts(t *testing.T) {
	backend, mock := newMockBackend(t)

	mock.ExpectExec(`INSERT INTO config_document \(id,body\) VALUES \(\$1,\$2\) ON CONFLICT \(id\) DO UPDATE SET body = excluded\.body, updated_at = CURRENT_TIMESTAMP`).
		WithArgs(documentRowID, `{"devtools":false}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := backend.Save(context.Background(), models.Tree{"devtools": false})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_Save_PropagatesExecError(t *testing.T) {
	backend, mock := newMockBackend(t)

	mock.ExpectExec(`INSERT INTO config_document`).
		WillReturnError(sql.ErrConnDone)

	err := backend.Save(context.Background(), models.Tree{"devtools": false})

	assert.ErrorIs(t, err, sql.ErrConnDone)
}
