package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(n)
}

func TestSplitStatements(t *testing.T) {
	content := `-- header comment
CREATE TABLE a (id NUMBER);

CREATE INDEX idx_a ON a(id);
   ;
`
	assert.Equal(t, []string{"CREATE TABLE a (id NUMBER)", "CREATE INDEX idx_a ON a(id)"}, splitStatements(content))
}

func TestRunMigrations_AppliesPending(t *testing.T) {
	db, mock := setupTestDB(t)
	files := fstest.MapFS{
		"migrations/000001_a.up.sql":   {Data: []byte("CREATE TABLE a (id NUMBER);")},
		"migrations/000002_b.up.sql":   {Data: []byte("CREATE TABLE b (id NUMBER);\nCREATE INDEX idx_b ON b(id);")},
		"migrations/000002_b.down.sql": {Data: []byte("DROP TABLE b;")},
	}

	mock.ExpectQuery(migrationTableExistsQuery).WillReturnRows(countRows(0))
	mock.ExpectExec(createMigrationTable).WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(migrationAppliedQuery).WithArgs("000001_a").WillReturnRows(countRows(1))

	mock.ExpectQuery(migrationAppliedQuery).WithArgs("000002_b").WillReturnRows(countRows(0))
	mock.ExpectExec("CREATE TABLE b (id NUMBER)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX idx_b ON b(id)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(recordMigration).WithArgs("000002_b").WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := runMigrations(context.Background(), db, files)
	require.NoError(t, err)
	assert.Equal(t, []string{"000002_b"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	files := fstest.MapFS{
		"migrations/000001_a.up.sql": {Data: []byte("CREATE TABLE a (id NUMBER);")},
	}

	mock.ExpectQuery(migrationTableExistsQuery).WillReturnRows(countRows(1))
	mock.ExpectQuery(migrationAppliedQuery).WithArgs("000001_a").WillReturnRows(countRows(0))
	mock.ExpectExec("CREATE TABLE a (id NUMBER)").WillReturnError(errors.New("ORA-00955: name is already used"))

	applied, err := runMigrations(context.Background(), db, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000001_a")
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrationsParse(t *testing.T) {
	names, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	for _, entry := range names {
		content, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		require.NoError(t, err)
		stmts := splitStatements(string(content))
		assert.NotEmpty(t, stmts, entry.Name())
		for _, stmt := range stmts {
			assert.Regexp(t, regexp.MustCompile(`^CREATE `), stmt)
		}
	}
}
