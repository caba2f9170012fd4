package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/database"
)

func newSandboxFixture(t *testing.T) *SandboxService {
	t.Helper()
	db, err := database.InitSampleDB(&config.SandboxConfig{
		Path: filepath.Join(t.TempDir(), "sample.db"),
	})
	require.NoError(t, err)
	return NewSandboxService(db)
}

func TestSandboxRejectsNonSelect(t *testing.T) {
	svc := NewSandboxService(nil)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "   ", "query is empty"},
		{"insert statement", "INSERT INTO artists VALUES (9, 'x', 'y')", "forbidden keyword: INSERT"},
		{"bare drop", "DROP TABLE artists", "forbidden keyword: DROP"},
		{"drop in select", "SELECT * FROM artists; DROP TABLE artists", "forbidden keyword: DROP"},
		{"lowercase delete", "select * from artists where name = 'delete me'", "forbidden keyword: DELETE"},
		{"pragma", "select * from artists union select pragma_table_info('x')", "forbidden keyword: PRAGMA"},
		{"not a query", "EXPLAIN QUERY PLAN SELECT 1", "only SELECT queries are allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Execute(tt.query)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSandboxVerifyDoesNotExecute(t *testing.T) {
	// A nil DB proves verification never touches the database.
	svc := NewSandboxService(nil)

	require.NoError(t, svc.Verify("SELECT * FROM artists"))

	// The keyword is named even when the statement is not a SELECT.
	err := svc.Verify("DROP TABLE artists")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden keyword: DROP")
}

func TestSandboxAppendsLimit(t *testing.T) {
	svc := newSandboxFixture(t)

	result, err := svc.Execute("SELECT * FROM artists")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM artists LIMIT 100", result.ExecutedQuery)
	assert.Equal(t, 4, result.RowCount)
}

func TestSandboxKeepsExplicitLimit(t *testing.T) {
	svc := newSandboxFixture(t)

	result, err := svc.Execute("SELECT name FROM artists ORDER BY name LIMIT 2")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM artists ORDER BY name LIMIT 2", result.ExecutedQuery)
	assert.Equal(t, 2, result.RowCount)
}

func TestSandboxAllowsWithClause(t *testing.T) {
	svc := newSandboxFixture(t)

	result, err := svc.Execute("WITH us AS (SELECT * FROM artists WHERE country = 'US') SELECT name FROM us")
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)
}

func TestSandboxSchema(t *testing.T) {
	svc := newSandboxFixture(t)

	schemas, err := svc.Schema()
	require.NoError(t, err)
	require.Len(t, schemas, 3)
	assert.Equal(t, "artists", schemas[0].Name)
	assert.NotEmpty(t, schemas[0].Columns)
}

func TestSandboxSampleTable(t *testing.T) {
	svc := newSandboxFixture(t)

	result, err := svc.Sample("tracks")
	require.NoError(t, err)
	assert.Equal(t, 6, result.RowCount)

	_, err = svc.Sample("users")
	assert.ErrorIs(t, err, util.ErrTableNotFound)
}
