package service

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"learnpath_backend/internal/util"
)

// forbiddenKeywords are rejected anywhere in a sandbox query, even inside
// strings. Coarse on purpose: false positives are acceptable, writes are
// not.
var forbiddenKeywords = []string{
	"insert", "update", "delete", "drop", "alter", "create",
	"attach", "detach", "pragma", "vacuum", "reindex", "replace",
	"truncate", "grant", "revoke",
}

var sandboxTables = []string{"artists", "albums", "tracks"}

const sandboxRowLimit = 100

var limitClauseRe = regexp.MustCompile(`(?i)\blimit\s+\d+`)

type SandboxService struct {
	DB *gorm.DB
}

func NewSandboxService(db *gorm.DB) *SandboxService {
	return &SandboxService{DB: db}
}

// SandboxResult carries the rows plus the query that actually ran, so the
// client can show the injected LIMIT.
type SandboxResult struct {
	Columns       []string                 `json:"columns"`
	Rows          []map[string]interface{} `json:"rows"`
	RowCount      int                      `json:"rowCount"`
	ExecutedQuery string                   `json:"executedQuery"`
}

// Verify checks a statement without running it. Any forbidden keyword
// anywhere in the text rejects the query first, naming the keyword in
// uppercase; what survives the scan must still be a SELECT or WITH.
func (s *SandboxService) Verify(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("query is empty")
	}

	lower := strings.ToLower(trimmed)
	for _, kw := range forbiddenKeywords {
		if strings.Contains(lower, kw) {
			return fmt.Errorf("forbidden keyword: %s", strings.ToUpper(kw))
		}
	}

	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return fmt.Errorf("only SELECT queries are allowed")
	}
	return nil
}

// Execute runs one read-only statement against the sample database after
// Verify clears it. Queries without a LIMIT clause get LIMIT 100 appended.
func (s *SandboxService) Execute(query string) (*SandboxResult, error) {
	if err := s.Verify(query); err != nil {
		return nil, err
	}

	executed := strings.TrimSuffix(strings.TrimSpace(query), ";")
	if !limitClauseRe.MatchString(executed) {
		executed = fmt.Sprintf("%s LIMIT %d", executed, sandboxRowLimit)
	}

	rows := []map[string]interface{}{}
	if err := s.DB.Raw(executed).Scan(&rows).Error; err != nil {
		return nil, err
	}

	var columns []string
	if len(rows) > 0 {
		for col := range rows[0] {
			columns = append(columns, col)
		}
	}

	return &SandboxResult{
		Columns:       columns,
		Rows:          rows,
		RowCount:      len(rows),
		ExecutedQuery: executed,
	}, nil
}

// TableSchema describes one sample table.
type TableSchema struct {
	Name    string         `json:"name"`
	Columns []ColumnSchema `json:"columns"`
}

type ColumnSchema struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"notNull"`
	PrimaryKey bool   `json:"primaryKey"`
}

// Schema introspects the sample tables via sqlite's table_info pragma,
// issued through gorm so the forbidden-keyword filter never sees it.
func (s *SandboxService) Schema() ([]TableSchema, error) {
	schemas := make([]TableSchema, 0, len(sandboxTables))
	for _, table := range sandboxTables {
		var info []struct {
			Name    string `gorm:"column:name"`
			Type    string `gorm:"column:type"`
			NotNull int    `gorm:"column:notnull"`
			PK      int    `gorm:"column:pk"`
		}
		if err := s.DB.Raw(fmt.Sprintf("PRAGMA table_info(%s)", table)).Scan(&info).Error; err != nil {
			return nil, err
		}

		schema := TableSchema{Name: table}
		for _, col := range info {
			schema.Columns = append(schema.Columns, ColumnSchema{
				Name:       col.Name,
				Type:       col.Type,
				NotNull:    col.NotNull == 1,
				PrimaryKey: col.PK == 1,
			})
		}
		schemas = append(schemas, schema)
	}
	return schemas, nil
}

// Sample returns the first rows of one sample table. The table name is
// checked against the fixed list, never interpolated from raw input.
func (s *SandboxService) Sample(table string) (*SandboxResult, error) {
	known := false
	for _, t := range sandboxTables {
		if t == strings.ToLower(table) {
			known = true
			break
		}
	}
	if !known {
		return nil, util.ErrTableNotFound
	}
	return s.Execute(fmt.Sprintf("SELECT * FROM %s LIMIT 10", strings.ToLower(table)))
}
