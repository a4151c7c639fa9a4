package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SchemaInspector answers column questions by sampling one row. The hosted
// database role may not read information_schema, but it can always select.
type SchemaInspector struct {
	db *sqlx.DB
}

func NewSchemaInspector(db *sqlx.DB) *SchemaInspector {
	return &SchemaInspector{db: db}
}

func (s *SchemaInspector) HasColumn(ctx context.Context, table, column string) (bool, error) {
	query := fmt.Sprintf("SELECT * FROM %s LIMIT 1", pq.QuoteIdentifier(table))

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return false, err
	}

	for _, c := range columns {
		if c == column {
			return true, nil
		}
	}
	return false, nil
}
