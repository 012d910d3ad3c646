package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"traincards/internal/model"
	"traincards/internal/repository"
)

// ListAllQuery is the only statement this service issues: a full, unfiltered scan.
const ListAllQuery = `SELECT * FROM train_data`

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
// Columns are discovered from the result set, so the table schema stays owned by the database.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository over the shared pool.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

// ListAll runs ListAllQuery and returns the rows as received.
func (r *RecordPostgres) ListAll(ctx context.Context) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, ListAllQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}
	dbTypes := make([]string, len(types))
	for i, ct := range types {
		dbTypes[i] = ct.DatabaseTypeName()
	}

	items := make([]model.Record, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			vals[i] = convertValue(dbTypes[i], v)
		}
		items = append(items, model.Record{Columns: cols, Values: vals})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// convertValue maps a scanned driver value to what the JSON body carries.
// json and jsonb stay nested documents, bytea stays binary (base64 in JSON),
// and other []byte values are text from drivers that do not decode it.
func convertValue(dbType string, v any) any {
	switch dbType {
	case "JSON", "JSONB":
		switch d := v.(type) {
		case []byte:
			return json.RawMessage(d)
		case string:
			return json.RawMessage(d)
		}
		return v
	case "BYTEA":
		return v
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
