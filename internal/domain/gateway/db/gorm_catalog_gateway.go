package db

import (
	"fmt"

	"weather-dashboard/internal/domain/model"

	"gorm.io/gorm"
)

const listTablesQuery = `
	SELECT table_schema AS schema, table_name AS name
	FROM information_schema.tables
	WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
	  AND table_type = 'BASE TABLE'
	ORDER BY table_schema, table_name`

type GormCatalogGateway struct {
	DB *gorm.DB
}

var _ CatalogGateway = (*GormCatalogGateway)(nil)

func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{DB: db}
}

func (gateway *GormCatalogGateway) ListTables() ([]model.TableRef, error) {
	var tables []model.TableRef

	err := gateway.DB.Raw(listTablesQuery).Scan(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse tables: %w", err)
	}

	return tables, nil
}

func (gateway *GormCatalogGateway) PreviewTable(schema string, table string, limit int) (*model.TablePreview, error) {
	// Identifier names cannot be bound as parameters, so only names that
	// exist in the catalog are interpolated into the query.
	tables, err := gateway.ListTables()
	if err != nil {
		return nil, err
	}

	known := false
	for _, ref := range tables {
		if ref.Schema == schema && ref.Name == table {
			known = true
			break
		}
	}
	if !known {
		return nil, model.ErrTableNotFound
	}

	query := fmt.Sprintf(`SELECT * FROM %q.%q LIMIT ?`, schema, table)

	rows, err := gateway.DB.Raw(query, limit).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to preview table %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s.%s: %w", schema, table, err)
	}

	preview := &model.TablePreview{
		Schema:  schema,
		Table:   table,
		Columns: columns,
		Rows:    make([]map[string]any, 0, limit),
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s.%s: %w", schema, table, err)
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		preview.Rows = append(preview.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows of %s.%s: %w", schema, table, err)
	}

	return preview, nil
}

// normalizeValue converts driver-specific values into JSON-friendly types.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case []byte:
		return string(typed)
	default:
		return value
	}
}
