package db

import "weather-dashboard/internal/domain/model"

type CatalogGateway interface {
	// ListTables returns every table of the warehouse schemas, ordered by
	// schema then table name.
	ListTables() ([]model.TableRef, error)

	// PreviewTable returns up to limit rows of the given table. The schema
	// and table names must match an entry returned by ListTables.
	PreviewTable(schema string, table string, limit int) (*model.TablePreview, error)
}
