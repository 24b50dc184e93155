package catalog

import "weather-dashboard/internal/domain/model"

type UseCase interface {
	// ListTables returns the warehouse tables available for browsing
	ListTables() ([]model.TableRef, error)

	// PreviewTable returns the first rows of a warehouse table
	PreviewTable(schema string, table string) (*model.TablePreview, error)
}
