package catalog

import (
	"context"
	"errors"

	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/redis"

	"go.uber.org/zap"
)

const tableListCacheKey = "tables"

type catalogUseCase struct {
	previewLimit   int
	catalogGateway db.CatalogGateway
	catalogCache   *redis.Cache
}

// NewCatalogUseCase wires the catalog gateway with the Redis catalog cache.
// catalogCache may be nil, in which case every listing hits the warehouse.
func NewCatalogUseCase(previewLimit int, catalogGateway db.CatalogGateway, catalogCache *redis.Cache) UseCase {
	return &catalogUseCase{
		previewLimit:   previewLimit,
		catalogGateway: catalogGateway,
		catalogCache:   catalogCache,
	}
}

// ListTables returns the warehouse tables available for browsing
func (uc *catalogUseCase) ListTables() ([]model.TableRef, error) {
	ctx := context.Background()

	if uc.catalogCache != nil {
		var tables []model.TableRef
		err := uc.catalogCache.Get(ctx, tableListCacheKey, &tables)
		if err == nil {
			return tables, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warn("Catalog cache read failed, querying warehouse directly", zap.Error(err))
		}
	}

	tables, err := uc.catalogGateway.ListTables()
	if err != nil {
		return nil, err
	}

	if uc.catalogCache != nil {
		if err := uc.catalogCache.Set(ctx, tableListCacheKey, tables); err != nil {
			log.Warn("Failed to cache warehouse table list", zap.Error(err))
		}
	}

	return tables, nil
}

// PreviewTable returns the first rows of a warehouse table. Previews are
// never cached, the browser should always show fresh rows.
func (uc *catalogUseCase) PreviewTable(schema string, table string) (*model.TablePreview, error) {
	return uc.catalogGateway.PreviewTable(schema, table, uc.previewLimit)
}
