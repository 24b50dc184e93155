package controller

import (
	"errors"
	"net/http"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/catalog"
	"weather-dashboard/pkg/msg"

	"github.com/labstack/echo/v4"
)

type CatalogController struct {
	api     *echo.Group
	useCase catalog.UseCase
}

func NewCatalogController(api *echo.Group, useCase catalog.UseCase) *CatalogController {
	return &CatalogController{api: api, useCase: useCase}
}

// InitCatalogRoutes initializes warehouse catalog routes
func (controller *CatalogController) InitCatalogRoutes() {
	controller.api.GET("/tables", controller.ListTables)
	controller.api.GET("/tables/:schema/:table", controller.PreviewTable)
}

// ListTables godoc
// @Summary List warehouse tables
// @Description Retrieve every browsable table of the warehouse
// @Tags catalog
// @Produce json
// @Success 200 {array} model.TableRef "Tables ordered by schema and name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tables [get]
func (controller *CatalogController) ListTables(c echo.Context) error {
	tables, err := controller.useCase.ListTables()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tables)
}

// PreviewTable godoc
// @Summary Preview a warehouse table
// @Description Retrieve the first rows of a warehouse table
// @Tags catalog
// @Produce json
// @Param schema path string true "Schema name"
// @Param table path string true "Table name"
// @Success 200 {object} model.TablePreview "Table preview"
// @Failure 404 {object} map[string]string "Table not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tables/{schema}/{table} [get]
func (controller *CatalogController) PreviewTable(c echo.Context) error {
	schema := c.Param("schema")
	table := c.Param("table")

	preview, err := controller.useCase.PreviewTable(schema, table)
	if err != nil {
		if errors.Is(err, model.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": msg.GetMessage("catalog.error.unknown-table", schema, table),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, preview)
}
