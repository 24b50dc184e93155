package controller

import (
	"net/http"

	"weather-dashboard/internal/domain/usecase/pipeline"

	"github.com/labstack/echo/v4"
)

type PipelineController struct {
	api     *echo.Group
	useCase pipeline.UseCase
}

func NewPipelineController(api *echo.Group, useCase pipeline.UseCase) *PipelineController {
	return &PipelineController{api: api, useCase: useCase}
}

// InitPipelineRoutes initializes pipeline status routes
func (controller *PipelineController) InitPipelineRoutes() {
	controller.api.GET("/pipeline/status", controller.Status)
}

// Status godoc
// @Summary Pipeline status
// @Description Last warehouse load run and current ingest queue depth
// @Tags pipeline
// @Produce json
// @Success 200 {object} model.PipelineStatus "Pipeline status"
// @Failure 502 {object} map[string]string "Pipeline unreachable"
// @Router /pipeline/status [get]
func (controller *PipelineController) Status(c echo.Context) error {
	status, err := controller.useCase.Status()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, status)
}
