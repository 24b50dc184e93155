package controller

import (
	"net/http"
	"sort"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type PageController struct {
	server   *echo.Echo
	api      *echo.Group
	basePath string
	useCase  dashboard.UseCase
}

func NewPageController(server *echo.Echo, api *echo.Group, basePath string, useCase dashboard.UseCase) *PageController {
	return &PageController{server: server, api: api, basePath: basePath, useCase: useCase}
}

// InitPageRoutes initializes the HTML page routes. The page is also served at
// the server root so the dashboard is reachable without the context path.
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("", controller.RenderDashboard)
	controller.api.GET("/", controller.RenderDashboard)
	if controller.basePath != "" && controller.basePath != "/" {
		controller.server.GET("/", controller.RenderDashboard)
	}
}

// RenderDashboard serves the dashboard page with the filter options resolved
// server side; the charts and table load through the JSON endpoints.
func (controller *PageController) RenderDashboard(c echo.Context) error {
	capitals, err := controller.useCase.ListCapitals()
	if err != nil {
		return c.String(http.StatusInternalServerError, "dashboard unavailable: "+err.Error())
	}

	conditions, err := controller.useCase.ListConditions()
	if err != nil {
		return c.String(http.StatusInternalServerError, "dashboard unavailable: "+err.Error())
	}

	view := dashboardPageView{
		Title:       "Brazilian Capitals Weather",
		BasePath:    controller.basePath,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	seenStates := make(map[string]bool)
	for _, capital := range capitals {
		view.Capitals = append(view.Capitals, capitalOptionView{Name: capital.Name, State: capital.State})
		if !seenStates[capital.State] {
			seenStates[capital.State] = true
			view.States = append(view.States, capital.State)
		}
	}
	sort.Strings(view.States)
	for _, condition := range conditions {
		view.Conditions = append(view.Conditions, condition.Name)
	}
	for _, band := range model.AllBands() {
		view.Bands = append(view.Bands, string(band))
	}

	page, err := renderDashboardPage(view)
	if err != nil {
		return c.String(http.StatusInternalServerError, "dashboard unavailable: "+err.Error())
	}

	return c.HTML(http.StatusOK, page)
}
