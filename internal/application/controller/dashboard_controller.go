package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type DashboardController struct {
	api             *echo.Group
	defaultPageSize int
	useCase         dashboard.UseCase
}

func NewDashboardController(api *echo.Group, defaultPageSize int, useCase dashboard.UseCase) *DashboardController {
	return &DashboardController{api: api, defaultPageSize: defaultPageSize, useCase: useCase}
}

// InitDashboardRoutes initializes dashboard data routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/capitals", controller.ListCapitals)
	controller.api.GET("/conditions", controller.ListConditions)
	controller.api.GET("/series/temperature-by-capital", controller.AvgTemperatureByCapital)
	controller.api.GET("/series/temperature-over-time", controller.TemperatureOverTime)
	controller.api.GET("/observations", controller.FindObservations)
	controller.api.GET("/observations/export", controller.ExportObservations)
	controller.api.GET("/summary", controller.Summary)
}

// ListCapitals godoc
// @Summary List capitals
// @Description Retrieve every capital present in the warehouse, for filter options
// @Tags dashboard
// @Produce json
// @Success 200 {array} entity.Capital "Capitals ordered by name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /capitals [get]
func (controller *DashboardController) ListCapitals(c echo.Context) error {
	capitals, err := controller.useCase.ListCapitals()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, capitals)
}

// ListConditions godoc
// @Summary List weather conditions
// @Description Retrieve every weather condition present in the warehouse, for filter options
// @Tags dashboard
// @Produce json
// @Success 200 {array} entity.Condition "Conditions ordered by name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /conditions [get]
func (controller *DashboardController) ListConditions(c echo.Context) error {
	conditions, err := controller.useCase.ListConditions()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, conditions)
}

// AvgTemperatureByCapital godoc
// @Summary Average temperature by capital
// @Description Bar-chart series of average temperature per capital, hottest first
// @Tags dashboard
// @Produce json
// @Param capital query []string false "Capitals to include"
// @Param state query []string false "States to include"
// @Param condition query []string false "Conditions to include"
// @Param band query []string false "Temperature bands to include"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} model.CapitalAverage "Series ordered by average temperature"
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /series/temperature-by-capital [get]
func (controller *DashboardController) AvgTemperatureByCapital(c echo.Context) error {
	filter, err := parseObservationFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	series, err := controller.useCase.AvgTemperatureByCapital(*filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}

// TemperatureOverTime godoc
// @Summary Average temperature over time
// @Description Line-chart series of daily average temperature, ordered by date
// @Tags dashboard
// @Produce json
// @Param capital query []string false "Capitals to include"
// @Param state query []string false "States to include"
// @Param condition query []string false "Conditions to include"
// @Param band query []string false "Temperature bands to include"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} model.DailyAverage "Series ordered by date"
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /series/temperature-over-time [get]
func (controller *DashboardController) TemperatureOverTime(c echo.Context) error {
	filter, err := parseObservationFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	series, err := controller.useCase.TemperatureOverTime(*filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}

// FindObservations godoc
// @Summary List observations
// @Description Paginated list of weather observations matching the filter
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(50)
// @Param capital query []string false "Capitals to include"
// @Param state query []string false "States to include"
// @Param condition query []string false "Conditions to include"
// @Param band query []string false "Temperature bands to include"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} model.Page[entity.Observation] "Paginated observations"
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations [get]
func (controller *DashboardController) FindObservations(c echo.Context) error {
	filter, err := parseObservationFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	if page < 0 {
		page = 0
	}
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), controller.defaultPageSize)
	size = numberutils.ClampInt(size, 1, 500)

	observations, err := controller.useCase.FindObservations(*filter, page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, observations)
}

// ExportObservations godoc
// @Summary Export observations as CSV
// @Description Stream the observations matching the filter as a CSV download
// @Tags dashboard
// @Produce text/csv
// @Param capital query []string false "Capitals to include"
// @Param state query []string false "States to include"
// @Param condition query []string false "Conditions to include"
// @Param band query []string false "Temperature bands to include"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /observations/export [get]
func (controller *DashboardController) ExportObservations(c echo.Context) error {
	filter, err := parseObservationFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	fileName := fmt.Sprintf("weather-observations-%s.csv", time.Now().Format(dateLayout))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	c.Response().WriteHeader(http.StatusOK)

	_, err = controller.useCase.ExportObservations(*filter, c.Response())
	return err
}

// Summary godoc
// @Summary Headline metrics
// @Description Distinct capitals, record count and overall average temperature for the filter
// @Tags dashboard
// @Produce json
// @Param capital query []string false "Capitals to include"
// @Param state query []string false "States to include"
// @Param condition query []string false "Conditions to include"
// @Param band query []string false "Temperature bands to include"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} model.Summary "Headline metrics"
// @Failure 400 {object} map[string]string "Invalid filter parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /summary [get]
func (controller *DashboardController) Summary(c echo.Context) error {
	filter, err := parseObservationFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	summary, err := controller.useCase.Summarize(*filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, summary)
}

// parseObservationFilter builds the filter from repeated query parameters,
// validating dates and band labels
func parseObservationFilter(c echo.Context) (*model.ObservationFilter, error) {
	params := c.QueryParams()

	filter := &model.ObservationFilter{
		Capitals:   params["capital"],
		States:     params["state"],
		Conditions: params["condition"],
		FromDate:   c.QueryParam("from"),
		ToDate:     c.QueryParam("to"),
	}

	for _, label := range params["band"] {
		band, ok := model.ParseBand(label)
		if !ok {
			return nil, errors.New(msg.GetMessage("dashboard.error.invalid-band", label))
		}
		filter.Bands = append(filter.Bands, band)
	}

	for _, date := range []string{filter.FromDate, filter.ToDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, errors.New(msg.GetMessage("dashboard.error.invalid-date", date))
		}
	}

	return filter, nil
}
