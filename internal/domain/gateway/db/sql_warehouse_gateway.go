package db

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

// observationFrom is the star join every observation query starts from
const observationFrom = `
	FROM fact.weather f
	JOIN dim.date d ON f.date_id = d.date_id
	JOIN dim.city ci ON f.city_id = ci.city_id
	JOIN dim.country co ON ci.country_id = co.country_id
	JOIN dim.conditions cond ON f.condition_id = cond.condition_id`

type SQLWarehouseGateway struct {
	DB *sql.DB
}

var _ WarehouseGateway = (*SQLWarehouseGateway)(nil)

func NewSQLWarehouseGateway(db *sql.DB) *SQLWarehouseGateway {
	return &SQLWarehouseGateway{DB: db}
}

// ListCapitals retrieves the city dimension ordered by name
func (gateway *SQLWarehouseGateway) ListCapitals() ([]entity.Capital, error) {
	rows, err := gateway.DB.Query(`
		SELECT ci.city_id, ci.city_name, ci.state_code, co.country_name
		FROM dim.city ci
		JOIN dim.country co ON ci.country_id = co.country_id
		ORDER BY ci.city_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	capitals := make([]entity.Capital, 0)
	for rows.Next() {
		var capital entity.Capital
		if err := rows.Scan(&capital.ID, &capital.Name, &capital.State, &capital.Country); err != nil {
			return nil, err
		}
		capitals = append(capitals, capital)
	}

	return capitals, rows.Err()
}

// ListConditions retrieves the conditions dimension ordered by name
func (gateway *SQLWarehouseGateway) ListConditions() ([]entity.Condition, error) {
	rows, err := gateway.DB.Query(`
		SELECT condition_id, condition_name
		FROM dim.conditions
		ORDER BY condition_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conditions := make([]entity.Condition, 0)
	for rows.Next() {
		var condition entity.Condition
		if err := rows.Scan(&condition.ID, &condition.Name); err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}

	return conditions, rows.Err()
}

// FindObservations retrieves observation rows with filters and pagination
func (gateway *SQLWarehouseGateway) FindObservations(filter model.ObservationFilter, page int, size int) ([]entity.Observation, error) {
	if page < 0 {
		page = 0
	}
	offset := page * size

	query := `
		SELECT f.weather_id, to_char(d.full_date, 'YYYY-MM-DD'), ci.city_name, ci.state_code,
		       co.country_name, cond.condition_name,
		       f.temp_min, f.temp_avg, f.temp_max, f.humidity, f.precipitation` +
		observationFrom + `
		WHERE 1=1`

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	argCount++
	query += fmt.Sprintf(" ORDER BY d.full_date DESC, ci.city_name ASC OFFSET $%d", argCount)
	args = append(args, offset)

	argCount++
	query += fmt.Sprintf(" LIMIT $%d", argCount)
	args = append(args, size)

	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	observations := make([]entity.Observation, 0)
	for rows.Next() {
		observation, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, *observation)
	}

	return observations, rows.Err()
}

// CountObservations returns the row count for the filter
func (gateway *SQLWarehouseGateway) CountObservations(filter model.ObservationFilter) (int64, error) {
	query := "SELECT COUNT(*)" + observationFrom + " WHERE 1=1"

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	var count int64
	err := gateway.DB.QueryRow(query, args...).Scan(&count)
	return count, err
}

// StreamObservations walks filtered rows in date order, calling fn per row.
// The limit bounds export size; fn returning an error stops the stream.
func (gateway *SQLWarehouseGateway) StreamObservations(filter model.ObservationFilter, limit int, fn func(entity.Observation) error) error {
	query := `
		SELECT f.weather_id, to_char(d.full_date, 'YYYY-MM-DD'), ci.city_name, ci.state_code,
		       co.country_name, cond.condition_name,
		       f.temp_min, f.temp_avg, f.temp_max, f.humidity, f.precipitation` +
		observationFrom + `
		WHERE 1=1`

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	query += " ORDER BY d.full_date ASC, ci.city_name ASC"

	argCount++
	query += fmt.Sprintf(" LIMIT $%d", argCount)
	args = append(args, limit)

	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		observation, err := scanObservation(rows)
		if err != nil {
			return err
		}
		if err := fn(*observation); err != nil {
			return err
		}
	}

	return rows.Err()
}

// AvgTemperatureByCapital aggregates average temperature per capital, hottest first
func (gateway *SQLWarehouseGateway) AvgTemperatureByCapital(filter model.ObservationFilter) ([]model.CapitalAverage, error) {
	query := `
		SELECT ci.city_name, ci.state_code, AVG(f.temp_avg), COUNT(f.temp_avg)` +
		observationFrom + `
		WHERE 1=1 AND f.temp_avg IS NOT NULL`

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	query += `
		GROUP BY ci.city_name, ci.state_code
		ORDER BY AVG(f.temp_avg) DESC`

	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make([]model.CapitalAverage, 0)
	for rows.Next() {
		var avg model.CapitalAverage
		if err := rows.Scan(&avg.Capital, &avg.State, &avg.AvgTemp, &avg.Samples); err != nil {
			return nil, err
		}
		averages = append(averages, avg)
	}

	return averages, rows.Err()
}

// AvgTemperatureByDay aggregates average temperature per day in date order
func (gateway *SQLWarehouseGateway) AvgTemperatureByDay(filter model.ObservationFilter) ([]model.DailyAverage, error) {
	query := `
		SELECT to_char(d.full_date, 'YYYY-MM-DD'), AVG(f.temp_avg), COUNT(f.temp_avg)` +
		observationFrom + `
		WHERE 1=1 AND f.temp_avg IS NOT NULL`

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	query += `
		GROUP BY d.full_date
		ORDER BY d.full_date ASC`

	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make([]model.DailyAverage, 0)
	for rows.Next() {
		var avg model.DailyAverage
		if err := rows.Scan(&avg.Date, &avg.AvgTemp, &avg.Samples); err != nil {
			return nil, err
		}
		averages = append(averages, avg)
	}

	return averages, rows.Err()
}

// Summarize computes the headline metrics for the filter
func (gateway *SQLWarehouseGateway) Summarize(filter model.ObservationFilter) (*model.Summary, error) {
	query := `
		SELECT COUNT(DISTINCT ci.city_id), COUNT(*), AVG(f.temp_avg)` +
		observationFrom + `
		WHERE 1=1`

	args := []interface{}{}
	argCount := 0
	query += buildFilterClause(filter, &args, &argCount)

	var summary model.Summary
	var avgTemp sql.NullFloat64
	if err := gateway.DB.QueryRow(query, args...).Scan(&summary.Capitals, &summary.Records, &avgTemp); err != nil {
		return nil, err
	}
	summary.AvgTemp = nullableFloat(avgTemp)

	return &summary, nil
}

// buildFilterClause appends WHERE conditions for the filter, extending args and
// argCount the same way for every query so the $n placeholders stay aligned.
func buildFilterClause(filter model.ObservationFilter, args *[]interface{}, argCount *int) string {
	clause := ""

	if len(filter.Capitals) > 0 {
		(*argCount)++
		clause += fmt.Sprintf(" AND ci.city_name = ANY($%d)", *argCount)
		*args = append(*args, pq.Array(filter.Capitals))
	}

	if len(filter.States) > 0 {
		(*argCount)++
		clause += fmt.Sprintf(" AND ci.state_code = ANY($%d)", *argCount)
		*args = append(*args, pq.Array(filter.States))
	}

	if len(filter.Conditions) > 0 {
		(*argCount)++
		clause += fmt.Sprintf(" AND cond.condition_name = ANY($%d)", *argCount)
		*args = append(*args, pq.Array(filter.Conditions))
	}

	if filter.FromDate != "" {
		(*argCount)++
		clause += fmt.Sprintf(" AND d.full_date >= $%d::date", *argCount)
		*args = append(*args, filter.FromDate)
	}

	if filter.ToDate != "" {
		(*argCount)++
		clause += fmt.Sprintf(" AND d.full_date <= $%d::date", *argCount)
		*args = append(*args, filter.ToDate)
	}

	if band := buildBandClause(filter.Bands); band != "" {
		clause += " AND (" + band + ")"
	}

	return clause
}

// buildBandClause translates temperature bands into an OR group over temp_avg
func buildBandClause(bands []model.TemperatureBand) string {
	clause := ""
	for _, band := range bands {
		var condition string
		switch band {
		case model.BandCold:
			condition = "f.temp_avg < 10"
		case model.BandMild:
			condition = "f.temp_avg >= 10 AND f.temp_avg < 20"
		case model.BandWarm:
			condition = "f.temp_avg >= 20 AND f.temp_avg < 30"
		case model.BandHot:
			condition = "f.temp_avg >= 30"
		case model.BandUnknown:
			condition = "f.temp_avg IS NULL"
		default:
			continue
		}

		if clause != "" {
			clause += " OR "
		}
		clause += "(" + condition + ")"
	}
	return clause
}

// scanObservation scans the shared observation column list
func scanObservation(rows *sql.Rows) (*entity.Observation, error) {
	var observation entity.Observation
	var tempMin, tempAvg, tempMax, humidity, precipitation sql.NullFloat64

	if err := rows.Scan(&observation.ID, &observation.Date, &observation.Capital,
		&observation.State, &observation.Country, &observation.Condition,
		&tempMin, &tempAvg, &tempMax, &humidity, &precipitation); err != nil {
		return nil, err
	}

	observation.TempMin = nullableFloat(tempMin)
	observation.TempAvg = nullableFloat(tempAvg)
	observation.TempMax = nullableFloat(tempMax)
	observation.Humidity = nullableFloat(humidity)
	observation.Precipitation = nullableFloat(precipitation)

	return &observation, nil
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	result := value.Float64
	return &result
}
