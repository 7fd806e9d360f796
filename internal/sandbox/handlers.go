package sandbox

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"weather-probe/internal/providers/openweathermap"
)

const (
	invalidKeyMessage = "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."
	wrongUnitsMessage = "wrong units"
)

// ErrorResponse mirrors the error body OpenWeatherMap sends
type ErrorResponse struct {
	Cod     int    `json:"cod" example:"401"`
	Message string `json:"message" example:"Invalid API key."`
}

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the sandbox is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

func (s *Server) requireAPIKey(c *gin.Context) {
	if c.Query("appid") != s.fixtures.APIKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
			Cod:     http.StatusUnauthorized,
			Message: invalidKeyMessage,
		})
		return
	}
	c.Next()
}

func (s *Server) forceStatus(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, ok := s.fixtures.ForcedStatus[endpoint]
		if !ok || status == 0 {
			c.Next()
			return
		}
		s.logger.Debug("forcing status", "endpoint", endpoint, "status", status)
		c.AbortWithStatusJSON(status, ErrorResponse{
			Cod:     status,
			Message: strings.ToLower(http.StatusText(status)),
		})
	}
}

// handleCurrentWeather godoc
// @Summary Current weather
// @Description Current conditions for a location query, served from fixtures
// @Tags weather
// @Produce json
// @Param q query string true "Location query" example(London)
// @Param units query string false "Unit system" Enums(metric, imperial, standard)
// @Param appid query string true "API key"
// @Success 200 {object} openweathermap.CurrentWeatherAPIResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /data/2.5/weather [get]
func (s *Server) handleCurrentWeather(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: "Nothing to geocode"})
		return
	}

	units, ok := requestUnits(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: wrongUnitsMessage})
		return
	}

	city, _, _ := strings.Cut(query, ",")
	if !strings.EqualFold(strings.TrimSpace(city), s.fixtures.CurrentWeather.Name) {
		c.JSON(http.StatusNotFound, ErrorResponse{Cod: http.StatusNotFound, Message: "city not found"})
		return
	}

	c.JSON(http.StatusOK, currentIn(s.fixtures.CurrentWeather, units))
}

// handleGeocode godoc
// @Summary Direct geocoding
// @Description Locations whose name matches the query, served from fixtures
// @Tags geocoding
// @Produce json
// @Param q query string true "Location query" example(London)
// @Param limit query int false "Maximum number of results" default(5)
// @Param appid query string true "API key"
// @Success 200 {array} openweathermap.GeocodeAPIResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /geo/1.0/direct [get]
func (s *Server) handleGeocode(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: "Nothing to geocode"})
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: "wrong limit"})
			return
		}
		limit = n
	}

	name, country, _ := strings.Cut(query, ",")
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)

	results := make([]openweathermap.GeocodeAPIResponse, 0, limit)
	for _, loc := range s.fixtures.Locations {
		if len(results) == limit {
			break
		}
		if !strings.EqualFold(loc.Name, name) {
			continue
		}
		if country != "" && !strings.EqualFold(loc.Country, country) {
			continue
		}
		results = append(results, loc)
	}

	c.JSON(http.StatusOK, results)
}

// handleForecast godoc
// @Summary 5 day / 3 hour forecast
// @Description Forecast for coordinates, served from fixtures
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude" minimum(-90) maximum(90) example(51.5073)
// @Param lon query number true "Longitude" minimum(-180) maximum(180) example(-0.1276)
// @Param units query string false "Unit system" Enums(metric, imperial, standard)
// @Param appid query string true "API key"
// @Success 200 {object} openweathermap.ForecastAPIResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /data/2.5/forecast [get]
func (s *Server) handleForecast(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: "wrong latitude or longitude"})
		return
	}

	units, ok := requestUnits(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Cod: http.StatusBadRequest, Message: wrongUnitsMessage})
		return
	}

	c.JSON(http.StatusOK, forecastIn(s.fixtures.Forecast, units))
}
