package sandbox

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "weather-probe/docs" // Import generated docs
)

// registerRoutes sets up all sandbox endpoints
func (s *Server) registerRoutes() {
	s.router.Use(s.logRequests())

	// Health check endpoint
	s.router.GET("/ping", s.handlePing)

	// OpenWeatherMap compatible endpoints
	s.router.GET("/data/2.5/weather", s.countHit(EndpointCurrentWeather), s.requireAPIKey, s.forceStatus(EndpointCurrentWeather), s.handleCurrentWeather)
	s.router.GET("/geo/1.0/direct", s.countHit(EndpointGeocoding), s.requireAPIKey, s.forceStatus(EndpointGeocoding), s.handleGeocode)
	s.router.GET("/data/2.5/forecast", s.countHit(EndpointForecast), s.requireAPIKey, s.forceStatus(EndpointForecast), s.handleForecast)

	// Swagger documentation
	s.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
