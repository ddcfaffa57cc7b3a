package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine) {
	router.GET("/", HealthCheck)
}

// HealthCheck reports that the service is up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}
