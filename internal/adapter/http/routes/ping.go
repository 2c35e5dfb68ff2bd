package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the health check payload.
type PingResponse struct {
	Message string `json:"message"`
}

// Ping godoc
// @Summary      Health check
// @Description  Returns pong when the service is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  PingResponse
// @Router       /v1/ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	})
}
