package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
