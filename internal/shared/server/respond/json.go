package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FailureResponse is the envelope the browser client expects when an
// analysis-style request cannot be completed.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Failure aborts with {"success":false,"error":message}.
func Failure(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, FailureResponse{Success: false, Error: message})
}
