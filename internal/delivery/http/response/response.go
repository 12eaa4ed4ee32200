package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success            bool        `json:"success"`
	Message            string      `json:"message"`
	Data               interface{} `json:"data,omitempty"`
	Errors             []string    `json:"errors,omitempty"`
	RetryAfter         int         `json:"retryAfter,omitempty"`
	AvailableEndpoints []string    `json:"availableEndpoints,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// ValidationError sends a 400 with the collected field-level messages
func ValidationError(c *gin.Context, code int, message string, errs []string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// RateLimited sends a 429 with the seconds remaining until the window resets
func RateLimited(c *gin.Context, code int, message string, retryAfter int) {
	c.JSON(code, Response{
		Success:    false,
		Message:    message,
		RetryAfter: retryAfter,
	})
}

// NotFound sends a 404 with the static list of available endpoints
func NotFound(c *gin.Context, code int, message string, endpoints []string) {
	c.JSON(code, Response{
		Success:            false,
		Message:            message,
		AvailableEndpoints: endpoints,
	})
}
