package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONRedirect tells an API client where the session wants it to navigate next
func JSONRedirect(c *gin.Context, status int, data any, message, redirect string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	}
	if redirect != "" {
		body["redirect"] = redirect
	}
	c.JSON(status, body)
}
