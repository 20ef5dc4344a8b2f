package utils

import (
	"agri-auction/internal/biddingerrors"

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

// JSONError sends a structured error response. The error kind lets clients tell
// a retryable conflict apart from a rejected request.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"kind":    biddingerrors.KindOf(err).String(),
		"error":   err.Error(),
	})
}

// AbortJSONError writes the error envelope and stops the middleware chain
func AbortJSONError(c *gin.Context, status int, err error, message string) {
	JSONError(c, status, err, message)
	c.Abort()
}
