package utils

import (
	"net/http"
	"time"

	"prestigeapi/pkg/errs"
	"prestigeapi/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs each request with a level matching its outcome.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		} else {
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs an error and sends it with the status its kind maps to.
func ErrorResponse(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch errs.KindOf(err) {
	case errs.KindAuthorization:
		status = http.StatusForbidden
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindDependency:
		status = http.StatusBadGateway
	case errs.KindValidation:
		status = http.StatusBadRequest
	}
	logger.Errorf("API Error: %v", err)
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
