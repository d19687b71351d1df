package common

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MetricsMiddleware records per-request API metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Request ID for tracing
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		durationMs := int(time.Since(startTime).Milliseconds())

		// Handlers that process rows set this for observability
		rowsProcessed := 0
		if rows, exists := c.Get("rows_processed"); exists {
			if r, ok := rows.(int); ok {
				rowsProcessed = r
			}
		}

		metric := ApiMetric{
			Endpoint:      c.FullPath(),
			Method:        c.Request.Method,
			StatusCode:    c.Writer.Status(),
			DurationMs:    durationMs,
			RowsProcessed: rowsProcessed,
			Timestamp:     startTime,
		}

		// Save asynchronously so metrics never slow a response
		go func() {
			if db := GetDB(); db != nil {
				db.Create(&metric)
			}
		}()
	}
}
