package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/pkg/response"
)

// Health returns a status payload useful for readiness checks. The database
// ping is included so load balancers see storage failures.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		dbStatus := "ok"

		if db != nil {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(requestContext(c)) != nil {
				status = "degraded"
				dbStatus = "unreachable"
			}
		}

		response.Success(c, http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
		})
	}
}
