package health

import (
	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	// Basic handles the basic liveness check
	Basic(c *gin.Context)

	// Database validates database connectivity
	Database(c *gin.Context)
}
