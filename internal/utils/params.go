// internal/utils/params.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLimitParam parses the optional ?limit query parameter, falling back to
// defaultLimit and clamping to maxLimit.
func GetLimitParam(c *gin.Context, defaultLimit, maxLimit int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}
