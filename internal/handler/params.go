package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. Non-numeric ids are reported as not found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
