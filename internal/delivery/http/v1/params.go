package v1

import (
	"strconv"

	"medconnect-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyUserID))
}

// pathID parses a numeric path parameter. Returns ok=false after writing
// nothing; callers report the error.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryCursor parses the optional cursor query parameter.
func queryCursor(c *gin.Context) (*int64, bool) {
	raw := c.Query("cursor")
	if raw == "" {
		return nil, true
	}
	cursor, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || cursor <= 0 {
		return nil, false
	}
	return &cursor, true
}

// queryLimit parses the optional limit query parameter. Zero means unset;
// usecases clamp to their own defaults and maximums.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}

// optionalQuery returns a pointer to the query value, nil when absent.
func optionalQuery(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}
