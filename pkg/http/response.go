package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"liyu1981.xyz/ecotrack-service/pkg/eco"
)

func succeed(c *gin.Context, status int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["success"] = true
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func failValidation(c *gin.Context, issues any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  issues,
	})
}

// failWith maps service errors onto status codes; anything unknown is a 500
// carrying the action message.
func failWith(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, eco.ErrNotFound):
		fail(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, eco.ErrInvalidInput):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, eco.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	default:
		restLogger(c).Error(action, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": action,
			"error":   err.Error(),
		})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := parseDate(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid "+key)
		return nil, false
	}
	return &t, true
}

func queryBool(c *gin.Context, key string) *bool {
	raw, found := c.GetQuery(key)
	if !found || raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

// listFilter reads the startDate/endDate/page/limit query shared by every
// listing endpoint.
func listFilter(c *gin.Context) (eco.ListFilter, bool) {
	var f eco.ListFilter
	var ok bool
	if f.StartDate, ok = queryDate(c, "startDate"); !ok {
		return f, false
	}
	if f.EndDate, ok = queryDate(c, "endDate"); !ok {
		return f, false
	}
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	return f, true
}

func pageBody[T any](page *eco.Page[T], key string) gin.H {
	return gin.H{
		"count": len(page.Items),
		"total": page.Total,
		"page":  page.Page,
		"pages": page.Pages(),
		key:     page.Items,
	}
}
