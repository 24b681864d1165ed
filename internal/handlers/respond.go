package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/listquery"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/justsurfingit/placement-portal/internal/views"
	"gorm.io/gorm"
)

// HealthCheck is the GET /health endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequestID tags every request with an X-Request-ID, reusing the caller's.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// respondError maps service errors onto status codes. prefix says what was
// being attempted, as in "Failed to create job opening".
func respondError(c *gin.Context, prefix string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		code = http.StatusConflict
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, dtos.ErrBadTime),
		errors.Is(err, dtos.ErrMissingTime):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrLLMDisabled):
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"error": prefix + ": " + err.Error()})
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": " + c.Param(name)})
		return 0, false
	}
	return uint(id), true
}

// respondList answers a list endpoint. A bare request gets the full JSON
// array, which the portal filters client-side. Paging, sort, search or a
// declared filter key turns on server-side querying with the same engine,
// and the response becomes a PageResult. Other keys, such as cache busters,
// are ignored. A Company-ID header scopes company-bound resources to that
// company either way and overrides any ?company= in the query.
func respondList[M any](c *gin.Context, resource string, items []M) {
	accept := func(key string) bool { return views.AcceptsFilter(resource, key) }
	values := c.Request.URL.Query()
	querying := false
	for key := range values {
		if listquery.IsReserved(key) || accept(key) {
			querying = true
			break
		}
	}
	companyID := c.GetString("companyID")
	scoped := companyID != "" && hasCompanyFilter(resource)

	if !querying && !scoped {
		c.JSON(http.StatusOK, items)
		return
	}

	records, err := toRecords(items)
	if err != nil {
		respondError(c, "Failed to encode "+resource, err)
		return
	}

	q := listquery.ParseValues(values, accept)
	if scoped {
		q.Filters["company"] = companyID
	}
	engine := views.Engine(resource)

	if !querying {
		matched := make([]listquery.Record, 0, len(records))
		for _, r := range records {
			if engine.Matches(r, q) {
				matched = append(matched, r)
			}
		}
		c.JSON(http.StatusOK, matched)
		return
	}

	res := engine.Apply(records, q)
	metrics.ObserveListQuery(resource, res.TotalItems)
	c.JSON(http.StatusOK, res)
}

func hasCompanyFilter(resource string) bool {
	_, ok := views.Config(resource).FilterFields["company"]
	return ok
}

// toRecords converts models to the JSON field maps the engine works on, so
// field names match what API clients see.
func toRecords[M any](items []M) ([]listquery.Record, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	out := []listquery.Record{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
