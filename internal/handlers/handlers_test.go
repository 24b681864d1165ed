package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/database"
	"github.com/justsurfingit/placement-portal/internal/listquery"
	"github.com/justsurfingit/placement-portal/internal/metrics"
	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/justsurfingit/placement-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithToken(t, testToken)
}

func newTestRouterWithToken(t *testing.T, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/health", HealthCheck)
	api := r.Group("/api", auth.RequireBearer(token))
	New(db, &services.LLMService{}, nil).Register(api)
	return r
}

type call struct {
	method    string
	path      string
	body      any
	companyID string
}

func do(t *testing.T, r *gin.Engine, c call) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if c.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(c.body))
	}
	req := httptest.NewRequest(c.method, c.path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	if c.companyID != "" {
		req.Header.Set("Company-ID", c.companyID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func seedCompany(t *testing.T, r *gin.Engine, name string) models.Company {
	t.Helper()
	w := do(t, r, call{method: http.MethodPost, path: "/api/company", body: map[string]any{"name": name, "industry": "Software"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Company](t, w)
}

func seedOpening(t *testing.T, r *gin.Engine, companyID uint, title string, salary float64) models.JobOpening {
	t.Helper()
	w := do(t, r, call{method: http.MethodPost, path: "/api/job-openings", body: map[string]any{
		"companyId": companyID, "title": title, "salaryLPA": salary, "status": models.OpeningOpen,
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.JobOpening](t, w)
}

func TestHealthAndRequestID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestAPIRequiresToken(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/company", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompanyCRUD(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")

	w := do(t, r, call{method: http.MethodGet, path: fmt.Sprintf("/api/company/%d", acme.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decode[models.Company](t, w).Name)

	w = do(t, r, call{method: http.MethodPut, path: fmt.Sprintf("/api/company/%d", acme.ID), body: map[string]any{"name": "Acme Corp", "location": "Pune"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Pune", decode[models.Company](t, w).Location)

	w = do(t, r, call{method: http.MethodPost, path: "/api/company", body: map[string]any{"name": "Acme Corp"}})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = do(t, r, call{method: http.MethodDelete, path: fmt.Sprintf("/api/company/%d", acme.ID)})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, call{method: http.MethodGet, path: fmt.Sprintf("/api/company/%d", acme.ID)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBadRequests(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name string
		call call
	}{
		{name: "non-numeric id", call: call{method: http.MethodGet, path: "/api/company/abc"}},
		{name: "missing required field", call: call{method: http.MethodPost, path: "/api/company", body: map[string]any{"industry": "x"}}},
		{name: "unknown company", call: call{method: http.MethodPost, path: "/api/job-openings", body: map[string]any{"companyId": 99, "title": "SDE"}}},
		{name: "bad deadline", call: call{method: http.MethodPost, path: "/api/job-openings", body: map[string]any{"companyId": 1, "title": "SDE", "applicationDeadline": "soon"}}},
	}
	seedCompany(t, r, "Acme")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.call)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]any](t, w), "error")
		})
	}
}

func TestListReturnsArrayWithoutParams(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, call{method: http.MethodGet, path: "/api/company"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	seedCompany(t, r, "Acme")
	seedCompany(t, r, "Globex")
	w = do(t, r, call{method: http.MethodGet, path: "/api/company"})
	assert.Len(t, decode[[]models.Company](t, w), 2)
}

func TestListAppliesQuery(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")
	globex := seedCompany(t, r, "Globex")
	seedOpening(t, r, acme.ID, "Backend Engineer", 12)
	seedOpening(t, r, acme.ID, "Data Analyst", 6)
	seedOpening(t, r, globex.ID, "Frontend Engineer", 9)

	tests := []struct {
		name       string
		query      string
		wantTitles []string
		wantTotal  int
	}{
		{name: "search", query: "search=engineer&sort=title", wantTitles: []string{"Backend Engineer", "Frontend Engineer"}, wantTotal: 2},
		{name: "company filter", query: fmt.Sprintf("company=%d&sort=title", globex.ID), wantTitles: []string{"Frontend Engineer"}, wantTotal: 1},
		{name: "salary range", query: "minSalary=8&sort=-salaryLPA", wantTitles: []string{"Backend Engineer", "Frontend Engineer"}, wantTotal: 2},
		{name: "paging", query: "sort=title&page=2&pageSize=2", wantTitles: []string{"Frontend Engineer"}, wantTotal: 3},
		{name: "page clamp", query: "sort=title&page=9&pageSize=2", wantTitles: []string{"Backend Engineer", "Data Analyst"}, wantTotal: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, call{method: http.MethodGet, path: "/api/job-openings?" + tt.query})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			res := decode[listquery.PageResult[models.JobOpening]](t, w)

			var titles []string
			for _, o := range res.Items {
				titles = append(titles, o.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
			assert.Equal(t, tt.wantTotal, res.TotalItems)
		})
	}
}

func TestCompanyHeaderScopesLists(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")
	globex := seedCompany(t, r, "Globex")
	seedOpening(t, r, acme.ID, "Backend Engineer", 12)
	seedOpening(t, r, globex.ID, "Frontend Engineer", 9)

	w := do(t, r, call{method: http.MethodGet, path: "/api/job-openings", companyID: fmt.Sprint(acme.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	openings := decode[[]models.JobOpening](t, w)
	require.Len(t, openings, 1)
	assert.Equal(t, "Backend Engineer", openings[0].Title)

	// Companies themselves are not company-bound.
	w = do(t, r, call{method: http.MethodGet, path: "/api/company", companyID: fmt.Sprint(acme.ID)})
	assert.Len(t, decode[[]models.Company](t, w), 2)
}

func TestCompanyHeaderScopesWithoutToken(t *testing.T) {
	r := newTestRouterWithToken(t, "")
	acme := seedCompany(t, r, "Acme")
	globex := seedCompany(t, r, "Globex")
	seedOpening(t, r, acme.ID, "A job", 12)
	seedOpening(t, r, globex.ID, "G job", 9)

	w := do(t, r, call{method: http.MethodGet, path: "/api/job-openings", companyID: fmt.Sprint(acme.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	openings := decode[[]models.JobOpening](t, w)
	require.Len(t, openings, 1)
	assert.Equal(t, "A job", openings[0].Title)
}

func TestCompanyHeaderOverridesQuery(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")
	globex := seedCompany(t, r, "Globex")
	seedOpening(t, r, acme.ID, "A job", 12)
	seedOpening(t, r, globex.ID, "G job", 9)

	w := do(t, r, call{method: http.MethodGet, path: fmt.Sprintf("/api/job-openings?company=%d", globex.ID), companyID: fmt.Sprint(acme.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[listquery.PageResult[models.JobOpening]](t, w)
	require.Equal(t, 1, res.TotalItems)
	assert.Equal(t, "A job", res.Items[0].Title)
}

func TestListIgnoresUndeclaredParams(t *testing.T) {
	r := newTestRouter(t)
	seedCompany(t, r, "Acme")
	seedCompany(t, r, "Globex")

	w := do(t, r, call{method: http.MethodGet, path: "/api/company?_=1700000000"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Company](t, w), 2)

	w = do(t, r, call{method: http.MethodGet, path: "/api/company?_=1700000000&page=1"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[listquery.PageResult[models.Company]](t, w)
	assert.Equal(t, 2, res.TotalItems)
	assert.Equal(t, 0, res.ActiveFilters)

	w = do(t, r, call{method: http.MethodGet, path: "/api/company?industry=Software"})
	assert.Equal(t, 2, decode[listquery.PageResult[models.Company]](t, w).TotalItems)
}

func TestListHugePageSize(t *testing.T) {
	r := newTestRouter(t)
	seedCompany(t, r, "Acme")
	seedCompany(t, r, "Globex")

	w := do(t, r, call{method: http.MethodGet, path: "/api/company?pageSize=9223372036854775807"})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[listquery.PageResult[models.Company]](t, w)
	assert.Equal(t, 1, res.TotalPages)
	assert.Len(t, res.Items, 2)
}

func TestPagedListIsMetered(t *testing.T) {
	r := newTestRouter(t)
	r.GET("/metrics", metrics.Handler())
	seedCompany(t, r, "Acme")

	w := do(t, r, call{method: http.MethodGet, path: "/api/company?page=1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, call{method: http.MethodGet, path: "/metrics"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `placement_list_query_matches_count{resource="company"}`)
}

func TestApplicationFlowAndPipeline(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")
	opening := seedOpening(t, r, acme.ID, "Backend Engineer", 12)

	w := do(t, r, call{method: http.MethodPost, path: "/api/auth/users", body: map[string]any{"name": "Asha", "email": "Asha@Uni.edu", "role": "student"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	student := decode[models.User](t, w)
	assert.Equal(t, "asha@uni.edu", student.Email)

	apply := map[string]any{"studentId": student.ID, "jobOpeningId": opening.ID, "resumeLink": "https://cv.example.edu/asha"}
	w = do(t, r, call{method: http.MethodPost, path: "/api/job-applications", body: apply})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[models.JobApplication](t, w)

	w = do(t, r, call{method: http.MethodPost, path: "/api/job-applications", body: apply})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, call{method: http.MethodPut, path: fmt.Sprintf("/api/job-applications/%d/status?status=BOGUS", app.ID)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, call{method: http.MethodPut, path: fmt.Sprintf("/api/job-applications/%d/status?status=%s", app.ID, models.ApplicationShortlisted)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, call{method: http.MethodGet, path: fmt.Sprintf("/api/job-applications/job/%d", opening.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.JobApplication](t, w), 1)

	w = do(t, r, call{method: http.MethodGet, path: "/api/job-applications/pipeline"})
	require.Equal(t, http.StatusOK, w.Code)
	cols := decode[[]services.PipelineColumn](t, w)
	require.Len(t, cols, len(models.ApplicationStatuses))
	for _, col := range cols {
		if col.Status == models.ApplicationShortlisted {
			assert.Equal(t, 1, col.Count)
		} else {
			assert.Zero(t, col.Count, col.Status)
		}
	}

	w = do(t, r, call{method: http.MethodGet, path: "/api/job-applications/pipeline", companyID: "999"})
	for _, col := range decode[[]services.PipelineColumn](t, w) {
		assert.Zero(t, col.Count)
	}

	w = do(t, r, call{method: http.MethodDelete, path: fmt.Sprintf("/api/job-openings/%d", opening.ID)})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExtractWithoutLLM(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, call{method: http.MethodPost, path: "/api/job-openings/extract", body: map[string]any{"rawHtml": "<p>SDE</p>"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNotifications(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, call{method: http.MethodPost, path: "/api/auth/users", body: map[string]any{"name": "Asha", "email": "asha@uni.edu", "role": models.RoleStudent}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode[models.User](t, w)

	w = do(t, r, call{method: http.MethodPost, path: "/api/notifications", body: map[string]any{"userId": user.ID, "title": "Shortlisted", "message": "See you Monday"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	n := decode[models.Notification](t, w)
	assert.False(t, n.ReadStatus)

	w = do(t, r, call{method: http.MethodPut, path: fmt.Sprintf("/api/notifications/%d/read", n.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.Notification](t, w).ReadStatus)

	w = do(t, r, call{method: http.MethodGet, path: fmt.Sprintf("/api/notifications/user/%d?read=true", user.ID)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[listquery.PageResult[models.Notification]](t, w).TotalItems)

	w = do(t, r, call{method: http.MethodPost, path: "/api/notifications", body: map[string]any{"userId": 404, "title": "x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReports(t *testing.T) {
	r := newTestRouter(t)
	acme := seedCompany(t, r, "Acme")
	seedOpening(t, r, acme.ID, "Backend Engineer", 12)

	w := do(t, r, call{method: http.MethodGet, path: "/api/reports/summary"})
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[services.PlacementSummary](t, w)
	assert.EqualValues(t, 1, sum.TotalCompanies)
	assert.EqualValues(t, 1, sum.OpenJobOpenings)

	w = do(t, r, call{method: http.MethodGet, path: "/api/reports/companies"})
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]services.CompanySummary](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].JobOpenings)
}
