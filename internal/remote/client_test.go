package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justsurfingit/placement-portal/internal/listquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", AuthContext{Token: "secret", CompanyID: "12"})
}

func TestFetchAllSendsAuthHeaders(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/job-openings", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "12", r.Header.Get("Company-ID"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "title": "SRE"}})
	})

	recs, err := c.FetchAll(context.Background(), "job-openings")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "SRE", recs[0]["title"])
	assert.Equal(t, "1", recs[0].ID())
}

func TestFetchAllEmptyBodyGivesEmptySlice(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	})

	recs, err := c.FetchAll(context.Background(), "company")
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrAuth) },
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrAuth) },
		},
		{
			name:   "conflict",
			status: http.StatusConflict,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusConflict, se.Code)
				assert.Equal(t, "opening has applications", se.Message)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"opening has applications"}`))
			})
			err := c.Delete(context.Background(), "job-openings", "3")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, AuthContext{}).FetchAll(context.Background(), "company")
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCreateAndUpdate(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/company", r.URL.Path)
			body["id"] = 5
		case http.MethodPut:
			assert.Equal(t, "/api/company/5", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(body)
	})

	created, err := c.Create(context.Background(), "company", map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "5", created.ID())

	updated, err := c.Update(context.Background(), "company", "5", listquery.Record{"name": "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated["name"])
}
