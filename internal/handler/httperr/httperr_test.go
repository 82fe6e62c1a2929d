//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", errs.Mark(errs.New("bad"), errs.ErrValidation), http.StatusBadRequest, httperr.CodeValidation},
		{"unauthorized", errs.Mark(errs.New("who"), errs.ErrUnauthorized), http.StatusUnauthorized, httperr.CodeUnauthorized},
		{"forbidden", errs.Mark(errs.New("no"), errs.ErrForbidden), http.StatusForbidden, httperr.CodeForbidden},
		{"not found", errs.Mark(errs.New("gone"), errs.ErrNotFound), http.StatusNotFound, httperr.CodeNotFound},
		{"conflict", errs.Mark(errs.New("dup"), errs.ErrConflict), http.StatusBadRequest, httperr.CodeConflict},
		{"upstream", errs.Upstream(errs.New("502 from provider")), http.StatusBadGateway, httperr.CodeUpstream},
		{"rate limited wins over upstream", errs.RateLimited(errs.New("budget")), http.StatusTooManyRequests, httperr.CodeRateLimited},
		{"wrapped mark survives", errs.Wrap(errs.Mark(errs.New("gone"), errs.ErrNotFound), "load"), http.StatusNotFound, httperr.CodeNotFound},
		{"unmarked", errs.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := httperr.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func perform(t *testing.T, h gin.HandlerFunc, body string) (*httptest.ResponseRecorder, httperr.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", h)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if body != "" {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(rec, req)

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestHandle(t *testing.T) {
	t.Run("known error keeps its message", func(t *testing.T) {
		rec, resp := perform(t, func(c *gin.Context) {
			httperr.Handle(c, errs.Wrap(errs.Mark(errs.New("Order not found"), errs.ErrNotFound), "refresh status"))
		}, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, httperr.CodeNotFound, resp.Error.Code)
		assert.Equal(t, "Order not found", resp.Error.Message)
	})

	t.Run("internal error is masked", func(t *testing.T) {
		rec, resp := perform(t, func(c *gin.Context) {
			httperr.Handle(c, errs.New("dial tcp 10.0.0.3:5432: connection refused"))
		}, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, httperr.CodeInternal, resp.Error.Code)
		assert.Equal(t, "Internal server error", resp.Error.Message)
		assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	})

	t.Run("error is recorded on the context", func(t *testing.T) {
		var recorded int
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/", func(c *gin.Context) {
			httperr.Handle(c, errs.Upstream(errs.New("timeout")))
			recorded = len(c.Errors)
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, 1, recorded)
	})
}

func TestBindError(t *testing.T) {
	type request struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
	}

	t.Run("validator failures become field details", func(t *testing.T) {
		rec, resp := perform(t, func(c *gin.Context) {
			var req request
			if err := c.ShouldBindJSON(&req); err != nil {
				httperr.BindError(c, err)
			}
		}, `{"email":"nope"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, httperr.CodeValidation, resp.Error.Code)
		assert.Equal(t, "Invalid request", resp.Error.Message)

		details, ok := resp.Error.Details.([]any)
		require.True(t, ok, "details should be a list: %s", rec.Body.String())
		assert.ElementsMatch(t, []any{
			map[string]any{"field": "Email", "rule": "email"},
			map[string]any{"field": "Name", "rule": "required"},
		}, details)
	})

	t.Run("malformed json has no details", func(t *testing.T) {
		rec, resp := perform(t, func(c *gin.Context) {
			var req request
			if err := c.ShouldBindJSON(&req); err != nil {
				httperr.BindError(c, err)
			}
		}, `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, httperr.CodeValidation, resp.Error.Code)
		assert.Nil(t, resp.Error.Details)
	})
}

func TestAbortWithErrorPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		httperr.AbortWithError(nil, http.StatusBadRequest, nil, httperr.CodeValidation, "x", nil)
	})
}
