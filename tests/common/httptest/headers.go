//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// RequireCookie fails unless the response sets a non-empty cookie called name.
func RequireCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	c := ExtractCookie(w, name)
	require.NotNil(t, c, "cookie %s not set", name)
	require.NotEmpty(t, c.Value, "cookie %s is empty", name)
	return c
}
