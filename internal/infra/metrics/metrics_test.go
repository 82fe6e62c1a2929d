//go:build unit

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopcompare/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheObserver(t *testing.T) {
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	m.CacheLookup("product", true)
	m.CacheLookup("product", false)
	m.CacheLookup("product", false)
	m.CacheLookup("deals", true)
	m.DealsRefreshed(10)
	m.ProviderFallback("product")

	expected := `
# HELP shopcompare_cache_lookups_total Cache lookups by resource and outcome
# TYPE shopcompare_cache_lookups_total counter
shopcompare_cache_lookups_total{outcome="hit",resource="deals"} 1
shopcompare_cache_lookups_total{outcome="hit",resource="product"} 1
shopcompare_cache_lookups_total{outcome="miss",resource="product"} 2
# HELP shopcompare_deals_refreshed_total Deals written by refreshes
# TYPE shopcompare_deals_refreshed_total counter
shopcompare_deals_refreshed_total 10
# HELP shopcompare_provider_fallbacks_total Requests answered with a degraded result after a provider failure
# TYPE shopcompare_provider_fallbacks_total counter
shopcompare_provider_fallbacks_total{resource="product"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"shopcompare_cache_lookups_total",
		"shopcompare_deals_refreshed_total",
		"shopcompare_provider_fallbacks_total",
	)
	assert.NoError(t, err)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/products/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", m.Handler())

	for _, path := range []string{"/api/products/1", "/api/products/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `shopcompare_http_requests_total{method="GET",route="/api/products/:id",status="200"} 2`)
	assert.Contains(t, text, `shopcompare_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, text, "go_goroutines")
}

func TestInstrumentProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	client := &http.Client{Transport: m.InstrumentProvider(nil)}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	count, err := testutil.GatherAndCount(reg, "shopcompare_provider_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
