package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("http_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "http_test"))
	router.POST("/v1/cards/generate", func(c *gin.Context) {
		c.String(http.StatusOK, "0000001|4658610000000003|12|2030|123")
	})
	router.GET("/v1/cards/:number", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"number": c.Param("number")})
	})

	for range 3 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/cards/generate", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	for _, number := range []string{"4111111111111111", "79927398713"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cards/"+number, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)

	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="POST".*path="/v1/cards/generate".*status_code="200"`, `3`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="GET".*path="/v1/cards/:number".*status_code="200"`, `2`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`path="unknown".*status_code="404"`, `1`)
	assertMetricLine(t, output, `http_test_http_request_duration_seconds_count`,
		`method="POST".*path="/v1/cards/generate"`, `3`)
}

func TestRoutePattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/cards/generate", expected: "/v1/cards/generate"},
		{name: "ParamPattern", input: "/v1/cards/:number", expected: "/v1/cards/:number"},
		{name: "EmptyPath", input: "", expected: "unknown"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, routePattern(tt.input))
		})
	}
}
