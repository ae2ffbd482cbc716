package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"speechbench/internal/api/errors"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequestID(t *testing.T) {
	router := newRouter()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	generated := rec.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"caller id is reused", "abc-123", true},
		{"spaces are rejected", "abc 123", false},
		{"control characters are rejected", "abc\x7f", false},
		{"non ascii is rejected", "req-ü", false},
		{"overlong id is rejected", strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set(RequestIDHeader, tt.header)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if tt.reused {
				assert.Equal(t, tt.header, rec.Body.String())
			} else {
				assert.NotEqual(t, tt.header, rec.Body.String())
				assert.Len(t, rec.Body.String(), 36)
			}
			assert.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestStructuredLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	router := newRouter()
	router.Use(RequestID(), StructuredLogging(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ok", "/missing", "/boom", "/health"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3, "health probes are not logged")
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}

func TestErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	router := newRouter()
	router.Use(RequestID(), ErrorHandler(zap.New(core)))
	router.GET("/api-error", func(c *gin.Context) { HandleError(c, errors.NewNotFoundError("provider")) })
	router.GET("/plain-error", func(c *gin.Context) { HandleError(c, stderrors.New("disk on fire")) })
	router.GET("/panic", func(c *gin.Context) { panic("unexpected") })

	tests := []struct {
		path   string
		status int
		kind   string
	}{
		{"/api-error", http.StatusNotFound, `"kind":"not_found"`},
		{"/plain-error", http.StatusInternalServerError, `"kind":"internal"`},
		{"/panic", http.StatusInternalServerError, `"kind":"internal"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.kind)
			assert.Contains(t, rec.Body.String(), `"request_id"`)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}

	assert.Equal(t, 2, logs.Len(), "non-API errors are logged")
}

func TestCORS(t *testing.T) {
	restricted := DefaultCORSConfig()
	restricted.AllowOrigins = []string{"https://allowed.dev/"}

	tests := []struct {
		name          string
		config        CORSConfig
		method        string
		path          string
		origin        string
		status        int
		allowOrigin   string
		allowMethods  string
		exposeHeaders string
	}{
		{
			name:          "preflight from any origin",
			config:        DefaultCORSConfig(),
			method:        "OPTIONS",
			path:          "/api/v1/recommendations",
			origin:        "https://example.com",
			status:        http.StatusNoContent,
			allowOrigin:   "*",
			allowMethods:  "GET, POST, OPTIONS",
			exposeHeaders: "X-Request-ID, Content-Disposition",
		},
		{
			name:          "simple request gets exposed headers only",
			config:        DefaultCORSConfig(),
			method:        "GET",
			path:          "/api/v1/leaderboard",
			origin:        "https://example.com",
			status:        http.StatusOK,
			allowOrigin:   "*",
			exposeHeaders: "X-Request-ID, Content-Disposition",
		},
		{
			name:   "html pages are left alone",
			config: DefaultCORSConfig(),
			method: "GET",
			path:   "/leaderboard",
			origin: "https://example.com",
			status: http.StatusOK,
		},
		{
			name:   "no origin header",
			config: DefaultCORSConfig(),
			method: "GET",
			path:   "/api/v1/leaderboard",
			status: http.StatusOK,
		},
		{
			name:          "listed origin is echoed",
			config:        restricted,
			method:        "GET",
			path:          "/api/v1/leaderboard",
			origin:        "https://allowed.dev",
			status:        http.StatusOK,
			allowOrigin:   "https://allowed.dev",
			exposeHeaders: "X-Request-ID, Content-Disposition",
		},
		{
			name:   "unlisted origin gets no headers",
			config: restricted,
			method: "GET",
			path:   "/api/v1/leaderboard",
			origin: "https://other.dev",
			status: http.StatusOK,
		},
		{
			name:   "unlisted origin preflight is refused",
			config: restricted,
			method: "OPTIONS",
			path:   "/api/v1/recommendations",
			origin: "https://other.dev",
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter()
			router.Use(CORS(tt.config))
			router.GET("/api/v1/leaderboard", func(c *gin.Context) { c.Status(http.StatusOK) })
			router.GET("/leaderboard", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.allowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.allowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.exposeHeaders, rec.Header().Get("Access-Control-Expose-Headers"))
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			if tt.allowMethods != "" {
				assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	router := newRouter()
	router.Use(Metrics(m))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("/items/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))

	expected := `
# HELP speechbench_http_requests_total HTTP requests by route, method and status.
# TYPE speechbench_http_requests_total counter
speechbench_http_requests_total{method="GET",route="/items/:id",status="200"} 3
speechbench_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "speechbench_http_requests_total"))
}

type query struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=10"`
	Name  string `form:"name" binding:"required"`
}

func (q query) Validate() error {
	if q.Name == "reserved" {
		return errors.NewValidationError("Validation failed", map[string]string{"name": "is reserved"})
	}
	return nil
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		url     string
		field   string
		message string
	}{
		{"/?limit=3", "name", "is required"},
		{"/?name=x&limit=50", "limit", "must be at most 10"},
		{"/?name=reserved", "name", "is reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tt.url, nil)

			var q query
			err := ValidateQuery(c, &q)
			require.Error(t, err)

			var apiErr *errors.APIError
			require.True(t, stderrors.As(err, &apiErr))
			assert.Equal(t, tt.message, apiErr.Details[tt.field])
		})
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?name=ok&limit=2", nil)
	var q query
	require.NoError(t, ValidateQuery(c, &q))
	assert.Equal(t, 2, q.Limit)
}
