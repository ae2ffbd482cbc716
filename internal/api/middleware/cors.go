package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// The API is read-only apart from POST /recommendations and takes no credentials
const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Accept, Content-Type, X-Request-ID"
)

// CORSConfig controls cross-origin access to the JSON API
type CORSConfig struct {
	// AllowOrigins lists exact origins; "*" allows any
	AllowOrigins []string
	// PathPrefixes limits CORS handling to these paths; the HTML site is same-origin only
	PathPrefixes []string
	// ExposeHeaders lets browser clients read the request id and export file names
	ExposeHeaders []string
	MaxAge        time.Duration
}

// DefaultCORSConfig opens the API and its docs to any origin
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:  []string{"*"},
		PathPrefixes:  []string{"/api", "/swagger"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        time.Hour,
	}
}

// CORS answers preflight requests and tags API responses for browser clients.
// Requests from origins outside the list get no CORS headers, and their
// preflights are refused with 403.
func CORS(config CORSConfig) gin.HandlerFunc {
	anyOrigin := lo.Contains(config.AllowOrigins, "*")
	allowed := lo.SliceToMap(config.AllowOrigins, func(o string) (string, bool) {
		return strings.TrimSuffix(o, "/"), true
	})
	exposed := strings.Join(config.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(int(config.MaxAge.Seconds()))

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		path := c.Request.URL.Path
		inScope := lo.SomeBy(config.PathPrefixes, func(p string) bool { return strings.HasPrefix(path, p) })
		if origin == "" || !inScope {
			c.Next()
			return
		}

		preflight := c.Request.Method == http.MethodOptions
		if anyOrigin {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			c.Header("Vary", "Origin")
			if !allowed[origin] {
				if preflight {
					c.AbortWithStatus(http.StatusForbidden)
					return
				}
				c.Next()
				return
			}
			c.Header("Access-Control-Allow-Origin", origin)
		}

		if exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}

		if preflight {
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			if config.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", maxAge)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
