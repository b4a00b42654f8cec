package middelware

import (
	"net/http"
	"strings"

	"fieldops-backend/models"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware applies the configured cross-origin policy. Dispatch boards
// run in the browser, so the API has to answer preflights for every mutating
// verb the assignment endpoints use.
type CORSMiddleware struct {
	origins  []string
	allowAll bool
}

// NewCORSMiddleware creates a new CORS middleware from the configured origin
// list. A "*" entry allows every origin.
func NewCORSMiddleware(cfg *models.Config) *CORSMiddleware {
	m := &CORSMiddleware{origins: cfg.CORSOrigins}
	for _, o := range cfg.CORSOrigins {
		if o == "*" {
			m.allowAll = true
		}
	}
	return m
}

// CORS returns the gin handler applying the policy.
func (m *CORSMiddleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if m.originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With, X-Cron-Secret")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func (m *CORSMiddleware) originAllowed(origin string) bool {
	if origin == "" || m.allowAll {
		return true
	}

	for _, allowed := range m.origins {
		if allowed == origin {
			return true
		}
		// *.example.com matches any subdomain and the apex
		if strings.HasPrefix(allowed, "*.") {
			domain := allowed[2:]
			if origin == domain || strings.HasSuffix(origin, "."+domain) {
				return true
			}
		}
	}

	return false
}
