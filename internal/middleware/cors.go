package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed "scheme://*.domain" pattern that matches a
// single subdomain level, e.g. "https://*.lumen-app.pages.dev" matches
// each preview deployment origin.
type wildcardOrigin struct {
	scheme string
	suffix string
}

// parseWildcardOrigin parses an allowed-origin pattern containing a
// wildcard. Returns nil when the pattern is not a valid wildcard origin:
// the wildcard must sit directly after the scheme, be followed by a dot,
// and leave at least a two-label domain.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	host := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(host, "*.") {
		return nil
	}
	suffix := host[1:] // keep the leading dot
	domain := suffix[1:]
	if strings.Contains(domain, "*") {
		return nil
	}
	if len(strings.Split(domain, ".")) < 2 {
		return nil
	}
	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether origin is covered by the wildcard pattern.
// Only one subdomain level is allowed, so "https://a.b.example.com"
// does not match "https://*.example.com".
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	sub := strings.TrimSuffix(host, w.suffix)
	if sub == "" || strings.Contains(sub, ".") {
		return false
	}
	return true
}

// CORS restricts cross-origin requests to the configured origins.
// An empty list allows all origins; entries may be exact origins or
// single-level wildcard patterns like "https://*.example.com".
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0

	var exact []string
	var wildcards []*wildcardOrigin
	for _, pattern := range allowedOrigins {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if w := parseWildcardOrigin(pattern); w != nil {
			wildcards = append(wildcards, w)
			continue
		}
		exact = append(exact, pattern)
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exact {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == http.MethodOptions {
			// Origin not allowed, reject the preflight outright
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
