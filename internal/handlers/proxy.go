package handlers

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewAPIProxy relaie les routes /api inconnues vers le backend externe
// (méthode, en-têtes et corps intacts, préfixe /api retiré). Un backend
// injoignable donne un 502 générique.
func NewAPIProxy(upstream string) gin.HandlerFunc {
	target, err := url.Parse(upstream)
	if err != nil {
		log.Printf("❌ UPSTREAM_API_URL invalide (%q): %v", upstream, err)
		return func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{"detail": "Bad Gateway"})
		}
	}

	proxy := httputil.NewSingleHostReverseProxy(target)

	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.URL.Path = strings.TrimPrefix(req.URL.Path, "/api")
		if req.URL.Path == "" {
			req.URL.Path = "/"
		}
		req.Host = target.Host
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("⚠️ Proxy vers %s échoué: %v", upstream, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"Bad Gateway"}`))
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}
