package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/animal-rescue-backend/internal/config"
)

// CORS answers preflight requests and decorates responses to allowed
// origins. A "*" entry allows any origin; the concrete origin is always
// echoed so credentialed requests keep working. The request id header is
// exposed to browser clients.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	_, anyOrigin := origins["*"]
	methods := strings.Join(keys(splitList(cfg.AllowedMethods), cfg.AllowedMethods), ",")
	headers := strings.Join(keys(splitList(cfg.AllowedHeaders), cfg.AllowedHeaders), ",")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")

			_, listed := origins[origin]
			allowed := anyOrigin || listed
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				next.ServeHTTP(w, r)
				return
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			if allowed {
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// splitList parses a comma separated config value into a set.
func splitList(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = struct{}{}
		}
	}
	return set
}

// keys returns the members of set in the order they appear in raw.
func keys(set map[string]struct{}, raw string) []string {
	out := make([]string, 0, len(set))
	seen := make(map[string]bool, len(set))
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if _, ok := set[item]; ok && !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
