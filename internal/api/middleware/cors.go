package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// CORS allows the configured client origin plus the usual local dev origins.
// clientURL may be supplied without a scheme; https is assumed in that case.
func CORS(clientURL string) func(http.Handler) http.Handler {
	allowed := map[string]struct{}{
		"http://localhost:5173": {},
		"http://localhost:3000": {},
	}
	if clientURL != "" {
		if !strings.HasPrefix(clientURL, "http://") && !strings.HasPrefix(clientURL, "https://") {
			clientURL = "https://" + clientURL
		}
		allowed[clientURL] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if _, ok := allowed[origin]; ok || isLocalhost(origin) {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isLocalhost(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1"
}
