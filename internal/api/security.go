package api

import (
	"html"
	"net/http"
	"net/url"
	"regexp"
)

// SecurityMiddleware sets conservative response headers.
func SecurityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.Header().Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}

// InputSanitizationMiddleware scrubs query parameters. Request bodies carry
// prompt text and are passed through untouched: rewriting them would change
// the composed output.
func InputSanitizationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		original := r.URL.Query()
		if len(original) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		sanitized := make(url.Values, len(original))
		for key, values := range original {
			for _, value := range values {
				sanitized.Add(key, sanitizeInput(value))
			}
		}
		r.URL.RawQuery = sanitized.Encode()

		next.ServeHTTP(w, r)
	})
}

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:.*?base64`),
	regexp.MustCompile(`(?i)<(iframe|object|embed|link|meta|input)[^>]*>`),
	regexp.MustCompile(`(?i)expression\s*\(`),
}

func sanitizeInput(input string) string {
	if input == "" {
		return input
	}
	for _, pattern := range dangerousPatterns {
		input = pattern.ReplaceAllString(input, "")
	}
	return html.EscapeString(input)
}
