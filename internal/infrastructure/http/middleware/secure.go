package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureOptions builds the header policy for the admin API. The service
// serves JSON only, so the CSP locks everything to self and forbids framing;
// the front end lives on its own origin.
func SecureOptions(isDevelopment bool) secure.Options {
	return secure.Options{
		// Development relaxes the enforcement that breaks plain-HTTP
		// localhost behind the front end dev server.
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none'",
		ReferrerPolicy:        "no-referrer",
	}
}

// NewSecure wraps unrolled/secure as a chi-compatible middleware.
func NewSecure(opts secure.Options) func(next http.Handler) http.Handler {
	return secure.New(opts).Handler
}
