package middleware

import (
	"crypto/tls"
	"net/http"
)

// SelfSignedTLS returns the middleware behind ClientConfig.InsecureSkipVerify.
// Self-hosted GPSWox installations are often served with a self-signed
// certificate, which this accepts.
//
// It replaces the wrapped transport with a clone (of next, or of
// http.DefaultTransport when next is not an *http.Transport), so it must be
// the innermost middleware. TLS settings already on next are kept.
func SelfSignedTLS() func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		base, ok := next.(*http.Transport)
		if !ok {
			if base, ok = http.DefaultTransport.(*http.Transport); !ok {
				return next
			}
		}

		transport := base.Clone()
		transport.TLSClientConfig = acceptSelfSigned(transport.TLSClientConfig)

		return transport
	}
}

func acceptSelfSigned(base *tls.Config) *tls.Config {
	config := &tls.Config{MinVersion: tls.VersionTLS12}
	if base != nil {
		config = base.Clone()
	}

	config.InsecureSkipVerify = true //nolint:gosec // Opt-in via ClientConfig.InsecureSkipVerify

	return config
}
