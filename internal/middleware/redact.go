package middleware

import "net/url"

const redacted = "REDACTED"

// secretParams lists query parameters never written to logs or error messages.
var secretParams = []string{TokenParam, "password"}

// RedactURL renders u with the session token and password query values
// replaced by "REDACTED". Parameters that are absent stay absent.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	query := u.Query()
	changed := false
	for _, name := range secretParams {
		if _, ok := query[name]; ok {
			query.Set(name, redacted)
			changed = true
		}
	}

	if !changed {
		return u.String()
	}

	clone := *u
	clone.RawQuery = query.Encode()

	return clone.String()
}
