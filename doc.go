// Package gpswox is a client for the GPSWox fleet-tracking REST API.
//
// A Client wraps one HTTP transport and one Session. Resource services
// (Devices, Alerts, Geofences, History, Setup, ...) are thin facades that
// shape parameters into a Request and hand it to the client. Responses are
// returned as decoded JSON (map[string]any, []any, scalars or nil) with
// numbers kept as json.Number.
//
// # Authentication
//
// Every request carries the session token as the user_api_hash query
// parameter. Supply it up front or obtain it with Login:
//
//	client, err := gpswox.New("https://gps.example.com/", "")
//	if err != nil {
//	    return err
//	}
//
//	if _, err := client.Login(ctx, email, password); err != nil {
//	    return err
//	}
//
//	devices, err := client.Devices.ListDevices(ctx, nil)
//
// # Errors
//
// Failures are one of three types, matched with errors.As:
//
//   - *AuthenticationError: HTTP 401, or a login response without a token
//   - *APIError: any other 4xx or 5xx response
//   - *TransportError: no response at all (network failure, timeout, cancellation)
//
// The base URL is joined with request paths by RFC 3986 reference
// resolution, so a server installed under a sub-path needs a trailing slash:
// "https://example.com/gps/".
package gpswox
