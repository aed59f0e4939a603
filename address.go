package gpswox

import (
	"context"
	"net/http"
)

var addressEndpoints = struct {
	getAddress, autocomplete, reverse, search endpoint
}{
	getAddress:   endpoint{http.MethodGet, "api/address", inQuery},
	autocomplete: endpoint{http.MethodGet, "api/address/autocomplete", inQuery},
	reverse:      endpoint{http.MethodGet, "api/address/reverse", inQuery},
	search:       endpoint{http.MethodGet, "api/address/search", inQuery},
}

// AddressService geocodes addresses and coordinates.
type AddressService struct {
	r Requester
}

// GetAddress looks up an address.
func (s *AddressService) GetAddress(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, addressEndpoints.getAddress.request(params))
}

// Autocomplete suggests addresses matching query.
func (s *AddressService) Autocomplete(ctx context.Context, query string, params Params) (any, error) {
	return s.r.Do(ctx, addressEndpoints.autocomplete.request(params.With("query", query)))
}

// Reverse resolves coordinates to an address.
func (s *AddressService) Reverse(ctx context.Context, latitude, longitude float64, params Params) (any, error) {
	return s.r.Do(ctx, addressEndpoints.reverse.request(
		params.With("latitude", latitude).With("longitude", longitude),
	))
}

// Search finds addresses matching query.
func (s *AddressService) Search(ctx context.Context, query string, params Params) (any, error) {
	return s.r.Do(ctx, addressEndpoints.search.request(params.With("query", query)))
}
