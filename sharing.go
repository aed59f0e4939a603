package gpswox

import (
	"context"
	"net/http"
)

var sharingEndpoints = struct {
	list, create, get, update, remove, updateDevices endpoint
}{
	list:          endpoint{http.MethodGet, "api/sharing", inQuery},
	create:        endpoint{http.MethodPost, "api/sharing", inJSON},
	get:           endpoint{http.MethodGet, "api/sharing/%d", inQuery},
	update:        endpoint{http.MethodPut, "api/sharing/%d", inJSON},
	remove:        endpoint{http.MethodDelete, "api/sharing/%d", inNone},
	updateDevices: endpoint{http.MethodPut, "api/sharing/%d/devices", inJSON},
}

// SharingService manages location sharing links.
type SharingService struct {
	r Requester
}

// GetSharing lists sharing links.
func (s *SharingService) GetSharing(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.list.request(params))
}

// CreateSharing creates a sharing link.
func (s *SharingService) CreateSharing(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.create.request(data))
}

// GetSharingByID returns one sharing link.
func (s *SharingService) GetSharingByID(ctx context.Context, sharingID int, params Params) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.get.request(params, sharingID))
}

// UpdateSharing updates a sharing link.
func (s *SharingService) UpdateSharing(ctx context.Context, sharingID int, data Params) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.update.request(data, sharingID))
}

// DeleteSharing deletes a sharing link.
func (s *SharingService) DeleteSharing(ctx context.Context, sharingID int) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.remove.request(nil, sharingID))
}

// UpdateSharingDevices replaces the devices of a sharing link.
func (s *SharingService) UpdateSharingDevices(ctx context.Context, sharingID int, data Params) (any, error) {
	return s.r.Do(ctx, sharingEndpoints.updateDevices.request(data, sharingID))
}
