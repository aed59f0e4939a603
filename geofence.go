package gpswox

import (
	"context"
	"net/http"
)

var geofenceEndpoints = struct {
	list, add, edit, destroy, changeActive, pointIn endpoint
	groups, storeGroup, updateGroup                 endpoint
}{
	list:         endpoint{http.MethodGet, "api/get_geofences", inQuery},
	add:          endpoint{http.MethodPost, "api/add_geofence", inJSON},
	edit:         endpoint{http.MethodPost, "api/edit_geofence", inJSON},
	destroy:      endpoint{http.MethodGet, "api/destroy_geofence", inQuery},
	changeActive: endpoint{http.MethodGet, "api/change_active_geofence", inQuery},
	pointIn:      endpoint{http.MethodGet, "api/point_in_geofences", inQuery},
	groups:       endpoint{http.MethodGet, "api/geofences_groups", inQuery},
	storeGroup:   endpoint{http.MethodPost, "api/geofences_groups/store", inJSON},
	updateGroup:  endpoint{http.MethodPut, "api/geofences_groups/update/%d", inJSON},
}

// GeofenceService manages geofences and geofence groups.
type GeofenceService struct {
	r Requester
}

// GetGeofences lists geofences matching filters.
func (s *GeofenceService) GetGeofences(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.list.request(filters))
}

// AddGeofence creates a geofence.
func (s *GeofenceService) AddGeofence(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.add.request(data))
}

// EditGeofence updates a geofence.
func (s *GeofenceService) EditGeofence(ctx context.Context, geofenceID int, data Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.edit.request(data.With("geofence_id", geofenceID)))
}

// DestroyGeofence deletes a geofence.
func (s *GeofenceService) DestroyGeofence(ctx context.Context, geofenceID int) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.destroy.request(Params{"geofence_id": geofenceID}))
}

// ChangeActiveGeofence toggles a geofence on or off.
func (s *GeofenceService) ChangeActiveGeofence(ctx context.Context, geofenceID int) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.changeActive.request(Params{"geofence_id": geofenceID}))
}

// PointInGeofences lists the geofences containing a point.
func (s *GeofenceService) PointInGeofences(ctx context.Context, latitude, longitude float64, params Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.pointIn.request(
		params.With("latitude", latitude).With("longitude", longitude),
	))
}

// GetGeofenceGroups lists geofence groups.
func (s *GeofenceService) GetGeofenceGroups(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.groups.request(params))
}

// StoreGeofenceGroup creates a geofence group.
func (s *GeofenceService) StoreGeofenceGroup(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.storeGroup.request(data))
}

// UpdateGeofenceGroup updates a geofence group.
func (s *GeofenceService) UpdateGeofenceGroup(ctx context.Context, groupID int, data Params) (any, error) {
	return s.r.Do(ctx, geofenceEndpoints.updateGroup.request(data, groupID))
}
