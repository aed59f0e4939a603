package gpswox

import (
	"context"
	"net/http"
)

var eventEndpoints = struct {
	list, destroy endpoint
}{
	list:    endpoint{http.MethodGet, "api/get_events", inQuery},
	destroy: endpoint{http.MethodGet, "api/destroy_events", inQuery},
}

// EventService reads and clears device events.
type EventService struct {
	r Requester
}

// GetEvents lists events.
func (s *EventService) GetEvents(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, eventEndpoints.list.request(params))
}

// DestroyEvents deletes the events of a device.
func (s *EventService) DestroyEvents(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, eventEndpoints.destroy.request(params.With("device_id", deviceID)))
}
