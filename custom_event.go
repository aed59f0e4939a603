package gpswox

import (
	"context"
	"net/http"
)

var customEventEndpoints = struct {
	list, addData, add, editData, edit, destroy endpoint
}{
	list:     endpoint{http.MethodGet, "api/get_custom_events", inQuery},
	addData:  endpoint{http.MethodGet, "api/add_custom_event_data", inQuery},
	add:      endpoint{http.MethodPost, "api/add_custom_event", inJSON},
	editData: endpoint{http.MethodGet, "api/edit_custom_event_data", inQuery},
	edit:     endpoint{http.MethodPost, "api/edit_custom_event", inJSON},
	destroy:  endpoint{http.MethodGet, "api/destroy_custom_event", inQuery},
}

// CustomEventService manages user-defined events.
type CustomEventService struct {
	r Requester
}

// GetCustomEvents lists custom events matching filters.
func (s *CustomEventService) GetCustomEvents(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.list.request(filters))
}

// AddCustomEventData returns the form data needed to create a custom event.
func (s *CustomEventService) AddCustomEventData(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.addData.request(params))
}

// AddCustomEvent creates a custom event.
func (s *CustomEventService) AddCustomEvent(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.add.request(data))
}

// EditCustomEventData returns the form data needed to edit a custom event.
func (s *CustomEventService) EditCustomEventData(ctx context.Context, eventID int, params Params) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.editData.request(params.With("event_id", eventID)))
}

// EditCustomEvent updates a custom event.
func (s *CustomEventService) EditCustomEvent(ctx context.Context, eventID int, data Params) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.edit.request(data.With("event_id", eventID)))
}

// DestroyCustomEvent deletes a custom event.
func (s *CustomEventService) DestroyCustomEvent(ctx context.Context, eventID int) (any, error) {
	return s.r.Do(ctx, customEventEndpoints.destroy.request(Params{"event_id": eventID}))
}
