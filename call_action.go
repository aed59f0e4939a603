package gpswox

import (
	"context"
	"net/http"
)

var callActionEndpoints = struct {
	list, get, store, update, destroy, eventTypes, responseTypes endpoint
}{
	list:          endpoint{http.MethodGet, "api/call_actions", inQuery},
	get:           endpoint{http.MethodGet, "api/call_actions/%d", inQuery},
	store:         endpoint{http.MethodPost, "api/call_actions/store", inJSON},
	update:        endpoint{http.MethodPut, "api/call_actions/update/%d", inJSON},
	destroy:       endpoint{http.MethodDelete, "api/call_actions/destory/%d", inNone}, // sic, server route
	eventTypes:    endpoint{http.MethodGet, "api/call_actions/event_types", inQuery},
	responseTypes: endpoint{http.MethodGet, "api/call_actions/response_types", inQuery},
}

// CallActionService manages call actions: automated responses to device events.
type CallActionService struct {
	r Requester
}

// GetCallActions lists call actions.
func (s *CallActionService) GetCallActions(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.list.request(params))
}

// GetCallAction returns one call action.
func (s *CallActionService) GetCallAction(ctx context.Context, actionID int, params Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.get.request(params, actionID))
}

// StoreCallAction creates a call action.
func (s *CallActionService) StoreCallAction(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.store.request(data))
}

// UpdateCallAction updates a call action.
func (s *CallActionService) UpdateCallAction(ctx context.Context, actionID int, data Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.update.request(data, actionID))
}

// DestroyCallAction deletes a call action.
func (s *CallActionService) DestroyCallAction(ctx context.Context, actionID int) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.destroy.request(nil, actionID))
}

// GetEventTypes lists the event types a call action can react to.
func (s *CallActionService) GetEventTypes(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.eventTypes.request(params))
}

// GetResponseTypes lists the available call action responses.
func (s *CallActionService) GetResponseTypes(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, callActionEndpoints.responseTypes.request(params))
}
