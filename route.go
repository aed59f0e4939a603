package gpswox

import (
	"context"
	"net/http"
)

var routeEndpoints = struct {
	list, add, edit, destroy, changeActive endpoint
	groups, storeGroup, updateGroup        endpoint
}{
	list:         endpoint{http.MethodGet, "api/get_routes", inQuery},
	add:          endpoint{http.MethodPost, "api/add_route", inJSON},
	edit:         endpoint{http.MethodPost, "api/edit_route", inJSON},
	destroy:      endpoint{http.MethodGet, "api/destroy_route", inQuery},
	changeActive: endpoint{http.MethodGet, "api/change_active_route", inQuery},
	groups:       endpoint{http.MethodGet, "api/routes_groups", inQuery},
	storeGroup:   endpoint{http.MethodPost, "api/routes_groups/store", inJSON},
	updateGroup:  endpoint{http.MethodPut, "api/routes_groups/update/%d", inJSON},
}

// RouteService manages routes and route groups.
type RouteService struct {
	r Requester
}

// GetRoutes lists routes matching filters.
func (s *RouteService) GetRoutes(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.list.request(filters))
}

// AddRoute creates a route.
func (s *RouteService) AddRoute(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.add.request(data))
}

// EditRoute updates a route.
func (s *RouteService) EditRoute(ctx context.Context, routeID int, data Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.edit.request(data.With("route_id", routeID)))
}

// DestroyRoute deletes a route.
func (s *RouteService) DestroyRoute(ctx context.Context, routeID int) (any, error) {
	return s.r.Do(ctx, routeEndpoints.destroy.request(Params{"route_id": routeID}))
}

// ChangeActiveRoute toggles a route on or off.
func (s *RouteService) ChangeActiveRoute(ctx context.Context, routeID int) (any, error) {
	return s.r.Do(ctx, routeEndpoints.changeActive.request(Params{"route_id": routeID}))
}

// GetRouteGroups lists route groups.
func (s *RouteService) GetRouteGroups(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.groups.request(params))
}

// StoreRouteGroup creates a route group.
func (s *RouteService) StoreRouteGroup(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.storeGroup.request(data))
}

// UpdateRouteGroup updates a route group.
func (s *RouteService) UpdateRouteGroup(ctx context.Context, groupID int, data Params) (any, error) {
	return s.r.Do(ctx, routeEndpoints.updateGroup.request(data, groupID))
}
