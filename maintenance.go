package gpswox

import (
	"context"
	"net/http"
)

var maintenanceEndpoints = struct {
	list, addData, add, editData, edit, destroy endpoint
}{
	list:     endpoint{http.MethodGet, "api/get_services", inQuery},
	addData:  endpoint{http.MethodGet, "api/add_service_data", inQuery},
	add:      endpoint{http.MethodPost, "api/add_service", inJSON},
	editData: endpoint{http.MethodGet, "api/edit_service_data", inQuery},
	edit:     endpoint{http.MethodPost, "api/edit_service", inJSON},
	destroy:  endpoint{http.MethodGet, "api/destroy_service", inQuery},
}

// MaintenanceService manages device services: scheduled maintenance tasks
// such as oil changes, tracked by odometer, engine hours or date.
// The API calls them "services".
type MaintenanceService struct {
	r Requester
}

// GetServices lists the services of a device.
func (s *MaintenanceService) GetServices(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.list.request(params.With("device_id", deviceID)))
}

// AddServiceData returns the form data needed to add a service to a device.
func (s *MaintenanceService) AddServiceData(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.addData.request(params.With("device_id", deviceID)))
}

// AddService creates a service.
func (s *MaintenanceService) AddService(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.add.request(data))
}

// EditServiceData returns the form data needed to edit a service.
func (s *MaintenanceService) EditServiceData(ctx context.Context, serviceID int, params Params) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.editData.request(params.With("service_id", serviceID)))
}

// EditService updates a service.
func (s *MaintenanceService) EditService(ctx context.Context, serviceID int, data Params) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.edit.request(data.With("service_id", serviceID)))
}

// DestroyService deletes a service.
func (s *MaintenanceService) DestroyService(ctx context.Context, serviceID int) (any, error) {
	return s.r.Do(ctx, maintenanceEndpoints.destroy.request(Params{"service_id": serviceID}))
}
