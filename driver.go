package gpswox

import (
	"context"
	"net/http"
)

var driverEndpoints = struct {
	list, addData, add, editData, edit, destroy endpoint
}{
	list:     endpoint{http.MethodGet, "api/get_user_drivers", inQuery},
	addData:  endpoint{http.MethodGet, "api/add_user_driver_data", inQuery},
	add:      endpoint{http.MethodPost, "api/add_user_driver", inJSON},
	editData: endpoint{http.MethodGet, "api/edit_user_driver_data", inQuery},
	edit:     endpoint{http.MethodPost, "api/edit_user_driver", inJSON},
	destroy:  endpoint{http.MethodGet, "api/destroy_user_driver", inQuery},
}

// DriverService manages drivers.
type DriverService struct {
	r Requester
}

// GetUserDrivers lists drivers matching filters.
func (s *DriverService) GetUserDrivers(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, driverEndpoints.list.request(filters))
}

// AddUserDriverData returns the form data needed to create a driver.
func (s *DriverService) AddUserDriverData(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, driverEndpoints.addData.request(params))
}

// AddUserDriver creates a driver.
func (s *DriverService) AddUserDriver(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, driverEndpoints.add.request(data))
}

// EditUserDriverData returns the form data needed to edit a driver.
func (s *DriverService) EditUserDriverData(ctx context.Context, driverID int, params Params) (any, error) {
	return s.r.Do(ctx, driverEndpoints.editData.request(params.With("driver_id", driverID)))
}

// EditUserDriver updates a driver.
func (s *DriverService) EditUserDriver(ctx context.Context, driverID int, data Params) (any, error) {
	return s.r.Do(ctx, driverEndpoints.edit.request(data.With("driver_id", driverID)))
}

// DestroyUserDriver deletes a driver.
func (s *DriverService) DestroyUserDriver(ctx context.Context, driverID int) (any, error) {
	return s.r.Do(ctx, driverEndpoints.destroy.request(Params{"driver_id": driverID}))
}
