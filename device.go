package gpswox

import (
	"context"
	"net/http"
	"net/url"
)

var deviceEndpoints = struct {
	list, latest, addData, create, editData, edit, destroy, changeActive endpoint
	groupsList, createGroup, updateGroup                                endpoint
	getGroups, storeGroup, updateGroupByID                              endpoint
	media, mediaFile, deleteMediaFile                                   endpoint
}{
	list:            endpoint{http.MethodGet, "api/get_devices", inQuery},
	latest:          endpoint{http.MethodGet, "api/get_devices_latest", inNone},
	addData:         endpoint{http.MethodGet, "api/add_device_data", inNone},
	create:          endpoint{http.MethodPost, "api/add_device", inJSON},
	editData:        endpoint{http.MethodGet, "api/edit_device_data", inQuery},
	edit:            endpoint{http.MethodPost, "api/edit_device", inJSON},
	destroy:         endpoint{http.MethodGet, "api/destroy_device", inQuery},
	changeActive:    endpoint{http.MethodGet, "api/change_active_device", inQuery},
	groupsList:      endpoint{http.MethodGet, "api/device_groups_list", inNone},
	createGroup:     endpoint{http.MethodPost, "api/create_device_group", inJSON},
	updateGroup:     endpoint{http.MethodPut, "api/update_device_group", inJSON},
	getGroups:       endpoint{http.MethodGet, "api/devices_groups", inQuery},
	storeGroup:      endpoint{http.MethodPost, "api/devices_groups/store", inJSON},
	updateGroupByID: endpoint{http.MethodPut, "api/devices_groups/update/%d", inJSON},
	media:           endpoint{http.MethodGet, "api/devices/%d/media", inQuery},
	mediaFile:       endpoint{http.MethodGet, "api/devices/%d/media/file/%s", inNone},
	deleteMediaFile: endpoint{http.MethodDelete, "api/devices/%d/media/file/%s", inNone},
}

// DeviceService manages tracked devices, device groups and device media.
type DeviceService struct {
	r Requester
}

// ListDevices lists devices matching filters.
func (s *DeviceService) ListDevices(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.list.request(filters))
}

// GetDevicesLatest returns the latest positions of all devices.
func (s *DeviceService) GetDevicesLatest(ctx context.Context) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.latest.request(nil))
}

// ListAddDeviceData returns the form data needed to create a device.
func (s *DeviceService) ListAddDeviceData(ctx context.Context) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.addData.request(nil))
}

// CreateDevice creates a device.
func (s *DeviceService) CreateDevice(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.create.request(data))
}

// ListEditDeviceData returns the form data needed to edit a device.
func (s *DeviceService) ListEditDeviceData(ctx context.Context, deviceID int) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.editData.request(Params{"device_id": deviceID}))
}

// EditDevice updates a device. The id goes in the query, data in the body.
func (s *DeviceService) EditDevice(ctx context.Context, deviceID int, data Params) (any, error) {
	req := deviceEndpoints.edit.request(data)
	req.Query = Params{"device_id": deviceID}

	return s.r.Do(ctx, req)
}

// DestroyDevice deletes a device.
func (s *DeviceService) DestroyDevice(ctx context.Context, deviceID int) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.destroy.request(Params{"device_id": deviceID}))
}

// ChangeActiveDevice toggles a device on or off.
func (s *DeviceService) ChangeActiveDevice(ctx context.Context, deviceID int) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.changeActive.request(Params{"device_id": deviceID}))
}

// ListDeviceGroups lists device groups.
func (s *DeviceService) ListDeviceGroups(ctx context.Context) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.groupsList.request(nil))
}

// CreateDeviceGroup creates a device group.
func (s *DeviceService) CreateDeviceGroup(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.createGroup.request(data))
}

// UpdateDeviceGroup updates a device group. The id goes in the query, data in the body.
func (s *DeviceService) UpdateDeviceGroup(ctx context.Context, groupID int, data Params) (any, error) {
	req := deviceEndpoints.updateGroup.request(data)
	req.Query = Params{"group_id": groupID}

	return s.r.Do(ctx, req)
}

// GetDeviceGroups lists device groups through the newer groups endpoint.
func (s *DeviceService) GetDeviceGroups(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.getGroups.request(params))
}

// StoreDeviceGroup creates a device group through the newer groups endpoint.
func (s *DeviceService) StoreDeviceGroup(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.storeGroup.request(data))
}

// UpdateDeviceGroupByID updates a device group through the newer groups endpoint.
func (s *DeviceService) UpdateDeviceGroupByID(ctx context.Context, groupID int, data Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.updateGroupByID.request(data, groupID))
}

// GetDeviceMedia lists the media files of a device.
func (s *DeviceService) GetDeviceMedia(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.media.request(params, deviceID))
}

// GetDeviceMediaFile fetches one media file. The file name is path-escaped.
func (s *DeviceService) GetDeviceMediaFile(ctx context.Context, deviceID int, filename string) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.mediaFile.request(nil, deviceID, url.PathEscape(filename)))
}

// DeleteDeviceMediaFile deletes one media file. The file name is path-escaped.
func (s *DeviceService) DeleteDeviceMediaFile(ctx context.Context, deviceID int, filename string) (any, error) {
	return s.r.Do(ctx, deviceEndpoints.deleteMediaFile.request(nil, deviceID, url.PathEscape(filename)))
}
