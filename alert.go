package gpswox

import (
	"context"
	"net/http"
)

var alertEndpoints = struct {
	getProtocols, getAlerts, addAlertData, addAlert           endpoint
	editAlertData, editAlert, destroyAlert, changeActiveAlert endpoint
	getCustomEventsByDevice, setAlertDevices                  endpoint
	getDeviceAlerts, setAlertTimePeriod, getEventsByProtocol  endpoint
	getAlertsAttributes, getAlertsCommands, getAlertsSummary  endpoint
}{
	getProtocols:            endpoint{http.MethodGet, "api/get_protocols", inNone},
	getAlerts:               endpoint{http.MethodGet, "api/get_alerts", inQuery},
	addAlertData:            endpoint{http.MethodGet, "api/add_alert_data", inQuery},
	addAlert:                endpoint{http.MethodPost, "api/add_alert", inJSON},
	editAlertData:           endpoint{http.MethodGet, "api/edit_alert_data", inQuery},
	editAlert:               endpoint{http.MethodPost, "api/edit_alert", inJSON},
	destroyAlert:            endpoint{http.MethodGet, "api/destroy_alert", inQuery},
	changeActiveAlert:       endpoint{http.MethodGet, "api/change_active_alert", inQuery},
	getCustomEventsByDevice: endpoint{http.MethodGet, "api/get_custom_events_by_device", inQuery},
	setAlertDevices:         endpoint{http.MethodGet, "api/set_alert_devices", inQuery},
	getDeviceAlerts:         endpoint{http.MethodGet, "api/devices/%d/alerts", inQuery},
	setAlertTimePeriod:      endpoint{http.MethodPost, "api/devices/%d/alerts/%d/time_period", inJSON},
	getEventsByProtocol:     endpoint{http.MethodGet, "api/get_events_by_protocol", inQuery},
	getAlertsAttributes:     endpoint{http.MethodGet, "api/get_alerts_attributes", inQuery},
	getAlertsCommands:       endpoint{http.MethodGet, "api/get_alerts_commands", inQuery},
	getAlertsSummary:        endpoint{http.MethodGet, "api/get_alerts_summary", inQuery},
}

// AlertService manages alerts and their device bindings.
type AlertService struct {
	r Requester
}

// GetProtocols lists the device protocols alerts can target.
func (s *AlertService) GetProtocols(ctx context.Context) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getProtocols.request(nil))
}

// GetAlerts lists alerts matching filters.
func (s *AlertService) GetAlerts(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getAlerts.request(filters))
}

// AddAlertData returns the form data needed to create an alert.
func (s *AlertService) AddAlertData(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.addAlertData.request(params))
}

// AddAlert creates an alert.
func (s *AlertService) AddAlert(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.addAlert.request(data))
}

// EditAlertData returns the form data needed to edit an alert.
func (s *AlertService) EditAlertData(ctx context.Context, alertID int, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.editAlertData.request(params.With("alert_id", alertID)))
}

// EditAlert updates an alert.
func (s *AlertService) EditAlert(ctx context.Context, alertID int, data Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.editAlert.request(data.With("alert_id", alertID)))
}

// DestroyAlert deletes an alert.
func (s *AlertService) DestroyAlert(ctx context.Context, alertID int) (any, error) {
	return s.r.Do(ctx, alertEndpoints.destroyAlert.request(Params{"alert_id": alertID}))
}

// ChangeActiveAlert toggles an alert on or off.
func (s *AlertService) ChangeActiveAlert(ctx context.Context, alertID int) (any, error) {
	return s.r.Do(ctx, alertEndpoints.changeActiveAlert.request(Params{"alert_id": alertID}))
}

// GetCustomEventsByDevice lists the custom events available for a device.
func (s *AlertService) GetCustomEventsByDevice(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getCustomEventsByDevice.request(params.With("device_id", deviceID)))
}

// SetAlertDevices binds an alert to a set of devices.
// The ids are sent as device_ids[0]=..&device_ids[1]=...
func (s *AlertService) SetAlertDevices(ctx context.Context, alertID int, deviceIDs []int) (any, error) {
	return s.r.Do(ctx, alertEndpoints.setAlertDevices.request(Params{
		"alert_id":   alertID,
		"device_ids": deviceIDs,
	}))
}

// GetDeviceAlerts lists the alerts of one device.
func (s *AlertService) GetDeviceAlerts(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getDeviceAlerts.request(params, deviceID))
}

// SetAlertTimePeriod sets when an alert is active for a device.
func (s *AlertService) SetAlertTimePeriod(ctx context.Context, deviceID, alertID int, data Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.setAlertTimePeriod.request(data, deviceID, alertID))
}

// GetEventsByProtocol lists the events a protocol can raise.
func (s *AlertService) GetEventsByProtocol(ctx context.Context, protocol string, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getEventsByProtocol.request(params.With("protocol", protocol)))
}

// GetAlertsAttributes lists the attributes alerts can be built on.
func (s *AlertService) GetAlertsAttributes(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getAlertsAttributes.request(params))
}

// GetAlertsCommands lists the commands alerts can trigger.
func (s *AlertService) GetAlertsCommands(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getAlertsCommands.request(params))
}

// GetAlertsSummary returns alert counts.
func (s *AlertService) GetAlertsSummary(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, alertEndpoints.getAlertsSummary.request(params))
}
