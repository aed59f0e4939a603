package gpswox

import (
	"context"
	"net/http"
)

var sensorEndpoints = struct {
	list, addData, add, editData, edit, destroy endpoint
}{
	list:     endpoint{http.MethodGet, "api/get_sensors", inQuery},
	addData:  endpoint{http.MethodGet, "api/add_sensor_data", inQuery},
	add:      endpoint{http.MethodPost, "api/add_sensor", inJSON},
	editData: endpoint{http.MethodGet, "api/edit_sensor_data", inQuery},
	edit:     endpoint{http.MethodPost, "api/edit_sensor", inJSON},
	destroy:  endpoint{http.MethodGet, "api/destroy_sensor", inQuery},
}

// SensorService manages device sensors.
type SensorService struct {
	r Requester
}

// GetSensors lists the sensors of a device.
func (s *SensorService) GetSensors(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.list.request(params.With("device_id", deviceID)))
}

// AddSensorData returns the form data needed to add a sensor to a device.
func (s *SensorService) AddSensorData(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.addData.request(params.With("device_id", deviceID)))
}

// AddSensor creates a sensor.
func (s *SensorService) AddSensor(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.add.request(data))
}

// EditSensorData returns the form data needed to edit a sensor.
func (s *SensorService) EditSensorData(ctx context.Context, sensorID int, params Params) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.editData.request(params.With("sensor_id", sensorID)))
}

// EditSensor updates a sensor.
func (s *SensorService) EditSensor(ctx context.Context, sensorID int, data Params) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.edit.request(data.With("sensor_id", sensorID)))
}

// DestroySensor deletes a sensor.
func (s *SensorService) DestroySensor(ctx context.Context, sensorID int) (any, error) {
	return s.r.Do(ctx, sensorEndpoints.destroy.request(Params{"sensor_id": sensorID}))
}
