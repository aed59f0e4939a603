package gpswox

import (
	"context"
	"net/http"
)

var commandEndpoints = struct {
	sendCommandData, sendGprsCommand, sendSmsCommand, getDeviceCommands endpoint
}{
	sendCommandData:   endpoint{http.MethodGet, "api/send_command_data", inQuery},
	sendGprsCommand:   endpoint{http.MethodPost, "api/send_gprs_command", inMultipart},
	sendSmsCommand:    endpoint{http.MethodPost, "api/send_sms_command", inMultipart},
	getDeviceCommands: endpoint{http.MethodGet, "api/get_device_commands", inQuery},
}

// CommandService sends commands to devices.
//
// Send methods post multipart forms: map and slice values are JSON encoded
// into a single field, true becomes "1" and false an empty field.
type CommandService struct {
	r Requester
}

// SendCommandData returns the form data for sending a command to a device.
func (s *CommandService) SendCommandData(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, commandEndpoints.sendCommandData.request(params.With("device_id", deviceID)))
}

// SendGprsCommand sends a GPRS command to a device.
func (s *CommandService) SendGprsCommand(ctx context.Context, deviceID int, data Params) (any, error) {
	return s.r.Do(ctx, commandEndpoints.sendGprsCommand.request(data.With("device_id", deviceID)))
}

// SendSmsCommand sends an SMS command to a device.
func (s *CommandService) SendSmsCommand(ctx context.Context, deviceID int, data Params) (any, error) {
	return s.r.Do(ctx, commandEndpoints.sendSmsCommand.request(data.With("device_id", deviceID)))
}

// GetDeviceCommands lists the commands a device supports.
func (s *CommandService) GetDeviceCommands(ctx context.Context, deviceID int, params Params) (any, error) {
	return s.r.Do(ctx, commandEndpoints.getDeviceCommands.request(params.With("device_id", deviceID)))
}
