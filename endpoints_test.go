package gpswox

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-gpswox/internal/testutil"
)

type endpointCase struct {
	name      string
	call      func(ctx context.Context, c *Client) (any, error)
	method    string
	path      string
	query     url.Values
	json      string
	multipart map[string]string
}

func runEndpointCases(t *testing.T, cases []endpointCase) {
	t.Helper()

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := testutil.NewRecordingServer(t, `{"status":1}`, http.StatusOK)
			client := newTestClient(t, server.URL, testAPIHash)

			result, err := tt.call(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"status": json.Number("1")}, result)

			got := server.Last(t)
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, tt.path, got.EscapedPath)

			query, err := url.ParseQuery(got.RawQuery)
			require.NoError(t, err)
			assert.Equal(t, []string{testAPIHash}, query["user_api_hash"])
			query.Del("user_api_hash")

			want := tt.query
			if want == nil {
				want = url.Values{}
			}
			assert.Equal(t, want, query)

			switch {
			case tt.json != "":
				assert.Equal(t, "application/json", got.ContentType)
				assert.JSONEq(t, tt.json, string(got.Body))
			case tt.multipart != nil:
				assert.Equal(t, tt.multipart, multipartFields(t, got))
			default:
				assert.Empty(t, got.Body)
			}
		})
	}
}

func multipartFields(t *testing.T, got testutil.RecordedRequest) map[string]string {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(got.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	fields := map[string]string{}
	reader := multipart.NewReader(strings.NewReader(string(got.Body)), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)
		fields[part.FormName()] = string(data)
	}

	return fields
}

func TestAddressEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name: "GetAddress",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Addresses.GetAddress(ctx, Params{"lat": 54.68, "lon": 25.27})
			},
			method: http.MethodGet, path: "/api/address",
			query: url.Values{"lat": {"54.68"}, "lon": {"25.27"}},
		},
		{
			name: "Autocomplete",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Addresses.Autocomplete(ctx, "Gedimino", Params{"limit": 5})
			},
			method: http.MethodGet, path: "/api/address/autocomplete",
			query: url.Values{"query": {"Gedimino"}, "limit": {"5"}},
		},
		{
			name: "Reverse",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Addresses.Reverse(ctx, 54.6872, 25.2797, nil)
			},
			method: http.MethodGet, path: "/api/address/reverse",
			query: url.Values{"latitude": {"54.6872"}, "longitude": {"25.2797"}},
		},
		{
			name: "Search",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Addresses.Search(ctx, "Vilnius", nil)
			},
			method: http.MethodGet, path: "/api/address/search",
			query: url.Values{"query": {"Vilnius"}},
		},
	})
}

func TestAlertEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetProtocols",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.GetProtocols(ctx) },
			method: http.MethodGet, path: "/api/get_protocols",
		},
		{
			name:   "GetAlerts",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.GetAlerts(ctx, Params{"active": true}) },
			method: http.MethodGet, path: "/api/get_alerts",
			query: url.Values{"active": {"1"}},
		},
		{
			name:   "AddAlertData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.AddAlertData(ctx, nil) },
			method: http.MethodGet, path: "/api/add_alert_data",
		},
		{
			name: "AddAlert",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.AddAlert(ctx, Params{"name": "Overspeed", "type": "overspeed"})
			},
			method: http.MethodPost, path: "/api/add_alert",
			json: `{"name":"Overspeed","type":"overspeed"}`,
		},
		{
			name:   "EditAlertData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.EditAlertData(ctx, 9, nil) },
			method: http.MethodGet, path: "/api/edit_alert_data",
			query: url.Values{"alert_id": {"9"}},
		},
		{
			name: "EditAlert",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.EditAlert(ctx, 9, Params{"name": "Speeding"})
			},
			method: http.MethodPost, path: "/api/edit_alert",
			json: `{"name":"Speeding","alert_id":9}`,
		},
		{
			name:   "DestroyAlert",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.DestroyAlert(ctx, 9) },
			method: http.MethodGet, path: "/api/destroy_alert",
			query: url.Values{"alert_id": {"9"}},
		},
		{
			name:   "ChangeActiveAlert",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.ChangeActiveAlert(ctx, 9) },
			method: http.MethodGet, path: "/api/change_active_alert",
			query: url.Values{"alert_id": {"9"}},
		},
		{
			name: "GetCustomEventsByDevice",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.GetCustomEventsByDevice(ctx, testDeviceID, nil)
			},
			method: http.MethodGet, path: "/api/get_custom_events_by_device",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "SetAlertDevices",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.SetAlertDevices(ctx, 9, []int{1, 2})
			},
			method: http.MethodGet, path: "/api/set_alert_devices",
			query: url.Values{"alert_id": {"9"}, "device_ids[0]": {"1"}, "device_ids[1]": {"2"}},
		},
		{
			name: "GetDeviceAlerts",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.GetDeviceAlerts(ctx, testDeviceID, nil)
			},
			method: http.MethodGet, path: "/api/devices/1042/alerts",
		},
		{
			name: "SetAlertTimePeriod",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.SetAlertTimePeriod(ctx, testDeviceID, 9, Params{"from": "08:00", "to": "18:00"})
			},
			method: http.MethodPost, path: "/api/devices/1042/alerts/9/time_period",
			json: `{"from":"08:00","to":"18:00"}`,
		},
		{
			name: "GetEventsByProtocol",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Alerts.GetEventsByProtocol(ctx, "teltonika", nil)
			},
			method: http.MethodGet, path: "/api/get_events_by_protocol",
			query: url.Values{"protocol": {"teltonika"}},
		},
		{
			name:   "GetAlertsAttributes",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.GetAlertsAttributes(ctx, nil) },
			method: http.MethodGet, path: "/api/get_alerts_attributes",
		},
		{
			name:   "GetAlertsCommands",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.GetAlertsCommands(ctx, nil) },
			method: http.MethodGet, path: "/api/get_alerts_commands",
		},
		{
			name:   "GetAlertsSummary",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Alerts.GetAlertsSummary(ctx, nil) },
			method: http.MethodGet, path: "/api/get_alerts_summary",
		},
	})
}

func TestCallActionEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetCallActions",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CallActions.GetCallActions(ctx, nil) },
			method: http.MethodGet, path: "/api/call_actions",
		},
		{
			name:   "GetCallAction",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CallActions.GetCallAction(ctx, 4, nil) },
			method: http.MethodGet, path: "/api/call_actions/4",
		},
		{
			name: "StoreCallAction",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.CallActions.StoreCallAction(ctx, Params{"event_type": "sos"})
			},
			method: http.MethodPost, path: "/api/call_actions/store",
			json: `{"event_type":"sos"}`,
		},
		{
			name: "UpdateCallAction",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.CallActions.UpdateCallAction(ctx, 4, Params{"event_type": "sos"})
			},
			method: http.MethodPut, path: "/api/call_actions/update/4",
			json: `{"event_type":"sos"}`,
		},
		{
			name:   "DestroyCallAction",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CallActions.DestroyCallAction(ctx, 4) },
			method: http.MethodDelete, path: "/api/call_actions/destory/4",
		},
		{
			name:   "GetEventTypes",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CallActions.GetEventTypes(ctx, nil) },
			method: http.MethodGet, path: "/api/call_actions/event_types",
		},
		{
			name:   "GetResponseTypes",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CallActions.GetResponseTypes(ctx, nil) },
			method: http.MethodGet, path: "/api/call_actions/response_types",
		},
	})
}

func TestCommandEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name: "SendCommandData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Commands.SendCommandData(ctx, testDeviceID, nil)
			},
			method: http.MethodGet, path: "/api/send_command_data",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "SendGprsCommand",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Commands.SendGprsCommand(ctx, testDeviceID, Params{
					"type":      "engineStop",
					"devices":   []int{1, 2},
					"confirmed": true,
					"silent":    false,
				})
			},
			method: http.MethodPost, path: "/api/send_gprs_command",
			multipart: map[string]string{
				"device_id": "1042",
				"type":      "engineStop",
				"devices":   "[1,2]",
				"confirmed": "1",
				"silent":    "",
			},
		},
		{
			name: "SendSmsCommand",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Commands.SendSmsCommand(ctx, testDeviceID, Params{"message": "STATUS#"})
			},
			method: http.MethodPost, path: "/api/send_sms_command",
			multipart: map[string]string{"device_id": "1042", "message": "STATUS#"},
		},
		{
			name: "GetDeviceCommands",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Commands.GetDeviceCommands(ctx, testDeviceID, nil)
			},
			method: http.MethodGet, path: "/api/get_device_commands",
			query: url.Values{"device_id": {"1042"}},
		},
	})
}

func TestCustomEventEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetCustomEvents",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CustomEvents.GetCustomEvents(ctx, nil) },
			method: http.MethodGet, path: "/api/get_custom_events",
		},
		{
			name:   "AddCustomEventData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CustomEvents.AddCustomEventData(ctx, nil) },
			method: http.MethodGet, path: "/api/add_custom_event_data",
		},
		{
			name: "AddCustomEvent",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.CustomEvents.AddCustomEvent(ctx, Params{"message": "Door open"})
			},
			method: http.MethodPost, path: "/api/add_custom_event",
			json: `{"message":"Door open"}`,
		},
		{
			name: "EditCustomEventData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.CustomEvents.EditCustomEventData(ctx, 6, nil)
			},
			method: http.MethodGet, path: "/api/edit_custom_event_data",
			query: url.Values{"event_id": {"6"}},
		},
		{
			name: "EditCustomEvent",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.CustomEvents.EditCustomEvent(ctx, 6, Params{"message": "Door closed"})
			},
			method: http.MethodPost, path: "/api/edit_custom_event",
			json: `{"message":"Door closed","event_id":6}`,
		},
		{
			name:   "DestroyCustomEvent",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.CustomEvents.DestroyCustomEvent(ctx, 6) },
			method: http.MethodGet, path: "/api/destroy_custom_event",
			query: url.Values{"event_id": {"6"}},
		},
	})
}

func TestDeviceEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name: "ListDevices",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.ListDevices(ctx, Params{"lang": "en"})
			},
			method: http.MethodGet, path: "/api/get_devices",
			query: url.Values{"lang": {"en"}},
		},
		{
			name:   "GetDevicesLatest",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Devices.GetDevicesLatest(ctx) },
			method: http.MethodGet, path: "/api/get_devices_latest",
		},
		{
			name:   "ListAddDeviceData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Devices.ListAddDeviceData(ctx) },
			method: http.MethodGet, path: "/api/add_device_data",
		},
		{
			name: "CreateDevice",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.CreateDevice(ctx, Params{"name": "Truck 7", "imei": "356938035643809"})
			},
			method: http.MethodPost, path: "/api/add_device",
			json: `{"name":"Truck 7","imei":"356938035643809"}`,
		},
		{
			name: "ListEditDeviceData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.ListEditDeviceData(ctx, testDeviceID)
			},
			method: http.MethodGet, path: "/api/edit_device_data",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "EditDevice",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.EditDevice(ctx, testDeviceID, Params{"name": "Truck 8"})
			},
			method: http.MethodPost, path: "/api/edit_device",
			query: url.Values{"device_id": {"1042"}},
			json:  `{"name":"Truck 8"}`,
		},
		{
			name:   "DestroyDevice",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Devices.DestroyDevice(ctx, testDeviceID) },
			method: http.MethodGet, path: "/api/destroy_device",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "ChangeActiveDevice",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.ChangeActiveDevice(ctx, testDeviceID)
			},
			method: http.MethodGet, path: "/api/change_active_device",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name:   "ListDeviceGroups",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Devices.ListDeviceGroups(ctx) },
			method: http.MethodGet, path: "/api/device_groups_list",
		},
		{
			name: "CreateDeviceGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.CreateDeviceGroup(ctx, Params{"title": "Vans"})
			},
			method: http.MethodPost, path: "/api/create_device_group",
			json: `{"title":"Vans"}`,
		},
		{
			name: "UpdateDeviceGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.UpdateDeviceGroup(ctx, 3, Params{"title": "Vans"})
			},
			method: http.MethodPut, path: "/api/update_device_group",
			query: url.Values{"group_id": {"3"}},
			json:  `{"title":"Vans"}`,
		},
		{
			name:   "GetDeviceGroups",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Devices.GetDeviceGroups(ctx, nil) },
			method: http.MethodGet, path: "/api/devices_groups",
		},
		{
			name: "StoreDeviceGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.StoreDeviceGroup(ctx, Params{"title": "Vans"})
			},
			method: http.MethodPost, path: "/api/devices_groups/store",
			json: `{"title":"Vans"}`,
		},
		{
			name: "UpdateDeviceGroupByID",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.UpdateDeviceGroupByID(ctx, 3, Params{"title": "Vans"})
			},
			method: http.MethodPut, path: "/api/devices_groups/update/3",
			json: `{"title":"Vans"}`,
		},
		{
			name: "GetDeviceMedia",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.GetDeviceMedia(ctx, testDeviceID, Params{"page": 2})
			},
			method: http.MethodGet, path: "/api/devices/1042/media",
			query: url.Values{"page": {"2"}},
		},
		{
			name: "GetDeviceMediaFile",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.GetDeviceMediaFile(ctx, testDeviceID, "cam 1.jpg")
			},
			method: http.MethodGet, path: "/api/devices/1042/media/file/cam%201.jpg",
		},
		{
			name: "DeleteDeviceMediaFile",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Devices.DeleteDeviceMediaFile(ctx, testDeviceID, "../secret")
			},
			method: http.MethodDelete, path: "/api/devices/1042/media/file/..%2Fsecret",
		},
	})
}

func TestDriverEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetUserDrivers",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Drivers.GetUserDrivers(ctx, nil) },
			method: http.MethodGet, path: "/api/get_user_drivers",
		},
		{
			name:   "AddUserDriverData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Drivers.AddUserDriverData(ctx, nil) },
			method: http.MethodGet, path: "/api/add_user_driver_data",
		},
		{
			name: "AddUserDriver",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Drivers.AddUserDriver(ctx, Params{"name": "Jonas"})
			},
			method: http.MethodPost, path: "/api/add_user_driver",
			json: `{"name":"Jonas"}`,
		},
		{
			name:   "EditUserDriverData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Drivers.EditUserDriverData(ctx, 8, nil) },
			method: http.MethodGet, path: "/api/edit_user_driver_data",
			query: url.Values{"driver_id": {"8"}},
		},
		{
			name: "EditUserDriver",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Drivers.EditUserDriver(ctx, 8, Params{"name": "Jonas"})
			},
			method: http.MethodPost, path: "/api/edit_user_driver",
			json: `{"name":"Jonas","driver_id":8}`,
		},
		{
			name:   "DestroyUserDriver",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Drivers.DestroyUserDriver(ctx, 8) },
			method: http.MethodGet, path: "/api/destroy_user_driver",
			query: url.Values{"driver_id": {"8"}},
		},
	})
}

func TestEventEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetEvents",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Events.GetEvents(ctx, Params{"page": 1}) },
			method: http.MethodGet, path: "/api/get_events",
			query: url.Values{"page": {"1"}},
		},
		{
			name:   "DestroyEvents",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Events.DestroyEvents(ctx, testDeviceID, nil) },
			method: http.MethodGet, path: "/api/destroy_events",
			query: url.Values{"device_id": {"1042"}},
		},
	})
}

func TestGeofenceEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetGeofences",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Geofences.GetGeofences(ctx, nil) },
			method: http.MethodGet, path: "/api/get_geofences",
		},
		{
			name: "AddGeofence",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Geofences.AddGeofence(ctx, Params{"name": "Depot", "polygon_color": "#ff0000"})
			},
			method: http.MethodPost, path: "/api/add_geofence",
			json: `{"name":"Depot","polygon_color":"#ff0000"}`,
		},
		{
			name: "EditGeofence",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Geofences.EditGeofence(ctx, 11, Params{"name": "Depot"})
			},
			method: http.MethodPost, path: "/api/edit_geofence",
			json: `{"name":"Depot","geofence_id":11}`,
		},
		{
			name:   "DestroyGeofence",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Geofences.DestroyGeofence(ctx, 11) },
			method: http.MethodGet, path: "/api/destroy_geofence",
			query: url.Values{"geofence_id": {"11"}},
		},
		{
			name:   "ChangeActiveGeofence",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Geofences.ChangeActiveGeofence(ctx, 11) },
			method: http.MethodGet, path: "/api/change_active_geofence",
			query: url.Values{"geofence_id": {"11"}},
		},
		{
			name: "PointInGeofences",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Geofences.PointInGeofences(ctx, 54.6872, -25.5, nil)
			},
			method: http.MethodGet, path: "/api/point_in_geofences",
			query: url.Values{"latitude": {"54.6872"}, "longitude": {"-25.5"}},
		},
		{
			name:   "GetGeofenceGroups",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Geofences.GetGeofenceGroups(ctx, nil) },
			method: http.MethodGet, path: "/api/geofences_groups",
		},
		{
			name: "StoreGeofenceGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Geofences.StoreGeofenceGroup(ctx, Params{"title": "Depots"})
			},
			method: http.MethodPost, path: "/api/geofences_groups/store",
			json: `{"title":"Depots"}`,
		},
		{
			name: "UpdateGeofenceGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Geofences.UpdateGeofenceGroup(ctx, 2, Params{"title": "Depots"})
			},
			method: http.MethodPut, path: "/api/geofences_groups/update/2",
			json: `{"title":"Depots"}`,
		},
	})
}

func TestTemplateEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetUserGprsTemplates",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.GprsTemplates.GetUserGprsTemplates(ctx, nil) },
			method: http.MethodGet, path: "/api/get_user_gprs_templates",
		},
		{
			name: "AddUserGprsTemplateData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.AddUserGprsTemplateData(ctx, nil)
			},
			method: http.MethodGet, path: "/api/add_user_gprs_template_data",
		},
		{
			name: "AddUserGprsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.AddUserGprsTemplate(ctx, Params{"title": "Stop", "message": "setdigout 1"})
			},
			method: http.MethodPost, path: "/api/add_user_gprs_template",
			multipart: map[string]string{"title": "Stop", "message": "setdigout 1"},
		},
		{
			name: "EditUserGprsTemplateData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.EditUserGprsTemplateData(ctx, 5, nil)
			},
			method: http.MethodGet, path: "/api/edit_user_gprs_template_data",
			query: url.Values{"template_id": {"5"}},
		},
		{
			name: "EditUserGprsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.EditUserGprsTemplate(ctx, 5, Params{"title": "Stop"})
			},
			method: http.MethodPost, path: "/api/edit_user_gprs_template",
			multipart: map[string]string{"title": "Stop", "template_id": "5"},
		},
		{
			name: "DestroyUserGprsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.DestroyUserGprsTemplate(ctx, 5)
			},
			method: http.MethodGet, path: "/api/destroy_user_gprs_template",
			query: url.Values{"template_id": {"5"}},
		},
		{
			name: "GetUserGprsMessage",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.GprsTemplates.GetUserGprsMessage(ctx, 5, nil)
			},
			method: http.MethodGet, path: "/api/get_user_gprs_message",
			query: url.Values{"template_id": {"5"}},
		},
		{
			name:   "GetUserSmsTemplates",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.SmsTemplates.GetUserSmsTemplates(ctx, nil) },
			method: http.MethodGet, path: "/api/get_user_sms_templates",
		},
		{
			name: "AddUserSmsTemplateData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.AddUserSmsTemplateData(ctx, nil)
			},
			method: http.MethodGet, path: "/api/add_user_sms_template_data",
		},
		{
			name: "AddUserSmsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.AddUserSmsTemplate(ctx, Params{"title": "Locate"})
			},
			method: http.MethodPost, path: "/api/add_user_sms_template",
			multipart: map[string]string{"title": "Locate"},
		},
		{
			name: "EditUserSmsTemplateData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.EditUserSmsTemplateData(ctx, 6, nil)
			},
			method: http.MethodGet, path: "/api/edit_user_sms_template_data",
			query: url.Values{"template_id": {"6"}},
		},
		{
			name: "EditUserSmsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.EditUserSmsTemplate(ctx, 6, nil)
			},
			method: http.MethodPost, path: "/api/edit_user_sms_template",
			multipart: map[string]string{"template_id": "6"},
		},
		{
			name: "DestroyUserSmsTemplate",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.DestroyUserSmsTemplate(ctx, 6)
			},
			method: http.MethodGet, path: "/api/destroy_user_sms_template",
			query: url.Values{"template_id": {"6"}},
		},
		{
			name: "GetUserSmsMessage",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.SmsTemplates.GetUserSmsMessage(ctx, 6, Params{"device_id": 1})
			},
			method: http.MethodGet, path: "/api/get_user_sms_message",
			query: url.Values{"template_id": {"6"}, "device_id": {"1"}},
		},
	})
}

func TestHistoryEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name: "GetHistory",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.History.GetHistory(ctx, testDeviceID, "2024-01-31 00:00:00", "2024-01-31 23:59:59", nil)
			},
			method: http.MethodGet, path: "/api/get_history",
			query: url.Values{
				"device_id": {"1042"},
				"from":      {"2024-01-31 00:00:00"},
				"to":        {"2024-01-31 23:59:59"},
			},
		},
		{
			name: "GetHistory extra overrides",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.History.GetHistory(ctx, testDeviceID, "2024-01-31 00:00:00", "2024-01-31 23:59:59",
					Params{"to": "2024-02-01 00:00:00", "snap_to_road": true})
			},
			method: http.MethodGet, path: "/api/get_history",
			query: url.Values{
				"device_id":    {"1042"},
				"from":         {"2024-01-31 00:00:00"},
				"to":           {"2024-02-01 00:00:00"},
				"snap_to_road": {"1"},
			},
		},
		{
			name: "GetHistoryMessages",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.History.GetHistoryMessages(ctx, testDeviceID, "2024-01-31 08:00:00", "2024-01-31 18:30:00", nil)
			},
			method: http.MethodGet, path: "/api/get_history_messages",
			query: url.Values{
				"device_id": {"1042"},
				"from_date": {"2024-01-31"},
				"from_time": {"08:00:00"},
				"to_date":   {"2024-01-31"},
				"to_time":   {"18:30:00"},
				"limit":     {"1000"},
			},
		},
		{
			name: "GetHistoryMessages extra overrides limit",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.History.GetHistoryMessages(ctx, testDeviceID, "2024-01-31 08:00:00", "2024-01-31 18:30:00",
					Params{"limit": 50, "page": 2})
			},
			method: http.MethodGet, path: "/api/get_history_messages",
			query: url.Values{
				"device_id": {"1042"},
				"from_date": {"2024-01-31"},
				"from_time": {"08:00:00"},
				"to_date":   {"2024-01-31"},
				"to_time":   {"18:30:00"},
				"limit":     {"50"},
				"page":      {"2"},
			},
		},
		{
			name: "DeleteHistoryPositions",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.History.DeleteHistoryPositions(ctx, testDeviceID, "2024-01-01 00:00:00", "2024-01-31 23:59:59", false)
			},
			method: http.MethodDelete, path: "/api/delete_history_positions",
			json: `{"device_id":1042,"from":"2024-01-01 00:00:00","to":"2024-01-31 23:59:59","all":false}`,
		},
	})
}

func TestMapIconEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetUserMapIcons",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.MapIcons.GetUserMapIcons(ctx, nil) },
			method: http.MethodGet, path: "/api/get_user_map_icons",
		},
		{
			name:   "GetMapIcons",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.MapIcons.GetMapIcons(ctx, nil) },
			method: http.MethodGet, path: "/api/get_map_icons",
		},
		{
			name: "AddMapIcon",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MapIcons.AddMapIcon(ctx, Params{
					"name":        "Depot",
					"coordinates": map[string]float64{"lat": 54.5},
					"icon":        strings.NewReader("PNGDATA"),
				})
			},
			method: http.MethodPost, path: "/api/add_map_icon",
			multipart: map[string]string{
				"name":        "Depot",
				"coordinates": `{"lat":54.5}`,
				"icon":        "PNGDATA",
			},
		},
		{
			name: "EditMapIcon",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MapIcons.EditMapIcon(ctx, 12, Params{"name": "Depot"})
			},
			method: http.MethodPost, path: "/api/edit_map_icon",
			multipart: map[string]string{"name": "Depot", "icon_id": "12"},
		},
		{
			name:   "ChangeActiveMapIcon",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.MapIcons.ChangeActiveMapIcon(ctx, 12) },
			method: http.MethodGet, path: "/api/change_active_map_icon",
			query: url.Values{"icon_id": {"12"}},
		},
		{
			name:   "DestroyMapIcon",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.MapIcons.DestroyMapIcon(ctx, 12) },
			method: http.MethodGet, path: "/api/destroy_map_icon",
			query: url.Values{"icon_id": {"12"}},
		},
		{
			name:   "GetPoisGroups",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.MapIcons.GetPoisGroups(ctx, nil) },
			method: http.MethodGet, path: "/api/pois_groups",
		},
		{
			name: "StorePoisGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MapIcons.StorePoisGroup(ctx, Params{"title": "Depots"})
			},
			method: http.MethodPost, path: "/api/pois_groups/store",
			json: `{"title":"Depots"}`,
		},
		{
			name: "UpdatePoisGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.MapIcons.UpdatePoisGroup(ctx, 2, Params{"title": "Depots"})
			},
			method: http.MethodPut, path: "/api/pois_groups/update/2",
			json: `{"title":"Depots"}`,
		},
	})
}

func TestReportEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetReports",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Reports.GetReports(ctx, nil) },
			method: http.MethodGet, path: "/api/get_reports",
		},
		{
			name:   "GetReportTypes",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Reports.GetReportTypes(ctx, nil) },
			method: http.MethodGet, path: "/api/get_reports_types",
		},
		{
			name:   "AddReportData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Reports.AddReportData(ctx, nil) },
			method: http.MethodGet, path: "/api/add_report_data",
		},
		{
			name: "AddReport",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.AddReport(ctx, Params{"title": "Daily", "type": 1})
			},
			method: http.MethodPost, path: "/api/add_report",
			json: `{"title":"Daily","type":1}`,
		},
		{
			name: "EditReport",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.EditReport(ctx, 21, Params{"title": "Weekly"})
			},
			method: http.MethodPost, path: "/api/edit_report",
			json: `{"title":"Weekly","report_id":21}`,
		},
		{
			name: "GenerateReport",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Reports.GenerateReport(ctx, 21, Params{"format": "pdf"})
			},
			method: http.MethodPost, path: "/api/generate_report",
			json: `{"format":"pdf","report_id":21}`,
		},
		{
			name:   "DestroyReport",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Reports.DestroyReport(ctx, 21) },
			method: http.MethodGet, path: "/api/destroy_report",
			query: url.Values{"report_id": {"21"}},
		},
	})
}

func TestRouteEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetRoutes",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.GetRoutes(ctx, nil) },
			method: http.MethodGet, path: "/api/get_routes",
		},
		{
			name:   "AddRoute",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.AddRoute(ctx, Params{"name": "A1"}) },
			method: http.MethodPost, path: "/api/add_route",
			json: `{"name":"A1"}`,
		},
		{
			name:   "EditRoute",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.EditRoute(ctx, 13, Params{"name": "A2"}) },
			method: http.MethodPost, path: "/api/edit_route",
			json: `{"name":"A2","route_id":13}`,
		},
		{
			name:   "DestroyRoute",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.DestroyRoute(ctx, 13) },
			method: http.MethodGet, path: "/api/destroy_route",
			query: url.Values{"route_id": {"13"}},
		},
		{
			name:   "ChangeActiveRoute",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.ChangeActiveRoute(ctx, 13) },
			method: http.MethodGet, path: "/api/change_active_route",
			query: url.Values{"route_id": {"13"}},
		},
		{
			name:   "GetRouteGroups",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Routes.GetRouteGroups(ctx, nil) },
			method: http.MethodGet, path: "/api/routes_groups",
		},
		{
			name: "StoreRouteGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Routes.StoreRouteGroup(ctx, Params{"title": "Highways"})
			},
			method: http.MethodPost, path: "/api/routes_groups/store",
			json: `{"title":"Highways"}`,
		},
		{
			name: "UpdateRouteGroup",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Routes.UpdateRouteGroup(ctx, 4, Params{"title": "Highways"})
			},
			method: http.MethodPut, path: "/api/routes_groups/update/4",
			json: `{"title":"Highways"}`,
		},
	})
}

func TestSensorEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetSensors",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sensors.GetSensors(ctx, testDeviceID, nil) },
			method: http.MethodGet, path: "/api/get_sensors",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name:   "AddSensorData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sensors.AddSensorData(ctx, testDeviceID, nil) },
			method: http.MethodGet, path: "/api/add_sensor_data",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "AddSensor",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Sensors.AddSensor(ctx, Params{"sensor_name": "Fuel", "device_id": 1042})
			},
			method: http.MethodPost, path: "/api/add_sensor",
			json: `{"sensor_name":"Fuel","device_id":1042}`,
		},
		{
			name:   "EditSensorData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sensors.EditSensorData(ctx, 31, nil) },
			method: http.MethodGet, path: "/api/edit_sensor_data",
			query: url.Values{"sensor_id": {"31"}},
		},
		{
			name: "EditSensor",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Sensors.EditSensor(ctx, 31, Params{"sensor_name": "Fuel tank"})
			},
			method: http.MethodPost, path: "/api/edit_sensor",
			json: `{"sensor_name":"Fuel tank","sensor_id":31}`,
		},
		{
			name:   "DestroySensor",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sensors.DestroySensor(ctx, 31) },
			method: http.MethodGet, path: "/api/destroy_sensor",
			query: url.Values{"sensor_id": {"31"}},
		},
	})
}

func TestMaintenanceEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetServices",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Services.GetServices(ctx, testDeviceID, nil) },
			method: http.MethodGet, path: "/api/get_services",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "AddServiceData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Services.AddServiceData(ctx, testDeviceID, nil)
			},
			method: http.MethodGet, path: "/api/add_service_data",
			query: url.Values{"device_id": {"1042"}},
		},
		{
			name: "AddService",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Services.AddService(ctx, Params{"name": "Oil change", "expiration_by": "odometer"})
			},
			method: http.MethodPost, path: "/api/add_service",
			json: `{"name":"Oil change","expiration_by":"odometer"}`,
		},
		{
			name:   "EditServiceData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Services.EditServiceData(ctx, 17, nil) },
			method: http.MethodGet, path: "/api/edit_service_data",
			query: url.Values{"service_id": {"17"}},
		},
		{
			name: "EditService",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Services.EditService(ctx, 17, Params{"name": "Tyres"})
			},
			method: http.MethodPost, path: "/api/edit_service",
			json: `{"name":"Tyres","service_id":17}`,
		},
		{
			name:   "DestroyService",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Services.DestroyService(ctx, 17) },
			method: http.MethodGet, path: "/api/destroy_service",
			query: url.Values{"service_id": {"17"}},
		},
	})
}

func TestSharingEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetSharing",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sharing.GetSharing(ctx, nil) },
			method: http.MethodGet, path: "/api/sharing",
		},
		{
			name: "CreateSharing",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Sharing.CreateSharing(ctx, Params{"name": "Customer", "devices": []int{1042}})
			},
			method: http.MethodPost, path: "/api/sharing",
			json: `{"name":"Customer","devices":[1042]}`,
		},
		{
			name:   "GetSharingByID",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sharing.GetSharingByID(ctx, 14, nil) },
			method: http.MethodGet, path: "/api/sharing/14",
		},
		{
			name: "UpdateSharing",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Sharing.UpdateSharing(ctx, 14, Params{"name": "Customer B"})
			},
			method: http.MethodPut, path: "/api/sharing/14",
			json: `{"name":"Customer B"}`,
		},
		{
			name:   "DeleteSharing",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Sharing.DeleteSharing(ctx, 14) },
			method: http.MethodDelete, path: "/api/sharing/14",
		},
		{
			name: "UpdateSharingDevices",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Sharing.UpdateSharingDevices(ctx, 14, Params{"devices": []int{1, 2}})
			},
			method: http.MethodPut, path: "/api/sharing/14/devices",
			json: `{"devices":[1,2]}`,
		},
	})
}

func TestTaskEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetTasks",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.GetTasks(ctx, nil) },
			method: http.MethodGet, path: "/api/get_tasks",
		},
		{
			name:   "GetTask",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.GetTask(ctx, 77, nil) },
			method: http.MethodGet, path: "/api/get_task/77",
		},
		{
			name:   "AddTask",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.AddTask(ctx, Params{"title": "Deliver"}) },
			method: http.MethodPost, path: "/api/add_task",
			json: `{"title":"Deliver"}`,
		},
		{
			name:   "EditTask",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.EditTask(ctx, 77, Params{"priority": 2}) },
			method: http.MethodPost, path: "/api/edit_task/77",
			json: `{"priority":2}`,
		},
		{
			name:   "DestroyTask",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.DestroyTask(ctx, 77) },
			method: http.MethodPost, path: "/api/destroy_task",
			json: `{"task_id":77}`,
		},
		{
			name:   "GetTaskSignature",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.GetTaskSignature(ctx, 301, nil) },
			method: http.MethodGet, path: "/api/get_task_signature/301",
		},
		{
			name:   "GetTaskStatuses",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.GetTaskStatuses(ctx, nil) },
			method: http.MethodGet, path: "/api/get_tasks_statuses",
		},
		{
			name:   "GetTaskPriorities",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Tasks.GetTaskPriorities(ctx, nil) },
			method: http.MethodGet, path: "/api/get_tasks_priorities",
		},
	})
}

func TestSetupEndpoints(t *testing.T) {
	t.Parallel()

	runEndpointCases(t, []endpointCase{
		{
			name:   "GetEditSetupData",
			call:   func(ctx context.Context, c *Client) (any, error) { return c.Setup.GetEditSetupData(ctx, "", nil) },
			method: http.MethodGet, path: "/api/edit_setup_data",
		},
		{
			name: "GetEditSetupData with lang",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Setup.GetEditSetupData(ctx, "lt", Params{"extra": 1})
			},
			method: http.MethodGet, path: "/api/edit_setup_data",
			query: url.Values{"lang": {"lt"}, "extra": {"1"}},
		},
		{
			name: "UpdateSetupData",
			call: func(ctx context.Context, c *Client) (any, error) {
				return c.Setup.UpdateSetupData(ctx, Params{"timezone_id": 65})
			},
			method: http.MethodPost, path: "/api/edit_setup_data",
			json: `{"timezone_id":65}`,
		},
	})
}
