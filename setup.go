package gpswox

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/lexfrei/go-gpswox/internal/response"
)

var setupEndpoints = struct {
	editData, update endpoint
}{
	editData: endpoint{http.MethodGet, "api/edit_setup_data", inQuery},
	update:   endpoint{http.MethodPost, "api/edit_setup_data", inJSON},
}

// SetupService reads and updates account setup: timezone, units, SMS
// gateway and daylight saving settings.
//
// The derived views (GetTimezones, GetDistanceUnits, ...) each fetch the
// setup data afresh; nothing is cached. A missing or null key yields an
// empty list (an empty object for GetUserInfo).
type SetupService struct {
	r Requester
}

// GetEditSetupData returns the full setup payload. lang is sent when not empty.
func (s *SetupService) GetEditSetupData(ctx context.Context, lang string, params Params) (any, error) {
	return s.r.Do(ctx, s.editDataRequest(lang, params))
}

// UpdateSetupData saves setup changes.
func (s *SetupService) UpdateSetupData(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, setupEndpoints.update.request(data))
}

// GetTimezones returns the timezones list.
func (s *SetupService) GetTimezones(ctx context.Context) (any, error) {
	return s.field(ctx, "timezones")
}

// GetDistanceUnits returns the distance units list.
func (s *SetupService) GetDistanceUnits(ctx context.Context) (any, error) {
	return s.field(ctx, "units_of_distance")
}

// GetCapacityUnits returns the capacity units list.
func (s *SetupService) GetCapacityUnits(ctx context.Context) (any, error) {
	return s.field(ctx, "units_of_capacity")
}

// GetAltitudeUnits returns the altitude units list.
func (s *SetupService) GetAltitudeUnits(ctx context.Context) (any, error) {
	return s.field(ctx, "units_of_altitude")
}

// GetSmsGatewayOptions returns the SMS gateway choices under the keys
// request_methods, encoding_options and authentication_options.
func (s *SetupService) GetSmsGatewayOptions(ctx context.Context) (map[string]any, error) {
	return s.fields(ctx, map[string]string{
		"request_methods":        "request_method_select",
		"encoding_options":       "encoding_select",
		"authentication_options": "authentication_select",
	})
}

// GetDstOptions returns the daylight saving choices under the keys
// dst_types, months, weekdays, week_pos and dst_countries.
func (s *SetupService) GetDstOptions(ctx context.Context) (map[string]any, error) {
	return s.fields(ctx, map[string]string{
		"dst_types":     "dst_types",
		"months":        "months",
		"weekdays":      "weekdays",
		"week_pos":      "week_pos",
		"dst_countries": "dst_countries",
	})
}

// GetUserInfo returns the user's settings object ("item").
func (s *SetupService) GetUserInfo(ctx context.Context) (any, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	item := doc.Get("item")
	if !present(item) {
		return map[string]any{}, nil
	}

	return decodeResult(item), nil
}

// GetCurrentTimezone returns the {id, value} entry of the timezones list
// whose id matches the user's timezone_id, or nil when the user has no
// timezone or none matches.
//
// Ids are compared by their textual form, so 65 and "65" match. The first
// match wins.
func (s *SetupService) GetCurrentTimezone(ctx context.Context) (map[string]any, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	want := doc.Get("item.timezone_id")
	if !present(want) {
		return nil, nil //nolint:nilnil // No timezone set is not an error
	}
	wantID := want.String()

	var found map[string]any
	doc.Get("timezones").ForEach(func(_, tz gjson.Result) bool {
		id := tz.Get("id")
		if !present(id) || id.String() != wantID {
			return true
		}

		found = map[string]any{
			"id":    decodeResult(id),
			"value": decodeResult(tz.Get("value")),
		}

		return false
	})

	return found, nil
}

func (s *SetupService) editDataRequest(lang string, params Params) *Request {
	if lang != "" {
		params = params.With("lang", lang)
	}

	return setupEndpoints.editData.request(params)
}

// fetch retrieves the setup payload as a gjson document. A body that is not
// valid JSON reads as an empty document.
func (s *SetupService) fetch(ctx context.Context) (gjson.Result, error) {
	body, err := s.r.DoRaw(ctx, s.editDataRequest("", nil))
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, nil
	}

	return gjson.ParseBytes(body), nil
}

func (s *SetupService) field(ctx context.Context, key string) (any, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return listOrEmpty(doc.Get(key)), nil
}

func (s *SetupService) fields(ctx context.Context, keys map[string]string) (map[string]any, error) {
	doc, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(keys))
	for name, key := range keys {
		out[name] = listOrEmpty(doc.Get(key))
	}

	return out, nil
}

// present reports whether r exists and is not JSON null.
func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

func listOrEmpty(r gjson.Result) any {
	if !present(r) {
		return []any{}
	}

	return decodeResult(r)
}

// decodeResult converts r into the same representation Client.Do produces.
func decodeResult(r gjson.Result) any {
	if !r.Exists() {
		return nil
	}

	return response.Decode([]byte(r.Raw))
}
