package gpswox

import (
	"context"
	"net/http"
)

var mapIconEndpoints = struct {
	userIcons, icons, add, edit, changeActive, destroy endpoint
	poisGroups, storePoisGroup, updatePoisGroup        endpoint
}{
	userIcons:       endpoint{http.MethodGet, "api/get_user_map_icons", inQuery},
	icons:           endpoint{http.MethodGet, "api/get_map_icons", inQuery},
	add:             endpoint{http.MethodPost, "api/add_map_icon", inMultipart},
	edit:            endpoint{http.MethodPost, "api/edit_map_icon", inMultipart},
	changeActive:    endpoint{http.MethodGet, "api/change_active_map_icon", inQuery},
	destroy:         endpoint{http.MethodGet, "api/destroy_map_icon", inQuery},
	poisGroups:      endpoint{http.MethodGet, "api/pois_groups", inQuery},
	storePoisGroup:  endpoint{http.MethodPost, "api/pois_groups/store", inJSON},
	updatePoisGroup: endpoint{http.MethodPut, "api/pois_groups/update/%d", inJSON},
}

// MapIconService manages map icons (points of interest) and their groups.
//
// AddMapIcon and EditMapIcon post multipart forms. An io.Reader under the
// "icon" key is uploaded as a file:
//
//	f, err := os.Open("depot.png")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	_, err = client.MapIcons.AddMapIcon(ctx, gpswox.Params{
//	    "name":        "Depot",
//	    "map_icon_id": 3,
//	    "coordinates": map[string]float64{"lat": 54.68, "lng": 25.27},
//	    "icon":        f,
//	})
type MapIconService struct {
	r Requester
}

// GetUserMapIcons lists the user's map icons.
func (s *MapIconService) GetUserMapIcons(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.userIcons.request(params))
}

// GetMapIcons lists the icon images available for map icons.
func (s *MapIconService) GetMapIcons(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.icons.request(params))
}

// AddMapIcon creates a map icon.
func (s *MapIconService) AddMapIcon(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.add.request(data))
}

// EditMapIcon updates a map icon.
func (s *MapIconService) EditMapIcon(ctx context.Context, iconID int, data Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.edit.request(data.With("icon_id", iconID)))
}

// ChangeActiveMapIcon toggles a map icon on or off.
func (s *MapIconService) ChangeActiveMapIcon(ctx context.Context, iconID int) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.changeActive.request(Params{"icon_id": iconID}))
}

// DestroyMapIcon deletes a map icon.
func (s *MapIconService) DestroyMapIcon(ctx context.Context, iconID int) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.destroy.request(Params{"icon_id": iconID}))
}

// GetPoisGroups lists point-of-interest groups.
func (s *MapIconService) GetPoisGroups(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.poisGroups.request(params))
}

// StorePoisGroup creates a point-of-interest group.
func (s *MapIconService) StorePoisGroup(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.storePoisGroup.request(data))
}

// UpdatePoisGroup updates a point-of-interest group.
func (s *MapIconService) UpdatePoisGroup(ctx context.Context, groupID int, data Params) (any, error) {
	return s.r.Do(ctx, mapIconEndpoints.updatePoisGroup.request(data, groupID))
}
