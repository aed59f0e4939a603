package gpswox

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// historyMessagesLimit is the default page size of GetHistoryMessages.
const historyMessagesLimit = 1000

var historyEndpoints = struct {
	history, messages, deletePositions endpoint
}{
	history:         endpoint{http.MethodGet, "api/get_history", inQuery},
	messages:        endpoint{http.MethodGet, "api/get_history_messages", inQuery},
	deletePositions: endpoint{http.MethodDelete, "api/delete_history_positions", inJSON},
}

// HistoryService reads and deletes position history.
// Times are "Y-m-d H:i:s" strings in the user's timezone, e.g. "2024-01-31 23:59:00".
type HistoryService struct {
	r Requester
}

// GetHistory returns the route history of a device between from and to.
// Keys in extra override the defaults.
func (s *HistoryService) GetHistory(ctx context.Context, deviceID int, from, to string, extra Params) (any, error) {
	query := Params{
		"device_id": deviceID,
		"from":      from,
		"to":        to,
	}

	return s.r.Do(ctx, historyEndpoints.history.request(query.Merge(extra)))
}

// GetHistoryMessages returns the raw messages of a device between from and to,
// up to 1000 unless extra sets limit. Keys in extra override the defaults.
//
// from and to must carry both a date and a time part ("2024-01-01 00:00:00");
// they are sent split into from_date/from_time and to_date/to_time. A value
// without a time part is rejected with an error before any request is made,
// rather than being sent with the *_time field missing.
func (s *HistoryService) GetHistoryMessages(ctx context.Context, deviceID int, from, to string, extra Params) (any, error) {
	fromDate, fromTime, err := splitDateTime(from)
	if err != nil {
		return nil, errors.Wrap(err, "invalid from")
	}
	toDate, toTime, err := splitDateTime(to)
	if err != nil {
		return nil, errors.Wrap(err, "invalid to")
	}

	query := Params{
		"device_id": deviceID,
		"from_date": fromDate,
		"from_time": fromTime,
		"to_date":   toDate,
		"to_time":   toTime,
		"limit":     historyMessagesLimit,
	}

	return s.r.Do(ctx, historyEndpoints.messages.request(query.Merge(extra)))
}

// DeleteHistoryPositions deletes the positions of a device between from and to,
// or all of them when all is set.
func (s *HistoryService) DeleteHistoryPositions(ctx context.Context, deviceID int, from, to string, all bool) (any, error) {
	return s.r.Do(ctx, historyEndpoints.deletePositions.request(Params{
		"device_id": deviceID,
		"from":      from,
		"to":        to,
		"all":       all,
	}))
}

// splitDateTime splits "2024-01-31 23:59:00" on its first two space-separated
// fields. Anything after the second field is ignored.
func splitDateTime(value string) (string, string, error) {
	parts := strings.Split(value, " ")
	if len(parts) < 2 {
		return "", "", errors.Newf("%q has no time part", value)
	}

	return parts[0], parts[1], nil
}
