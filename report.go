package gpswox

import (
	"context"
	"net/http"
)

var reportEndpoints = struct {
	list, types, addData, add, edit, generate, destroy endpoint
}{
	list:     endpoint{http.MethodGet, "api/get_reports", inQuery},
	types:    endpoint{http.MethodGet, "api/get_reports_types", inQuery},
	addData:  endpoint{http.MethodGet, "api/add_report_data", inQuery},
	add:      endpoint{http.MethodPost, "api/add_report", inJSON},
	edit:     endpoint{http.MethodPost, "api/edit_report", inJSON},
	generate: endpoint{http.MethodPost, "api/generate_report", inJSON},
	destroy:  endpoint{http.MethodGet, "api/destroy_report", inQuery},
}

// ReportService manages and generates reports.
type ReportService struct {
	r Requester
}

// GetReports lists reports matching filters.
func (s *ReportService) GetReports(ctx context.Context, filters Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.list.request(filters))
}

// GetReportTypes lists the available report types.
func (s *ReportService) GetReportTypes(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.types.request(params))
}

// AddReportData returns the form data needed to create a report.
func (s *ReportService) AddReportData(ctx context.Context, params Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.addData.request(params))
}

// AddReport creates a report.
func (s *ReportService) AddReport(ctx context.Context, data Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.add.request(data))
}

// EditReport updates a report.
func (s *ReportService) EditReport(ctx context.Context, reportID int, data Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.edit.request(data.With("report_id", reportID)))
}

// GenerateReport generates a report.
func (s *ReportService) GenerateReport(ctx context.Context, reportID int, data Params) (any, error) {
	return s.r.Do(ctx, reportEndpoints.generate.request(data.With("report_id", reportID)))
}

// DestroyReport deletes a report.
func (s *ReportService) DestroyReport(ctx context.Context, reportID int) (any, error) {
	return s.r.Do(ctx, reportEndpoints.destroy.request(Params{"report_id": reportID}))
}
