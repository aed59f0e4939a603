package gpswox

import (
	"context"
	"net/http"
)

// templateEndpoints are shared by the GPRS and SMS template resources,
// which differ only in the kind segment of their paths.
type templateEndpoints struct {
	list, addData, add, editData, edit, destroy, message endpoint
}

func newTemplateEndpoints(kind string) templateEndpoints {
	return templateEndpoints{
		list:     endpoint{http.MethodGet, "api/get_user_" + kind + "_templates", inQuery},
		addData:  endpoint{http.MethodGet, "api/add_user_" + kind + "_template_data", inQuery},
		add:      endpoint{http.MethodPost, "api/add_user_" + kind + "_template", inMultipart},
		editData: endpoint{http.MethodGet, "api/edit_user_" + kind + "_template_data", inQuery},
		edit:     endpoint{http.MethodPost, "api/edit_user_" + kind + "_template", inMultipart},
		destroy:  endpoint{http.MethodGet, "api/destroy_user_" + kind + "_template", inQuery},
		message:  endpoint{http.MethodGet, "api/get_user_" + kind + "_message", inQuery},
	}
}

// templates implements the operations common to both template kinds.
type templates struct {
	r         Requester
	endpoints templateEndpoints
}

func (t templates) list(ctx context.Context, params Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.list.request(params))
}

func (t templates) addData(ctx context.Context, params Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.addData.request(params))
}

func (t templates) add(ctx context.Context, data Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.add.request(data))
}

func (t templates) editData(ctx context.Context, templateID int, params Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.editData.request(params.With("template_id", templateID)))
}

func (t templates) edit(ctx context.Context, templateID int, data Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.edit.request(data.With("template_id", templateID)))
}

func (t templates) destroy(ctx context.Context, templateID int) (any, error) {
	return t.r.Do(ctx, t.endpoints.destroy.request(Params{"template_id": templateID}))
}

func (t templates) message(ctx context.Context, templateID int, params Params) (any, error) {
	return t.r.Do(ctx, t.endpoints.message.request(params.With("template_id", templateID)))
}

var (
	gprsTemplateEndpoints = newTemplateEndpoints("gprs")
	smsTemplateEndpoints  = newTemplateEndpoints("sms")
)

// GprsTemplateService manages GPRS command templates.
// Create and edit post multipart forms.
type GprsTemplateService struct {
	r Requester
}

func (s *GprsTemplateService) templates() templates {
	return templates{r: s.r, endpoints: gprsTemplateEndpoints}
}

// GetUserGprsTemplates lists GPRS templates.
func (s *GprsTemplateService) GetUserGprsTemplates(ctx context.Context, params Params) (any, error) {
	return s.templates().list(ctx, params)
}

// AddUserGprsTemplateData returns the form data needed to create a GPRS template.
func (s *GprsTemplateService) AddUserGprsTemplateData(ctx context.Context, params Params) (any, error) {
	return s.templates().addData(ctx, params)
}

// AddUserGprsTemplate creates a GPRS template.
func (s *GprsTemplateService) AddUserGprsTemplate(ctx context.Context, data Params) (any, error) {
	return s.templates().add(ctx, data)
}

// EditUserGprsTemplateData returns the form data needed to edit a GPRS template.
func (s *GprsTemplateService) EditUserGprsTemplateData(ctx context.Context, templateID int, params Params) (any, error) {
	return s.templates().editData(ctx, templateID, params)
}

// EditUserGprsTemplate updates a GPRS template.
func (s *GprsTemplateService) EditUserGprsTemplate(ctx context.Context, templateID int, data Params) (any, error) {
	return s.templates().edit(ctx, templateID, data)
}

// DestroyUserGprsTemplate deletes a GPRS template.
func (s *GprsTemplateService) DestroyUserGprsTemplate(ctx context.Context, templateID int) (any, error) {
	return s.templates().destroy(ctx, templateID)
}

// GetUserGprsMessage renders the message of a GPRS template.
func (s *GprsTemplateService) GetUserGprsMessage(ctx context.Context, templateID int, params Params) (any, error) {
	return s.templates().message(ctx, templateID, params)
}

// SmsTemplateService manages SMS command templates.
// Create and edit post multipart forms.
type SmsTemplateService struct {
	r Requester
}

func (s *SmsTemplateService) templates() templates {
	return templates{r: s.r, endpoints: smsTemplateEndpoints}
}

// GetUserSmsTemplates lists SMS templates.
func (s *SmsTemplateService) GetUserSmsTemplates(ctx context.Context, params Params) (any, error) {
	return s.templates().list(ctx, params)
}

// AddUserSmsTemplateData returns the form data needed to create an SMS template.
func (s *SmsTemplateService) AddUserSmsTemplateData(ctx context.Context, params Params) (any, error) {
	return s.templates().addData(ctx, params)
}

// AddUserSmsTemplate creates an SMS template.
func (s *SmsTemplateService) AddUserSmsTemplate(ctx context.Context, data Params) (any, error) {
	return s.templates().add(ctx, data)
}

// EditUserSmsTemplateData returns the form data needed to edit an SMS template.
func (s *SmsTemplateService) EditUserSmsTemplateData(ctx context.Context, templateID int, params Params) (any, error) {
	return s.templates().editData(ctx, templateID, params)
}

// EditUserSmsTemplate updates an SMS template.
func (s *SmsTemplateService) EditUserSmsTemplate(ctx context.Context, templateID int, data Params) (any, error) {
	return s.templates().edit(ctx, templateID, data)
}

// DestroyUserSmsTemplate deletes an SMS template.
func (s *SmsTemplateService) DestroyUserSmsTemplate(ctx context.Context, templateID int) (any, error) {
	return s.templates().destroy(ctx, templateID)
}

// GetUserSmsMessage renders the message of an SMS template.
func (s *SmsTemplateService) GetUserSmsMessage(ctx context.Context, templateID int, params Params) (any, error) {
	return s.templates().message(ctx, templateID, params)
}
