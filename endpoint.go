package gpswox

import "fmt"

// placement says where an endpoint expects its caller-supplied parameters.
type placement int

const (
	inNone placement = iota
	inQuery
	inJSON
	inMultipart
)

// endpoint binds one API operation to its verb, path and parameter placement.
// Paths with fmt verbs take path arguments, e.g. "api/sharing/%d".
type endpoint struct {
	method string
	path   string
	params placement
}

// request builds the Request for e. params go where e says; nil JSON bodies
// are sent as an empty object.
func (e endpoint) request(params Params, pathArgs ...any) *Request {
	req := &Request{Method: e.method, Path: e.path}
	if len(pathArgs) > 0 {
		req.Path = fmt.Sprintf(e.path, pathArgs...)
	}

	switch e.params {
	case inQuery:
		req.Query = params
	case inJSON:
		if params == nil {
			params = Params{}
		}
		req.JSON = params
	case inMultipart:
		if params == nil {
			params = Params{}
		}
		req.Multipart = params
	case inNone:
	}

	return req
}
