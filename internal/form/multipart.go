package form

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"path/filepath"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Multipart encodes params as a multipart/form-data body, one part per key in
// sorted order. Maps and slices are sent as their JSON encoding, io.Reader
// values as file parts, and everything else as its scalar text. Booleans
// become "1" and "", which is what the server treats as checked and unchecked.
//
// It returns the body and the Content-Type header carrying the boundary.
func Multipart(params map[string]any) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, key := range sortedKeys(params) {
		if err := writePart(w, key, params[key]); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to finish multipart body")
	}

	return body, w.FormDataContentType(), nil
}

// FieldValue returns the text sent for a non-file multipart field.
func FieldValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return "1", nil
		}
		return "", nil
	case json.Number:
		return v.String(), nil
	case []byte:
		return string(v), nil
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", errors.Wrap(err, "failed to JSON-encode multipart value")
		}
		return string(encoded), nil
	default:
		return Scalar(value), nil
	}
}

func writePart(w *multipart.Writer, key string, value any) error {
	if r, ok := value.(io.Reader); ok {
		part, err := w.CreateFormFile(key, fileName(key, r))
		if err != nil {
			return errors.Wrapf(err, "failed to create file part %q", key)
		}
		if _, err := io.Copy(part, r); err != nil {
			return errors.Wrapf(err, "failed to copy file part %q", key)
		}
		return nil
	}

	text, err := FieldValue(value)
	if err != nil {
		return errors.Wrapf(err, "field %q", key)
	}

	if err := w.WriteField(key, text); err != nil {
		return errors.Wrapf(err, "failed to write field %q", key)
	}

	return nil
}

func fileName(key string, r io.Reader) string {
	if named, ok := r.(interface{ Name() string }); ok {
		if name := filepath.Base(named.Name()); name != "." && name != "/" {
			return name
		}
	}

	return key
}
