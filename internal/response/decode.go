// Package response reads and decodes GPSWox API response bodies.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// summaryLimit matches the body summary length used in client error messages.
const summaryLimit = 120

// Read drains and closes the response body.
func Read(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// Decode decodes a JSON body into maps, slices and scalars.
// Numbers are kept as json.Number. An empty or invalid body decodes to nil.
func Decode(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	// Trailing garbage makes the document invalid as a whole.
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil
	}

	return v
}

// Message returns the top-level "message" field of a JSON body as a string,
// or "" when the body has none.
func Message(body []byte) string {
	msg := gjson.GetBytes(body, "message")
	if !msg.Exists() || msg.Type == gjson.Null {
		return ""
	}

	return msg.String()
}

// Summary returns a printable excerpt of body for error messages. Bodies longer
// than 120 bytes are cut and marked as truncated. Non-UTF-8 bodies yield "".
func Summary(body []byte) string {
	if len(body) == 0 || !utf8.Valid(body) {
		return ""
	}

	if len(body) <= summaryLimit {
		return string(body)
	}

	cut := body[:summaryLimit]
	for !utf8.Valid(cut) {
		cut = cut[:len(cut)-1]
	}

	return string(cut) + " (truncated...)"
}

// ClientErrorMessage formats the message for a 4xx response other than 400 and
// 401: request line, status line and a body summary.
func ClientErrorMessage(method, redactedURL string, resp *http.Response, body []byte) string {
	msg := fmt.Sprintf("Client error: `%s %s` resulted in a `%s` response", method, redactedURL, statusLine(resp))
	if summary := Summary(body); summary != "" {
		msg += ":\n" + summary + "\n"
	}

	return msg
}

func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return fmt.Sprintf("%d %s", resp.StatusCode, text)
	}

	return fmt.Sprintf("%d", resp.StatusCode)
}
