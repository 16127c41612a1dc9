package cardpointe

import (
	"encoding/json"
	"net/http"
)

// Response is a snapshot of an HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte

	// Method and URL echo the request that produced this response.
	Method string
	URL    string
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
