package cardpointe

// APIError reports a failed API call. It covers both transport failures
// (4xx/5xx HTTP statuses) and domain failures (a 2xx response whose
// embedded status field signals an error). Response carries the raw
// response for inspection by the caller.
type APIError struct {
	Message  string
	Response *Response
}

func (e *APIError) Error() string {
	return e.Message
}
