package cardpointe

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPClient struct {
	status   int
	body     string
	err      error
	lastReq  *http.Request
	lastBody []byte
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastReq = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Status:     fmt.Sprintf("%d %s", f.status, http.StatusText(f.status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

var testCreds = Credentials{
	Site:       "fts-uat",
	MerchantID: "496160873888",
	Username:   "testing",
	Password:   "testing123",
}

func TestDoSetsBasicAuthAndJSONBody(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{}`}
	client := NewClient(testCreds, WithHTTPClient(fake))

	resp, err := client.Do("POST", "https://fts-uat.cardconnect.com/cardconnect/rest/auth", map[string]any{
		"merchid": "496160873888",
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	username, password, ok := fake.lastReq.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "testing", username)
	assert.Equal(t, "testing123", password)

	assert.Equal(t, "application/json", fake.lastReq.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"merchid": "496160873888"}`, string(fake.lastBody))
}

func TestDoAuthorizationOverride(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{}`}
	client := NewClient(testCreds, WithHTTPClient(fake), WithAuthorization("Bearer token-123"))

	_, err := client.Do("GET", "https://fts-uat.cardconnect.com/cardconnect/rest/funding", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-123", fake.lastReq.Header.Get("Authorization"))
}

func TestDoOmitsContentTypeWithoutBody(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{}`}
	client := NewClient(testCreds, WithHTTPClient(fake))

	_, err := client.Do("GET", "https://fts-uat.cardconnect.com/cardconnect/rest/inquireMerchant/496160873888", nil)
	require.NoError(t, err)

	assert.Empty(t, fake.lastReq.Header.Get("Content-Type"))
	assert.Nil(t, fake.lastReq.Body)
}

func TestDoClassifiesStatusCodes(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{name: "bad request", status: 400, message: "400 Client Error"},
		{name: "unauthorized", status: 401, message: "401 Client Error"},
		{name: "not found", status: 404, message: "404 Client Error"},
		{name: "internal error", status: 500, message: "500 Server Error"},
		{name: "bad gateway", status: 502, message: "502 Server Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeHTTPClient{status: tc.status, body: `{"error": "nope"}`}
			client := NewClient(testCreds, WithHTTPClient(fake))

			resp, err := client.Do("GET", "https://fts-uat.cardconnect.com/x", nil)
			assert.Nil(t, resp)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.message, apiErr.Message)
			require.NotNil(t, apiErr.Response)
			assert.Equal(t, tc.status, apiErr.Response.StatusCode)
			assert.JSONEq(t, `{"error": "nope"}`, string(apiErr.Response.Body))
		})
	}
}

func TestDoPassesThroughRedirectStatuses(t *testing.T) {
	fake := &fakeHTTPClient{status: 302, body: ``}
	client := NewClient(testCreds, WithHTTPClient(fake))

	resp, err := client.Do("GET", "https://fts-uat.cardconnect.com/x", nil)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
}

func TestDoWrapsTransportErrors(t *testing.T) {
	fake := &fakeHTTPClient{err: errors.New("connection refused")}
	client := NewClient(testCreds, WithHTTPClient(fake))

	_, err := client.Do("GET", "https://fts-uat.cardconnect.com/x", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}
