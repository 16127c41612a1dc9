package cardsecure

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardpointe "github.com/dvcrn/cardpointe-go"
)

type fakeHTTPClient struct {
	status   int
	body     string
	called   bool
	lastReq  *http.Request
	lastBody []byte
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.called = true
	f.lastReq = req
	if req.Body != nil {
		f.lastBody, _ = io.ReadAll(req.Body)
	}
	return &http.Response{
		StatusCode: f.status,
		Status:     fmt.Sprintf("%d %s", f.status, http.StatusText(f.status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func newTestAPI(fake *fakeHTTPClient) *API {
	return New("fts-uat", "496160873888", "testing", "testing123", cardpointe.WithHTTPClient(fake))
}

func requireBasicAuth(t *testing.T, req *http.Request) {
	t.Helper()
	username, password, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "testing", username)
	assert.Equal(t, "testing123", password)
}

func TestTokenizeCreate(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0, "token": "9418594164541111"}`}
	api := newTestAPI(fake)

	result, err := api.Tokenize.Create(TokenizeRequest{
		Account: "4111 1111 1111 1111",
		Expiry:  "1222",
		CVV:     "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "9418594164541111", result.Str("token"))

	assert.Equal(t, "POST", fake.lastReq.Method)
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardsecure/api/v1/ccn/tokenize", fake.lastReq.URL.String())
	requireBasicAuth(t, fake.lastReq)
	assert.JSONEq(t, `{
		"account": "4111 1111 1111 1111",
		"expiry": "1222",
		"cvv": "123"
	}`, string(fake.lastBody))
}

func TestTokenizeCreateRequiresAccountOrDeviceData(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0}`}
	api := newTestAPI(fake)

	_, err := api.Tokenize.Create(TokenizeRequest{Expiry: "1222"})
	require.Error(t, err)
	assert.False(t, fake.called, "validation failure must not reach the network")
}

func TestTokenizeCreateAcceptsDeviceData(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0}`}
	api := newTestAPI(fake)

	_, err := api.Tokenize.Create(TokenizeRequest{
		DeviceData:        "wallet-payload",
		EncryptionHandler: "EC_GOOGLE_PAY",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"devicedata": "wallet-payload",
		"encryptionhandler": "EC_GOOGLE_PAY"
	}`, string(fake.lastBody))
}

func TestTokenizeCreateDomainError(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 11, "message": "Invalid card number"}`}
	api := newTestAPI(fake)

	_, err := api.Tokenize.Create(TokenizeRequest{Account: "1234"})

	var apiErr *cardpointe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid card number", apiErr.Message)
	require.NotNil(t, apiErr.Response)
	assert.Equal(t, 200, apiErr.Response.StatusCode)
}

func TestTokenizeUpdate(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0}`}
	api := newTestAPI(fake)

	_, err := api.Tokenize.Update(TokenizeUpdateRequest{
		Account: "9418594164541111",
		Expiry:  "1222",
		CVV:     "123",
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", fake.lastReq.Method)
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardsecure/api/v1/ccn/tokenize", fake.lastReq.URL.String())
	requireBasicAuth(t, fake.lastReq)
	assert.JSONEq(t, `{
		"account": "9418594164541111",
		"expiry": "1222",
		"cvv": "123"
	}`, string(fake.lastBody))
}

func TestTokenizeUpdateRequiresAccount(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0}`}
	api := newTestAPI(fake)

	_, err := api.Tokenize.Update(TokenizeUpdateRequest{Expiry: "1222"})
	require.Error(t, err)
	assert.False(t, fake.called)
}

func TestEcho(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0, "message": "Hello"}`}
	api := newTestAPI(fake)

	result, err := api.Echo.Create("Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", result.Str("message"))

	assert.Equal(t, "POST", fake.lastReq.Method)
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardsecure/api/v1/echo", fake.lastReq.URL.String())
	requireBasicAuth(t, fake.lastReq)
	assert.JSONEq(t, `{"message": "Hello"}`, string(fake.lastBody))
}

func TestEchoBlankMessageStillIncluded(t *testing.T) {
	fake := &fakeHTTPClient{status: 200, body: `{"errorcode": 0}`}
	api := newTestAPI(fake)

	_, err := api.Echo.Create("")
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": ""}`, string(fake.lastBody))
}
