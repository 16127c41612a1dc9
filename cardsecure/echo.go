package cardsecure

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/endpoint"
	"github.com/dvcrn/cardpointe-go/internal/payload"
)

const echoEndpoint = "https://{site}.cardconnect.com/cardsecure/api/v1/echo"

// Echo pings the CardSecure server to verify the application's
// connection.
type Echo struct {
	client *cardpointe.Client
}

// Create sends a ping command to the CardSecure server. The message is
// returned in the response if the request is successful; it may be
// blank, but the field is always included in the request.
func (r *Echo) Create(message string) (cardpointe.Result, error) {
	data := payload.Fields{
		"message": message,
	}

	creds := r.client.Credentials()
	url := endpoint.Resolve(echoEndpoint, "", creds.Site, creds.MerchantID)

	resp, err := r.client.Do("POST", url, data)
	if err != nil {
		return nil, err
	}

	return checkErrorCode(resp)
}
