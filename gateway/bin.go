package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
)

const binEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/bin"

// BIN determines what type of payment card backs a CardSecure token.
// The first six digits of a card number are the Bank Identification
// Number (BIN), also known as an Issuer Identification Number (IIN).
type BIN struct {
	client *cardpointe.Client
}

// Get looks up BIN data for the tokenized account number.
func (r *BIN) Get(token string) (cardpointe.Result, error) {
	resp, err := r.client.Do("GET", resolve(r.client, binEndpoint, "{merchid}/"+token), nil)
	if err != nil {
		return nil, err
	}

	result, err := decode(resp)
	if err != nil {
		return nil, err
	}

	if ok, _ := result["success"].(bool); !ok {
		return nil, &cardpointe.APIError{
			Message:  result.Str("errormsg"),
			Response: resp,
		}
	}

	return result, nil
}
