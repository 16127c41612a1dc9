package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
)

const inquireEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/inquire"

// Inquire returns information for an individual transaction, including
// its settlement status (setlstat) and the response codes from the
// initial authorization.
type Inquire struct {
	client *cardpointe.Client
}

// Get looks up the transaction identified by the retrieval reference
// number from the original authorization response. A declined
// transaction that was found is not an error; the caller can inspect
// respstat on the result.
func (r *Inquire) Get(retref string) (cardpointe.Result, error) {
	url := resolve(r.client, inquireEndpoint, retref+"/{merchid}")

	resp, err := r.client.Do("GET", url, nil)
	if err != nil {
		return nil, err
	}

	result, err := decode(resp)
	if err != nil {
		return nil, err
	}

	if err := checkInquiry(resp, result); err != nil {
		return nil, err
	}

	return result, nil
}
