package gateway

import (
	"fmt"

	cardpointe "github.com/dvcrn/cardpointe-go"
)

const inquireByOrderIDEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/inquireByOrderid"

// InquireByOrderID looks up authorizations by the order ID supplied in
// the original request instead of the retrieval reference number. This
// allows retrieving the retref (if one was generated) when the original
// authorization was interrupted and no response came back.
//
// Order IDs are not required to be unique, so a lookup may match more
// than one transaction.
type InquireByOrderID struct {
	client *cardpointe.Client
}

// Get looks up transactions by order ID. Set set to "1" to restrict the
// inquiry to the merchant ID in the request; leave it empty to search
// the order ID across all MIDs.
//
// When the order ID matches a single transaction the gateway returns an
// object; when it matches several, an array. Single results get the
// inquire success predicate (declined-but-found is not an error);
// arrays are passed through as-is.
func (r *InquireByOrderID) Get(orderid, set string) ([]cardpointe.Result, error) {
	path := orderid + "/{merchid}"
	if set != "" {
		path += "/" + set
	}

	resp, err := r.client.Do("GET", resolve(r.client, inquireByOrderIDEndpoint, path), nil)
	if err != nil {
		return nil, err
	}

	var results []cardpointe.Result
	if err := resp.JSON(&results); err == nil {
		return results, nil
	}

	var result cardpointe.Result
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response body: %w", err)
	}

	if err := checkInquiry(resp, result); err != nil {
		return nil, err
	}

	return []cardpointe.Result{result}, nil
}
