package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
)

const fundingEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/funding"

// Funding provides merchant funding information and supplemental
// transaction and funding adjustment details from the host payment
// processing platform. Funding data is only available for merchants
// with the funding service configured and enabled in the production
// environment.
type Funding struct {
	client *cardpointe.Client
}

// Get returns all available funding data for the merchant on the given
// date, in arrays of fundings, txns, adjustments and chargebacks
// records; the adjustment and chargeback arrays are omitted when empty.
//
// The date can be MMDD for a day within the current calendar year, or
// YYYYMMDD for a date in a previous calendar year. When empty, the
// service returns whatever funding data has not already been retrieved.
func (r *Funding) Get(date string) (cardpointe.Result, error) {
	path := "?merchid={merchid}"
	if date != "" {
		path += "&date=" + date
	}

	resp, err := r.client.Do("GET", resolve(r.client, fundingEndpoint, path), nil)
	if err != nil {
		return nil, err
	}

	result, err := decode(resp)
	if err != nil {
		return nil, err
	}

	if result.Has("errormsg") {
		return nil, &cardpointe.APIError{
			Message:  result.Str("errormsg"),
			Response: resp,
		}
	}

	return result, nil
}
