package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
)

const inquireMerchantEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/inquireMerchant/{merchid}"

// InquireMerchant returns information on the merchant account
// configuration. Helpful for partners who need to validate their
// CardPointe merchant IDs, or for businesses with merchants operating
// in multiple locations, to ensure the merchant ID is boarded to the
// correct site.
type InquireMerchant struct {
	client *cardpointe.Client
}

// Get fetches the merchant configuration. The response carries no
// status field, so whatever comes back is returned as-is.
func (r *InquireMerchant) Get() (cardpointe.Result, error) {
	resp, err := r.client.Do("GET", resolve(r.client, inquireMerchantEndpoint, ""), nil)
	if err != nil {
		return nil, err
	}

	return decode(resp)
}
