// Package gateway is a client for the CardPointe Gateway API:
// authorizations, captures, voids, refunds, transaction inquiry,
// stored profiles, signature capture, BIN lookup and merchant funding
// reports.
package gateway

import (
	"fmt"

	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/endpoint"
)

// API groups the gateway resources behind a single authenticated
// client. All resources share the same read-only credentials, so one
// API value may serve any number of concurrent callers.
type API struct {
	InquireMerchant  *InquireMerchant
	Authorization    *Authorization
	Capture          *Capture
	Inquire          *Inquire
	InquireByOrderID *InquireByOrderID
	Void             *Void
	VoidByOrderID    *VoidByOrderID
	Refund           *Refund
	Profile          *Profile
	Signature        *Signature
	BIN              *BIN
	Funding          *Funding
}

// New creates a gateway API client for the given site and merchant.
func New(site, merchantID, username, password string, opts ...cardpointe.Option) *API {
	client := cardpointe.NewClient(cardpointe.Credentials{
		Site:       site,
		MerchantID: merchantID,
		Username:   username,
		Password:   password,
	}, opts...)

	return &API{
		InquireMerchant:  &InquireMerchant{client: client},
		Authorization:    &Authorization{client: client},
		Capture:          &Capture{client: client},
		Inquire:          &Inquire{client: client},
		InquireByOrderID: &InquireByOrderID{client: client},
		Void:             &Void{client: client},
		VoidByOrderID:    &VoidByOrderID{client: client},
		Refund:           &Refund{client: client},
		Profile:          &Profile{client: client},
		Signature:        &Signature{client: client},
		BIN:              &BIN{client: client},
		Funding:          &Funding{client: client},
	}
}

// resolve expands a gateway endpoint template against the client's
// credentials.
func resolve(client *cardpointe.Client, base, path string) string {
	creds := client.Credentials()
	return endpoint.Resolve(base, path, creds.Site, creds.MerchantID)
}

func merchid(client *cardpointe.Client) string {
	return client.Credentials().MerchantID
}

func decode(resp *cardpointe.Response) (cardpointe.Result, error) {
	var result cardpointe.Result
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response body: %w", err)
	}
	return result, nil
}

// checkRespStat applies the common gateway success predicate: the
// transaction went through iff respstat is "A"; resptext carries the
// failure text otherwise.
func checkRespStat(resp *cardpointe.Response) (cardpointe.Result, error) {
	result, err := decode(resp)
	if err != nil {
		return nil, err
	}

	if result.Str("respstat") != string(ResponseStatusApproved) {
		return nil, &cardpointe.APIError{
			Message:  result.Str("resptext"),
			Response: resp,
		}
	}

	return result, nil
}

// checkInquiry is the relaxed predicate for inquiry responses: a
// declined transaction that was found still carries an account field
// and is not an error.
func checkInquiry(resp *cardpointe.Response, result cardpointe.Result) error {
	if !result.Has("account") && result.Str("respstat") != string(ResponseStatusApproved) {
		return &cardpointe.APIError{
			Message:  result.Str("resptext"),
			Response: resp,
		}
	}
	return nil
}
