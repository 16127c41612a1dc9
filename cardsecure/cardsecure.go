// Package cardsecure is a client for the CardSecure API, which turns
// payment account data into tokens that can be used against the
// CardPointe Gateway.
package cardsecure

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
)

// API groups the CardSecure resources behind a single authenticated
// client.
type API struct {
	Tokenize *Tokenize
	Echo     *Echo
}

// New creates a CardSecure API client for the given site and merchant.
func New(site, merchantID, username, password string, opts ...cardpointe.Option) *API {
	client := cardpointe.NewClient(cardpointe.Credentials{
		Site:       site,
		MerchantID: merchantID,
		Username:   username,
		Password:   password,
	}, opts...)

	return &API{
		Tokenize: &Tokenize{client: client},
		Echo:     &Echo{client: client},
	}
}
