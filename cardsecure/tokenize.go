package cardsecure

import (
	"fmt"

	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/endpoint"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const tokenizeEndpoint = "https://{site}.cardconnect.com/cardsecure/api/v1/ccn/tokenize"

// Tokenize exchanges payment account data for CardSecure tokens.
type Tokenize struct {
	client *cardpointe.Client
}

// TokenizeRequest carries the account data to tokenize. Payment data
// goes in either Account or DeviceData; at least one is required.
type TokenizeRequest struct {
	// Account is a clear or encrypted payment account number (PAN), or
	// an ACH routing and account number string in the format
	// <routing>/<account> for eCheck transactions. If EncryptionHandler
	// is provided, the account is treated as an encrypted PAN.
	Account string `validate:"required_without=DeviceData"`
	// DeviceData is encrypted track data from a card reader or terminal
	// device (MSR/EMV/NFC), or a digital wallet payload (Apple Pay
	// payment token or Google Pay wallet payload).
	DeviceData string `validate:"required_without=Account"`
	// Expiry is the card expiration date in one of the formats MMYY,
	// YYYYM (for single-digit months), YYYYMM, YYYYMMDD.
	Expiry string
	// CVV is the 3 or 4 digit card verification value.
	CVV string
	// Signature is a JSON escaped, Base64 encoded, Gzipped, BMP of
	// signature data.
	Signature string
	// EncryptionHandler is RSA for an encrypted PAN or ACH,
	// EC_APPLE_PAY for an Apple Pay payment token, or EC_GOOGLE_PAY for
	// a Google Pay wallet payload.
	EncryptionHandler string
	// Unique is "true" to generate a unique token. Defaults to "false".
	Unique string
}

// Create requests a CardSecure token generated from the data provided
// in the request. The returned token can then be used to submit an
// authorization request to the CardPointe Gateway.
func (r *Tokenize) Create(req TokenizeRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"account":    payload.Opt(req.Account),
		"devicedata": payload.Opt(req.DeviceData),

		"expiry":            payload.Opt(req.Expiry),
		"cvv":               payload.Opt(req.CVV),
		"signature":         payload.Opt(req.Signature),
		"encryptionhandler": payload.Opt(req.EncryptionHandler),
		"unique":            payload.Opt(req.Unique),
	})

	return tokenizeCall(r.client, data)
}

// TokenizeUpdateRequest updates a payment card token with the CVV and
// expiration date associated with the card.
//
// Note: if track data was captured with a card reader or terminal, do
// not update the token; the update may delete the track data, making
// the token unusable.
type TokenizeUpdateRequest struct {
	// Account is a token representing a payment account number.
	Account string `validate:"required"`
	// Expiry is the card expiration date in one of the formats MMYY,
	// YYYYM (for single-digit months), YYYYMM, YYYYMMDD.
	Expiry string
	// CVV is the 3 or 4 digit card verification value.
	CVV string
}

// Update associates an expiration date and CVV with an existing token.
func (r *Tokenize) Update(req TokenizeUpdateRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"account": req.Account,
		"expiry":  payload.Opt(req.Expiry),
		"cvv":     payload.Opt(req.CVV),
	})

	return tokenizeCall(r.client, data)
}

func tokenizeCall(client *cardpointe.Client, data payload.Fields) (cardpointe.Result, error) {
	creds := client.Credentials()
	url := endpoint.Resolve(tokenizeEndpoint, "", creds.Site, creds.MerchantID)

	resp, err := client.Do("POST", url, data)
	if err != nil {
		return nil, err
	}

	return checkErrorCode(resp)
}

// checkErrorCode applies the CardSecure success predicate: a response
// is successful iff errorcode is 0; message carries the failure text.
func checkErrorCode(resp *cardpointe.Response) (cardpointe.Result, error) {
	var result cardpointe.Result
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response body: %w", err)
	}

	if code, ok := result.Int("errorcode"); !ok || code != 0 {
		return nil, &cardpointe.APIError{
			Message:  result.Str("message"),
			Response: resp,
		}
	}

	return result, nil
}
