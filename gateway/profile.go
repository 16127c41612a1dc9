package gateway

import (
	"fmt"
	"strings"

	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const profileEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/profile"

// Profile manages stored, tokenized payment accounts. A profile holds
// one or more accounts, addressed as "<profile id>/<account id>"; when
// the account ID is omitted, an operation addresses all accounts under
// the profile.
type Profile struct {
	client *cardpointe.Client
}

// profilePath splits a bare profile ID or "<id>/<acctid>" pair into the
// endpoint path addressing it.
func profilePath(profile string) string {
	profileID, accountID, _ := strings.Cut(profile, "/")
	return profileID + "/" + accountID + "/{merchid}"
}

// Get returns the stored data for the specified profile ID. Pass the
// profile as either a bare ID, to fetch every account in the profile,
// or "<profile id>/<account id>" for a specific account.
func (r *Profile) Get(profile string) ([]cardpointe.Result, error) {
	resp, err := r.client.Do("GET", resolve(r.client, profileEndpoint, profilePath(profile)), nil)
	if err != nil {
		return nil, err
	}

	return checkProfileResults(resp)
}

// ProfileRequest creates a new profile or adds a new account to an
// existing one. The account is tokenized upstream and the profile
// created with a token, a profile ID and an optional account ID.
//
// A $0 authorization with CVV and AVS verification can be submitted to
// validate the customer's information before creating a profile.
type ProfileRequest struct {
	// Account is a CardSecure token, a clear text card number, or a
	// bank account number (in which case BankABA is also required).
	Account string `validate:"required"`
	// Expiry is the card expiration in one of the formats MMYY, YYYYM,
	// YYYYMM, YYYYMMDD. Not required for eCheck (ACH) or digital
	// wallet payments.
	Expiry string `validate:"required"`
	// DefaultAcct is "Y" to mark this account as the profile's default.
	// The default account is used for authorization requests that
	// supply only the profile ID.
	DefaultAcct string

	// Account holder fields, as on AuthorizationRequest.
	Name     string
	Company  string
	Address  string
	Address2 string
	City     string
	Region   string
	Country  string
	Postal   string
	Phone    string
	Email    string

	// ProfileID adds the account to an existing profile. It must be a
	// bare profile ID: including an account ID segment would create an
	// account with that fixed ID.
	ProfileID string `validate:"excludes=/"`
	// COFPermission is "Y" when the cardholder consented to storing
	// their payment details. Defaults to "N".
	COFPermission string

	// BankABA is the bank routing number, required when Account holds a
	// bank account number.
	BankABA string
	// AUOptOut is "Y" to opt the profile out of the Card Account
	// Updater service. Defaults to "N".
	AUOptOut string
	// AcctType is one of PPAL, PAID, GIFT, PDEBIT, otherwise not
	// required.
	AcctType string
}

// Create stores the account in a new or existing profile.
func (r *Profile) Create(req ProfileRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid":     merchid(r.client),
		"account":     req.Account,
		"expiry":      req.Expiry,
		"defaultacct": payload.Opt(req.DefaultAcct),

		"name":     payload.Opt(req.Name),
		"company":  payload.Opt(req.Company),
		"address":  payload.Opt(req.Address),
		"address2": payload.Opt(req.Address2),
		"city":     payload.Opt(req.City),
		"region":   payload.Opt(req.Region),
		"country":  payload.Opt(req.Country),
		"postal":   payload.Opt(req.Postal),
		"phone":    payload.Opt(req.Phone),
		"email":    payload.Opt(req.Email),

		"profile":       payload.Opt(req.ProfileID),
		"cofpermission": payload.Opt(req.COFPermission),

		"bankaba":  payload.Opt(req.BankABA),
		"auoptout": payload.Opt(req.AUOptOut),
		"accttype": payload.Opt(req.AcctType),
	})

	resp, err := r.client.Do("POST", resolve(r.client, profileEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}

// ProfileUpdateRequest updates an existing account within a profile.
type ProfileUpdateRequest struct {
	// Profile is the "<profile id>/<account id>" pair addressing the
	// account. The account ID segment is mandatory here: without it the
	// gateway would silently create a new profile instead of updating.
	// Note that a non-existent account ID still creates a new account.
	Profile string `validate:"required,contains=/"`
	// Account is a CardSecure token, a clear text card number, or a
	// bank account number (in which case BankABA is also required).
	Account string `validate:"required"`
	// Expiry is the card expiration in one of the formats MMYY, YYYYM,
	// YYYYMM, YYYYMMDD.
	Expiry string `validate:"required"`
	// DefaultAcct is "Y" to mark this account as the profile's default.
	DefaultAcct string

	// Account holder fields, as on AuthorizationRequest.
	Name     string
	Company  string
	Address  string
	Address2 string
	City     string
	Region   string
	Country  string
	Postal   string
	Phone    string
	Email    string

	// COFPermission is "Y" when the cardholder consented to storing
	// their payment details. Defaults to "N".
	COFPermission string

	// BankABA is the bank routing number, required when Account holds a
	// bank account number.
	BankABA string
	// AUOptOut is "Y" to opt the profile out of the Card Account
	// Updater service. Defaults to "N".
	AUOptOut string
	// AcctType is one of PPAL, PAID, GIFT, PDEBIT, otherwise not
	// required.
	AcctType string
}

// Update modifies an existing account.
func (r *Profile) Update(req ProfileUpdateRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid":       merchid(r.client),
		"profile":       req.Profile,
		"account":       req.Account,
		"expiry":        req.Expiry,
		"defaultacct":   payload.Opt(req.DefaultAcct),
		"profileupdate": "Y",

		"name":     payload.Opt(req.Name),
		"company":  payload.Opt(req.Company),
		"address":  payload.Opt(req.Address),
		"address2": payload.Opt(req.Address2),
		"city":     payload.Opt(req.City),
		"region":   payload.Opt(req.Region),
		"country":  payload.Opt(req.Country),
		"postal":   payload.Opt(req.Postal),
		"phone":    payload.Opt(req.Phone),
		"email":    payload.Opt(req.Email),

		"cofpermission": payload.Opt(req.COFPermission),

		"bankaba":  payload.Opt(req.BankABA),
		"auoptout": payload.Opt(req.AUOptOut),
		"accttype": payload.Opt(req.AcctType),
	})

	resp, err := r.client.Do("PUT", resolve(r.client, profileEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}

// Delete removes the stored data for the specified profile ID. Pass the
// profile as either a bare ID, to delete every account in the profile,
// or "<profile id>/<account id>" for a specific account. Deleting an
// account or profile associated with a billing plan also cancels and
// deletes the plan.
func (r *Profile) Delete(profile string) (cardpointe.Result, error) {
	resp, err := r.client.Do("DELETE", resolve(r.client, profileEndpoint, profilePath(profile)), nil)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}

// checkProfileResults decodes a profile lookup, which returns an array
// of accounts or a single object. Single results carry a respstat field
// on failure; arrays of accounts are passed through as-is.
func checkProfileResults(resp *cardpointe.Response) ([]cardpointe.Result, error) {
	var results []cardpointe.Result
	if err := resp.JSON(&results); err == nil {
		if len(results) != 1 {
			return results, nil
		}
		if err := checkProfileStatus(resp, results[0]); err != nil {
			return nil, err
		}
		return results, nil
	}

	var result cardpointe.Result
	if err := resp.JSON(&result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response body: %w", err)
	}

	if err := checkProfileStatus(resp, result); err != nil {
		return nil, err
	}

	return []cardpointe.Result{result}, nil
}

func checkProfileStatus(resp *cardpointe.Response, result cardpointe.Result) error {
	if result.Has("respstat") && result.Str("respstat") != string(ResponseStatusApproved) {
		return &cardpointe.APIError{
			Message:  result.Str("resptext"),
			Response: resp,
		}
	}
	return nil
}
