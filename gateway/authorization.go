package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const authorizationEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/auth"

// Authorization requests permission from the bank to transfer money
// from the cardholder to the merchant. Authorization is the initial
// step in accepting payment from a cardholder.
type Authorization struct {
	client *cardpointe.Client
}

// AuthorizationRequest carries the fields of an authorization. The
// merchant ID is always taken from the client credentials.
type AuthorizationRequest struct {
	// Amount with decimal or without decimal in currency minor units.
	// The sign identifies the type of authorization: positive is an
	// authorization request, zero an account verification request, and
	// negative a refund without reference (forced credit; the merchant
	// must be configured to process forced credit transactions). To
	// refund an existing authorization, use Refund instead.
	Amount cardpointe.Amount `validate:"required"`
	// Account is a CardSecure token, a clear text card number, or a
	// bank account number (in which case BankABA is also required). To
	// use a stored profile, leave Account empty and supply the profile
	// ID in Profile instead.
	Account string
	// Expiry is the card expiration in one of the formats MMYY, YYYYM,
	// YYYYMM, YYYYMMDD. Not required for eCheck (ACH) or digital
	// wallet payments.
	Expiry string
	// CVV2 is the 3 or 4-digit cardholder verification value.
	CVV2 string
	// Capture is "Y" to capture the transaction for settlement if
	// approved. Defaults to "N".
	Capture string
	// Currency of the authorization, for example "USD" or "CAD". Must
	// match the currency the MID is configured for.
	Currency string
	// Userfields is a series of name-value pairs meaningful to the
	// merchant, echoed back on inquiry.
	Userfields map[string]string

	// Account holder fields. Address is required for AVS verification;
	// Postal defaults to "55555" upstream when absent; Country defaults
	// to "US" and is required for all non-US addresses; Phone is
	// required for E-check/ACH authorizations.
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

	// Profile is "Y" to create a stored profile from the account holder
	// data in this request, or "<profileid>/<acctid>" to pay with an
	// existing profile (leave Account empty then). If the authorization
	// fails or is declined, the profile is not created.
	Profile string
	// COF is "C" for a customer-initiated transaction or "M" for a
	// merchant-initiated transaction; required for transactions using
	// stored cardholder payment information.
	COF string
	// COFPermission is "Y" when the cardholder consented to storing
	// their payment data; reporting only. Defaults to "N".
	COFPermission string
	// COFScheduled is "Y" for a scheduled (automated) payment, "N" for
	// a one-time payment; required for merchant-initiated transactions.
	COFScheduled string

	// BankABA is the bank routing number, required for eCheck (ACH)
	// authorizations when a bank account number is in Account.
	BankABA string
	// EcomInd is the transaction origin indicator for card-not-present
	// and eCheck transactions: "T" telephone/mail, "R" recurring,
	// "E" e-commerce.
	EcomInd string
	// OrderID is the source system order number. It must be unique and
	// must not contain any portion of a payment account number; an
	// order ID that passes the gateway's Luhn check is masked and
	// becomes unusable for inquire, void, or refund.
	OrderID string
	// Receipt is "Y" to return receipt data fields in the response, or
	// "json" to return the receiptObj data. Defaults to "N".
	Receipt string
	// Tokenize is "Y" to return the masked account number instead of a
	// token in the response account field.
	Tokenize string
	// Signature is a JSON escaped, Base64 encoded, Gzipped, BMP of
	// signature data.
	Signature string
	// Track is payment card track data captured with a card reader.
	Track string
	// BIN is "Y" to return BIN lookup fields in the response.
	BIN string
	// AUOptOut is "Y" to opt the created profile out of the Card
	// Account Updater service. Defaults to "N".
	AUOptOut string
	// AuthCode is the authorization code from the original
	// authorization (VoiceAuth).
	AuthCode string
	// TaxExempt: when "Y", TaxAmount must be zero or omitted; when "N",
	// TaxAmount must be a positive, non-zero value.
	TaxExempt string
	// TaxAmount is the tax amount for the order.
	TaxAmount cardpointe.Amount
	// TermID is the terminal device ID for First Data ClientLine
	// reporting; exactly 8 characters, the last 5 numeric.
	TermID string
	// AcctType is ECHK or ESAV for ACH transactions, or PDEBIT for
	// PINless debit.
	AcctType string
}

// Create submits the authorization. It fails with *cardpointe.APIError
// carrying resptext when the gateway does not approve the request.
func (r *Authorization) Create(req AuthorizationRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid":    merchid(r.client),
		"amount":     req.Amount.String(),
		"account":    payload.Opt(req.Account),
		"expiry":     payload.Opt(req.Expiry),
		"cvv2":       payload.Opt(req.CVV2),
		"capture":    payload.Opt(req.Capture),
		"currency":   payload.Opt(req.Currency),
		"userfields": payload.OptMap(req.Userfields),

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

		"profile":       payload.Opt(req.Profile),
		"cof":           payload.Opt(req.COF),
		"cofpermission": payload.Opt(req.COFPermission),
		"cofscheduled":  payload.Opt(req.COFScheduled),

		"bankaba":   payload.Opt(req.BankABA),
		"ecomind":   payload.Opt(req.EcomInd),
		"orderid":   payload.Opt(req.OrderID),
		"receipt":   payload.Opt(req.Receipt),
		"tokenize":  payload.Opt(req.Tokenize),
		"signature": payload.Opt(req.Signature),
		"track":     payload.Opt(req.Track),
		"bin":       payload.Opt(req.BIN),
		"auoptout":  payload.Opt(req.AUOptOut),
		"authcode":  payload.Opt(req.AuthCode),
		"taxexempt": payload.Opt(req.TaxExempt),
		"taxamnt":   payload.OptAmount(req.TaxAmount),
		"termid":    payload.Opt(req.TermID),
		"accttype":  payload.Opt(req.AcctType),
	})

	resp, err := r.client.Do("POST", resolve(r.client, authorizationEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}
