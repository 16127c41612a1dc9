package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const (
	voidEndpoint          = "https://{site}.cardconnect.com/cardconnect/rest/void"
	voidByOrderIDEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/voidByOrderId"
)

// Void cancels a transaction that is in either "Authorized" or
// "Queued for Capture" status.
type Void struct {
	client *cardpointe.Client
}

// VoidRequest identifies the transaction to void.
//
// Partial voids are not supported for debit transactions; omit the
// amount or specify the full amount for a debit void.
type VoidRequest struct {
	// Retref is the retrieval reference number from the original
	// authorization response.
	Retref string `validate:"required"`
	// Amount to void. If omitted or equal to $0, the full amount is
	// voided. If no capture has taken place (setlstat "Authorized"),
	// a partial amount reduces the authorization.
	Amount cardpointe.Amount
}

// Create voids the transaction.
func (r *Void) Create(req VoidRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid": merchid(r.client),
		"retref":  req.Retref,
		"amount":  payload.OptAmount(req.Amount),
	})

	resp, err := r.client.Do("POST", resolve(r.client, voidEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}

// VoidByOrderID looks up and voids a transaction record using the
// order ID supplied in the original authorization request.
type VoidByOrderID struct {
	client *cardpointe.Client
}

// VoidByOrderIDRequest identifies the transaction to void by order ID.
type VoidByOrderIDRequest struct {
	// OrderID from the original authorization request.
	OrderID string `validate:"required"`
	// Amount to void. If omitted or equal to $0, the full amount is
	// voided.
	Amount cardpointe.Amount
}

// Create voids the transaction matching the order ID for this merchant.
func (r *VoidByOrderID) Create(req VoidByOrderIDRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid": merchid(r.client),
		"orderid": req.OrderID,
		"amount":  payload.OptAmount(req.Amount),
	})

	resp, err := r.client.Do("POST", resolve(r.client, voidByOrderIDEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}
