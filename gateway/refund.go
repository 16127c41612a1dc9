package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const refundEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/refund"

// Refund returns funds for transactions that are in a settled status.
// Without a retref, funds can still be returned by passing a negative
// amount (forced credit) in an authorization and subsequent capture.
type Refund struct {
	client *cardpointe.Client
}

// RefundRequest identifies the settled transaction to refund.
type RefundRequest struct {
	// Retref is the retrieval reference number from the original
	// authorization.
	Retref string `validate:"required"`
	// Amount is a positive amount for partial refunds. If omitted, the
	// full amount of the transaction is refunded.
	Amount cardpointe.Amount
	// OrderID optionally assigns a unique order number to the refund
	// transaction instead of retaining the order ID from the original
	// authorization.
	OrderID string
}

// Create refunds the transaction.
func (r *Refund) Create(req RefundRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid": merchid(r.client),
		"retref":  req.Retref,
		"amount":  payload.OptAmount(req.Amount),
		"orderid": payload.Opt(req.OrderID),
	})

	resp, err := r.client.Do("POST", resolve(r.client, refundEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}
