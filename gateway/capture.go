package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const captureEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/capture"

// Capture queues an authorized transaction amount for settlement.
// Capture can occur within the authorization request (capture "Y") or
// subsequently through this resource.
type Capture struct {
	client *cardpointe.Client
}

// CaptureRequest identifies the authorization to capture.
type CaptureRequest struct {
	// Retref is the retrieval reference number from the authorization
	// response.
	Retref string `validate:"required"`
	// Amount to capture. When omitted, the original authorization
	// amount is captured. Capturing more than the authorized amount
	// (such as a tip adjustment) requires the merchant to be entitled
	// with this capability.
	Amount cardpointe.Amount
	// Receipt is "Y" to return additional merchant and transaction data
	// to print on a receipt. Defaults to "N".
	Receipt string
	// AuthCode is the authorization code from the original
	// authorization request.
	AuthCode string
}

// Create captures the transaction for settlement.
func (r *Capture) Create(req CaptureRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid":  merchid(r.client),
		"retref":   req.Retref,
		"authcode": payload.Opt(req.AuthCode),
		"amount":   payload.OptAmount(req.Amount),
		"receipt":  payload.Opt(req.Receipt),
	})

	resp, err := r.client.Do("POST", resolve(r.client, captureEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	return checkRespStat(resp)
}
