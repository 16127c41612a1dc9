package gateway

import (
	cardpointe "github.com/dvcrn/cardpointe-go"
	"github.com/dvcrn/cardpointe-go/internal/payload"
	"github.com/dvcrn/cardpointe-go/internal/validator"
)

const signatureEndpoint = "https://{site}.cardconnect.com/cardconnect/rest/sigcap"

// signatureAccepted is the respcode signaling a stored signature.
const signatureAccepted = "02"

// Signature augments an existing authorization record with signature
// data, which can then be retrieved by an inquire request.
type Signature struct {
	client *cardpointe.Client
}

// SignatureRequest attaches signature data to an authorization.
type SignatureRequest struct {
	// Retref is the retrieval reference number from the authorization
	// response.
	Retref string `validate:"required"`
	// Signature is a JSON encoded, Base64 encoded, GZipped, BMP
	// (200x100px) image. Omit to erase an associated signature.
	Signature string
}

// Create stores the signature. Unlike the other gateway resources, the
// sigcap endpoint signals success through respcode "02".
func (r *Signature) Create(req SignatureRequest) (cardpointe.Result, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	data := payload.Clean(payload.Fields{
		"merchid":   merchid(r.client),
		"retref":    req.Retref,
		"signature": payload.Opt(req.Signature),
	})

	resp, err := r.client.Do("POST", resolve(r.client, signatureEndpoint, ""), data)
	if err != nil {
		return nil, err
	}

	result, err := decode(resp)
	if err != nil {
		return nil, err
	}

	if result.Str("respcode") != signatureAccepted {
		return nil, &cardpointe.APIError{
			Message:  result.Str("resptext"),
			Response: resp,
		}
	}

	return result, nil
}
