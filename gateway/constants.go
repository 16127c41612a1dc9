package gateway

// ResponseStatus is the respstat field of a gateway response.
type ResponseStatus string

const (
	ResponseStatusApproved ResponseStatus = "A"
	ResponseStatusRetry    ResponseStatus = "B"
	ResponseStatusDeclined ResponseStatus = "C"
)

// CVVResponse is the cvvresp field of an authorization response.
type CVVResponse string

const (
	// Valid CVV Match.
	CVVValid CVVResponse = "M"
	// Invalid CVV.
	CVVInvalid CVVResponse = "N"
	// CVV Not Processed.
	CVVNotProcessed CVVResponse = "P"
	// Merchant indicated that the CVV is not present on the card.
	CVVNotPresent CVVResponse = "S"
	// Card issuer is not certified and/or has not provided Visa encryption keys.
	CVVNotCertified CVVResponse = "U"
	// No response.
	CVVNoResponse CVVResponse = "X"
)

// AVS response code sets for the avsresp field.
var (
	// Both the street address and postal code were verified.
	AVSSuccessful = []string{"Y", "X", "F", "D"}
	// Only the street address, or only the postal code, was verified.
	AVSPartiallySuccessful = []string{"A", "Z", "W", "P"}
	// Neither the street address nor the postal code could be verified.
	AVSUnsuccessful = []string{"N"}
	// There was an issue in verifying the address, or the verification
	// was not attempted.
	AVSUnattempted = []string{"R", "S", "U", "G", ""}
)

// SettlementStatus is the setlstat field of an inquire response.
type SettlementStatus string

const (
	// The authorization was approved, but the transaction has not yet been captured.
	SettlementAuthorized SettlementStatus = "Authorized"
	// The authorization was declined.
	SettlementDeclined SettlementStatus = "Declined"
	// The transaction was voided.
	SettlementVoided SettlementStatus = "Voided"
	// The authorization was approved and captured but has not yet been sent for settlement.
	SettlementQueuedForCapture SettlementStatus = "Queued for Capture"
	// The batch was sent for settlement, but the transaction was rejected for funding.
	SettlementRejected SettlementStatus = "Rejected"
	// The batch for this transaction was transmitted and accepted for funding.
	SettlementAccepted SettlementStatus = "Accepted"
	// The authorization was a $0 auth for account validation.
	SettlementZeroAmount SettlementStatus = "Zero amount"
	// The order did not transmit for settlement due to unexpected or invalid order or item data.
	SettlementFormatError SettlementStatus = "Format error"
	// The transaction was not settled due to a token decryption error.
	SettlementTokenDecrypt SettlementStatus = "Token Decrypt"
	// Vantiv only. PIN debit transactions are settled by Vantiv, and are
	// not submitted with the batch for settlement.
	SettlementPinDebit SettlementStatus = "Pin Debit"
	// First Data North and Rapid Connect only. The transaction was
	// placed under review because the amount exceeded a configured
	// threshold.
	SettlementUnderReview SettlementStatus = "Amount under review"
)

// CardType is the product field of a BIN lookup response.
type CardType string

const (
	CardTypeAmex       CardType = "A"
	CardTypeDiscover   CardType = "D"
	CardTypeMastercard CardType = "M"
	CardTypeNonBranded CardType = "N"
	CardTypeVisa       CardType = "V"
)
