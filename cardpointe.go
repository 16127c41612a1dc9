// Package cardpointe provides clients for the CardPointe REST APIs:
// the CardSecure tokenization service and the CardPointe Gateway.
//
// The two API surfaces live in the cardsecure and gateway subpackages;
// this package holds the pieces they share: credentials, the
// authenticated transport, the error type, and the Amount wire type.
//
//	api := gateway.New("fts-uat", "496160873888", "testing", "testing123")
//
//	result, err := api.Authorization.Create(gateway.AuthorizationRequest{
//		Amount:  cardpointe.AmountFromString("2.01"),
//		Account: "4111 1111 1111 1111",
//		Expiry:  "1222",
//		CVV2:    "123",
//	})
package cardpointe
