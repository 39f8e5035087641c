// Package waas is the client for the ChainUp Custody WaaS (custodial
// wallet) API: user registration, deposit addresses, account balances,
// withdrawals, internal transfers and coin metadata.
//
// A client is built from the merchant app ID, the merchant RSA private
// key and the ChainUp platform RSA public key. WaaS decrypts every
// response payload locally, so unlike the MPC client both keys are
// mandatory unless a custom crypto provider is supplied:
//
//	client, err := waas.New(appID, privateKey, platformPublicKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	account, err := client.GetUserAccount(ctx, 12345, "ETH")
//
// Requests are addressed under a versioned prefix (v2 by default) on
// the production host; WithHost and WithVersion point the client at
// other environments.
//
// Withdrawal callbacks that require secondary confirmation are handled
// with DecryptVerifyRequest and EncryptVerifyResponse, and deposit and
// withdrawal webhooks with DecryptNotification.
package waas
