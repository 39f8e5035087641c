// Package custody is a Go client library for the ChainUp Custody open
// API, covering both the MPC co-managed wallet product and the WaaS
// wallet service.
//
// The platform's transport is unusual: every request body is encrypted
// with the merchant's RSA private key and every response payload is
// decrypted with ChainUp's RSA public key, using a raw-RSA block scheme
// shared by all of ChainUp's official SDKs. This package implements
// that scheme along with the request signing and canonical sign-string
// rules transactional endpoints require.
//
// # Products
//
// Use the mpc subpackage for MPC wallets (sub-wallets, deposits,
// withdrawals, Web3 transactions, TRON resources) and the waas
// subpackage for the WaaS product (users, accounts, billing,
// transfers). Both are configured the same way:
//
//	client, err := mpc.New(appID, merchantPrivateKey, chainupPublicKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	assets, err := client.GetWalletAssets(ctx, 1000001, "ETH")
//
// # Keys
//
// Key material may be supplied as standard PEM, as single-line PEM, or
// as the bare base64 DER body shown in the ChainUp merchant dashboard;
// all three forms are accepted everywhere a key is expected.
//
// # Errors
//
// All errors returned by this module satisfy the CustodyError marker
// interface. Platform rejections surface as *APIError carrying the
// platform code, transport failures as *NetworkError, and local
// parameter problems as *ValidationError. Sentinel errors such as
// ErrKeyFormat support errors.Is checks.
package custody
