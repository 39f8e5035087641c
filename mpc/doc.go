// Package mpc is the client for the ChainUp Custody MPC wallet API.
//
// An MPC workspace is addressed by an app identifier and a pair of RSA
// keys: the merchant private key encrypts and signs outgoing requests,
// the ChainUp platform public key decrypts responses and webhook
// notifications. Construct a client with New and call the operation
// methods grouped by concern: sub-wallets, deposits, withdrawals, Web3
// transactions, auto-sweep, workspace metadata and TRON resource
// delegation.
//
//	client, err := mpc.New(appID, merchantPrivateKey, platformPublicKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	assets, err := client.GetWalletAssets(ctx, 1000001, "ETH")
//
// Withdrawals and Web3 transactions can carry a second, co-signing RSA
// signature. Configure the dedicated key with WithSignPrivateKey; when
// no dedicated key is set the merchant private key signs.
package mpc
