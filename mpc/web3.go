package mpc

import (
	"context"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// CreateWeb3TransParams configures CreateWeb3Trans.
type CreateWeb3TransParams struct {
	// RequestID uniquely identifies the transaction. Required.
	RequestID   string
	SubWalletID int64
	// MainChainSymbol is the chain to transact on, e.g. "ETH". Required.
	MainChainSymbol string
	// InteractiveContract is the contract address to call. Required.
	InteractiveContract string
	// Amount is the transfer amount in the chain's base unit. Required;
	// use "0" for calls that move no value.
	Amount string
	// GasPrice is the gas price in Gwei. Required.
	GasPrice string
	// GasLimit is the gas limit. Required.
	GasLimit string
	// InputData is the hex-encoded contract call data. Required.
	InputData string
	// TransType is "0" for an authorization, "1" for a regular
	// transaction. Required.
	TransType string
	// From is the initiating address. Optional.
	From string
	// DappName names the originating dapp. Optional.
	DappName string
	// DappURL is the originating dapp URL. Optional.
	DappURL string
	// DappImg is the originating dapp icon URL. Optional.
	DappImg string
	// SignTransaction attaches the co-signing signature. Requires a
	// signing key on the client.
	SignTransaction bool
}

// Web3TransRecord is a Web3 transaction ledger entry.
type Web3TransRecord struct {
	ID                  int64           `json:"id"`
	RequestID           string          `json:"request_id"`
	SubWalletID         int64           `json:"sub_wallet_id"`
	MainChainSymbol     string          `json:"main_chain_symbol"`
	Symbol              string          `json:"symbol"`
	InteractiveContract string          `json:"interactive_contract"`
	Amount              custody.Decimal `json:"amount"`
	GasPrice            custody.Decimal `json:"gas_price"`
	GasLimit            custody.Decimal `json:"gas_limit"`
	GasUsed             custody.Decimal `json:"gas_used"`
	TxID                string          `json:"txid"`
	AddressFrom         string          `json:"address_from"`
	AddressTo           string          `json:"address_to"`
	Fee                 custody.Decimal `json:"fee"`
	RealFee             custody.Decimal `json:"real_fee"`
	FeeSymbol           string          `json:"fee_symbol"`
	Status              int32           `json:"status"`
	TransType           custody.Int32   `json:"trans_type"`
	// TransSource is 1 for the web app, 2 for the open API.
	TransSource   custody.Int32 `json:"trans_source"`
	Confirmations custody.Int32 `json:"confirmations"`
	TxHeight      custody.Int64 `json:"tx_height"`
	Remark        string        `json:"remark"`
	CreatedAt     custody.Int64 `json:"created_at"`
	UpdatedAt     custody.Int64 `json:"updated_at"`
}

// CreateWeb3Trans submits a Web3 contract transaction from a
// sub-wallet.
func (c *Client) CreateWeb3Trans(ctx context.Context, params CreateWeb3TransParams) (*Web3TransRecord, error) {
	required := []struct {
		name, value string
	}{
		{"request_id", params.RequestID},
		{"main_chain_symbol", params.MainChainSymbol},
		{"interactive_contract", params.InteractiveContract},
		{"amount", params.Amount},
		{"gas_price", params.GasPrice},
		{"gas_limit", params.GasLimit},
		{"input_data", params.InputData},
		{"trans_type", params.TransType},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &custody.ValidationError{Message: f.name + " is required"}
		}
	}
	if params.SignTransaction && !c.signAvailable() {
		return nil, &custody.ValidationError{Message: "transaction signing requires a sign private key"}
	}

	args := map[string]any{
		"request_id":           params.RequestID,
		"sub_wallet_id":        params.SubWalletID,
		"main_chain_symbol":    params.MainChainSymbol,
		"interactive_contract": params.InteractiveContract,
		"amount":               params.Amount,
		"gas_price":            params.GasPrice,
		"gas_limit":            params.GasLimit,
		"input_data":           params.InputData,
		"trans_type":           params.TransType,
	}
	if params.From != "" {
		args["from"] = params.From
	}
	if params.DappName != "" {
		args["dapp_name"] = params.DappName
	}
	if params.DappURL != "" {
		args["dapp_url"] = params.DappURL
	}
	if params.DappImg != "" {
		args["dapp_img"] = params.DappImg
	}

	if params.SignTransaction {
		sp := Web3SignParams{
			RequestID:           params.RequestID,
			SubWalletID:         params.SubWalletID,
			MainChainSymbol:     params.MainChainSymbol,
			InteractiveContract: params.InteractiveContract,
			Amount:              params.Amount,
			InputData:           params.InputData,
		}
		sign, err := c.crypto.Sign(sp.SignString())
		if err != nil {
			return nil, err
		}
		args["sign"] = sign
	}

	var rec Web3TransRecord
	if err := c.api.Post(ctx, "/api/mpc/web3/trans/create", args, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// AccelerateWeb3Trans resubmits a pending Web3 transaction with a
// higher gas price.
func (c *Client) AccelerateWeb3Trans(ctx context.Context, transID int64, gasPrice, gasLimit string) (*Web3TransRecord, error) {
	if transID <= 0 {
		return nil, &custody.ValidationError{Message: "trans_id is required and must be positive"}
	}
	if gasPrice == "" {
		return nil, &custody.ValidationError{Message: "gas_price is required"}
	}
	if gasLimit == "" {
		return nil, &custody.ValidationError{Message: "gas_limit is required"}
	}

	args := map[string]any{
		"trans_id":  transID,
		"gas_price": gasPrice,
		"gas_limit": gasLimit,
	}

	var rec Web3TransRecord
	if err := c.api.Post(ctx, "/api/mpc/web3/pending", args, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetWeb3TransRecords fetches Web3 transaction records by request ID,
// up to 100 per call.
func (c *Client) GetWeb3TransRecords(ctx context.Context, requestIDs []string) ([]Web3TransRecord, error) {
	if len(requestIDs) == 0 {
		return nil, &custody.ValidationError{Message: "request_ids is required and must be non-empty"}
	}

	args := map[string]any{"ids": strings.Join(requestIDs, ",")}

	var list []Web3TransRecord
	if err := c.api.Get(ctx, "/api/mpc/web3/trans_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SyncWeb3TransRecords pages through Web3 transaction records in id
// order, returning up to 100 records with an ID above maxID.
func (c *Client) SyncWeb3TransRecords(ctx context.Context, maxID int64) ([]Web3TransRecord, error) {
	args := map[string]any{"max_id": maxID}

	var list []Web3TransRecord
	if err := c.api.Get(ctx, "/api/mpc/web3/sync_trans_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}
