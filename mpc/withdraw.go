package mpc

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	custody "github.com/chainup-custody/custody-go"
)

// WithdrawParams configures Withdraw.
type WithdrawParams struct {
	// RequestID uniquely identifies the withdrawal for idempotency.
	// Required.
	RequestID   string
	SubWalletID int64
	// Symbol is the coin identifier, e.g. "USDTERC20". Required.
	Symbol string
	// Amount is the withdrawal amount. Required.
	Amount decimal.Decimal
	// AddressTo is the destination address. Required.
	AddressTo string
	// From pins the sending coin address. Optional.
	From string
	// Memo is the address memo for chains that require one. Optional.
	Memo string
	// Remark is a free-form withdrawal note. Optional.
	Remark string
	// Outputs carries UTXO outputs for BTC-like coins. Optional.
	Outputs string
	// SignTransaction attaches the co-signing signature. Requires a
	// signing key on the client.
	SignTransaction bool
}

// WithdrawResult is the acknowledgement for a submitted withdrawal.
type WithdrawResult struct {
	WithdrawID int64 `json:"withdraw_id"`
}

// WithdrawRecord is a withdrawal ledger entry.
type WithdrawRecord struct {
	ID              int64           `json:"id"`
	RequestID       string          `json:"request_id"`
	SubWalletID     int64           `json:"sub_wallet_id"`
	Symbol          string          `json:"symbol"`
	BaseSymbol      string          `json:"base_symbol"`
	Amount          custody.Decimal `json:"amount"`
	AddressFrom     string          `json:"address_from"`
	AddressTo       string          `json:"address_to"`
	Memo            string          `json:"memo"`
	TxID            string          `json:"txid"`
	Status          int32           `json:"status"`
	CreatedAt       custody.Int64   `json:"created_at"`
	UpdatedAt       custody.Int64   `json:"updated_at"`
	Fee             custody.Decimal `json:"fee"`
	RealFee         custody.Decimal `json:"real_fee"`
	FeeSymbol       string          `json:"fee_symbol"`
	Confirmations   int32           `json:"confirmations"`
	TxHeight        int64           `json:"tx_height"`
	ContractAddress string          `json:"contract_address"`
	Remark          string          `json:"remark"`
	// WithdrawSource is 1 for app, 2 for openapi, 3 for web, 10 for
	// collect and 11 for collect fee.
	WithdrawSource int32 `json:"withdraw_source"`
}

// Withdraw submits a withdrawal from a sub-wallet.
func (c *Client) Withdraw(ctx context.Context, params WithdrawParams) (*WithdrawResult, error) {
	if params.RequestID == "" {
		return nil, &custody.ValidationError{Message: "request_id is required"}
	}
	if params.Symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}
	if params.Amount.IsZero() {
		return nil, &custody.ValidationError{Message: "amount is required"}
	}
	if params.AddressTo == "" {
		return nil, &custody.ValidationError{Message: "address_to is required"}
	}
	if params.SignTransaction && !c.signAvailable() {
		return nil, &custody.ValidationError{Message: "transaction signing requires a sign private key"}
	}

	args := map[string]any{
		"request_id":    params.RequestID,
		"sub_wallet_id": params.SubWalletID,
		"symbol":        params.Symbol,
		"amount":        params.Amount,
		"address_to":    params.AddressTo,
	}
	if params.From != "" {
		args["from"] = params.From
	}
	if params.Memo != "" {
		args["memo"] = params.Memo
	}
	if params.Remark != "" {
		args["remark"] = params.Remark
	}
	if params.Outputs != "" {
		args["outputs"] = params.Outputs
	}

	if params.SignTransaction {
		sp := WithdrawSignParams{
			RequestID:   params.RequestID,
			SubWalletID: params.SubWalletID,
			Symbol:      params.Symbol,
			AddressTo:   params.AddressTo,
			Amount:      params.Amount.String(),
			Memo:        params.Memo,
			Outputs:     params.Outputs,
		}
		sign, err := c.crypto.Sign(sp.SignString())
		if err != nil {
			return nil, err
		}
		args["sign"] = sign
	}

	var result WithdrawResult
	if err := c.api.Post(ctx, "/api/mpc/billing/withdraw", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWithdrawRecords fetches withdrawal records by request ID, up to
// 100 per call.
func (c *Client) GetWithdrawRecords(ctx context.Context, requestIDs []string) ([]WithdrawRecord, error) {
	if len(requestIDs) == 0 {
		return nil, &custody.ValidationError{Message: "request_ids is required and must be non-empty"}
	}

	args := map[string]any{"ids": strings.Join(requestIDs, ",")}

	var list []WithdrawRecord
	if err := c.api.Get(ctx, "/api/mpc/billing/withdraw_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SyncWithdrawRecords pages through withdrawal records in id order,
// returning up to 100 records with an ID above maxID.
func (c *Client) SyncWithdrawRecords(ctx context.Context, maxID int64) ([]WithdrawRecord, error) {
	args := map[string]any{"max_id": maxID}

	var list []WithdrawRecord
	if err := c.api.Get(ctx, "/api/mpc/billing/sync_withdraw_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}
