package mpc

import (
	"context"

	custody "github.com/chainup-custody/custody-go"
)

// DepositRecord is a deposit ledger entry.
type DepositRecord struct {
	ID          int64           `json:"id"`
	SubWalletID int64           `json:"sub_wallet_id"`
	Symbol      string          `json:"symbol"`
	BaseSymbol  string          `json:"base_symbol"`
	Amount      custody.Decimal `json:"amount"`
	AddressTo   string          `json:"address_to"`
	AddressFrom string          `json:"address_from"`
	Memo        string          `json:"memo"`
	TxID        string          `json:"txid"`
	// Confirmations is the confirmation count at notification time.
	Confirmations   int32           `json:"confirmations"`
	TxHeight        custody.Int64   `json:"tx_height"`
	ContractAddress string          `json:"contract_address"`
	Status          int32           `json:"status"`
	// DepositType is 1 for a normal deposit, 2 for a Web3 transaction
	// deposit, 10 for collection and 11 for collection miner fee.
	DepositType  int32           `json:"deposit_type"`
	RefundAmount custody.Decimal `json:"refund_amount"`
	KYTStatus    string          `json:"kyt_status"`
	Remark       string          `json:"remark"`
	CreatedAt    custody.Int64   `json:"created_at"`
	UpdatedAt    custody.Int64   `json:"updated_at"`
}

// GetDepositRecords fetches deposit records by their record IDs, up to
// 100 per call.
func (c *Client) GetDepositRecords(ctx context.Context, ids []int64) ([]DepositRecord, error) {
	if len(ids) == 0 {
		return nil, &custody.ValidationError{Message: "ids is required and must be non-empty"}
	}

	args := map[string]any{"ids": joinIDs(ids)}

	var list []DepositRecord
	if err := c.api.Get(ctx, "/api/mpc/billing/deposit_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SyncDepositRecords pages through deposit records in id order,
// returning up to 100 records with an ID above maxID.
func (c *Client) SyncDepositRecords(ctx context.Context, maxID int64) ([]DepositRecord, error) {
	args := map[string]any{"max_id": maxID}

	var list []DepositRecord
	if err := c.api.Get(ctx, "/api/mpc/billing/sync_deposit_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}
