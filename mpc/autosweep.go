package mpc

import (
	"context"

	custody "github.com/chainup-custody/custody-go"
)

// AutoCollectWallets identifies the wallets serving auto-sweep for a
// coin: the collection destination and the miner-fee fueling source.
type AutoCollectWallets struct {
	FuelingSubWalletID int64 `json:"fueling_sub_wallet_id"`
	CollectSubWalletID int64 `json:"collect_sub_wallet_id"`
}

// AutoCollectRecord is a sweeping ledger entry.
type AutoCollectRecord struct {
	ID              int64           `json:"id"`
	SubWalletID     int64           `json:"sub_wallet_id"`
	Symbol          string          `json:"symbol"`
	Amount          custody.Decimal `json:"amount"`
	Fee             custody.Decimal `json:"fee"`
	RealFee         custody.Decimal `json:"real_fee"`
	FeeSymbol       string          `json:"fee_symbol"`
	AddressFrom     string          `json:"address_from"`
	AddressTo       string          `json:"address_to"`
	ContractAddress string          `json:"contract_address"`
	TxID            string          `json:"txid"`
	Memo            string          `json:"memo"`
	Remark          string          `json:"remark"`
	Confirmations   int64           `json:"confirmations"`
	TxHeight        int64           `json:"tx_height"`
	BaseSymbol      string          `json:"base_symbol"`
	Status          int64           `json:"status"`
	// TransType is 10 for collection transactions.
	TransType int64 `json:"trans_type"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// GetAutoCollectWallets returns the auto-sweep and fueling wallets for
// a coin.
func (c *Client) GetAutoCollectWallets(ctx context.Context, symbol string) (*AutoCollectWallets, error) {
	if symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}

	args := map[string]any{"symbol": symbol}

	var wallets AutoCollectWallets
	if err := c.api.Get(ctx, "/api/mpc/auto_collect/sub_wallets", args, &wallets); err != nil {
		return nil, err
	}
	return &wallets, nil
}

// SetAutoCollectSymbol configures auto-sweep for a coin: the minimum
// amount worth collecting and the miner-fee ceiling for refueling.
// Both amounts take up to 6 decimal places.
func (c *Client) SetAutoCollectSymbol(ctx context.Context, symbol, collectMin, fuelingLimit string) error {
	if symbol == "" {
		return &custody.ValidationError{Message: "symbol is required"}
	}
	if collectMin == "" {
		return &custody.ValidationError{Message: "collect_min is required"}
	}
	if fuelingLimit == "" {
		return &custody.ValidationError{Message: "fueling_limit is required"}
	}

	args := map[string]any{
		"symbol":        symbol,
		"collect_min":   collectMin,
		"fueling_limit": fuelingLimit,
	}

	return c.api.Post(ctx, "/api/mpc/auto_collect/symbol/set", args, nil)
}

// SyncAutoCollectRecords pages through sweeping records in id order,
// returning up to 100 records with an ID above maxID.
func (c *Client) SyncAutoCollectRecords(ctx context.Context, maxID int64) ([]AutoCollectRecord, error) {
	args := map[string]any{"max_id": maxID}

	var list []AutoCollectRecord
	if err := c.api.Get(ctx, "/api/mpc/billing/sync_auto_collect_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}
