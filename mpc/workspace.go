package mpc

import (
	"context"
	"encoding/json"

	custody "github.com/chainup-custody/custody-go"
)

// CoinDetails describes one coin supported by the workspace.
type CoinDetails struct {
	ID                 int64  `json:"id"`
	CoinNet            string `json:"coin_net"`
	Symbol             string `json:"symbol"`
	RealSymbol         string `json:"real_symbol"`
	SymbolAlias        string `json:"symbol_alias"`
	BaseSymbol         string `json:"base_symbol"`
	MergeAddressSymbol string `json:"merge_address_symbol"`
	// Decimals arrives as a numeric string, e.g. "18".
	Decimals        custody.Int32 `json:"decimals"`
	ContractAddress string        `json:"contract_address"`
	// CoinType is 0 for a native coin, 1 for a token.
	CoinType int32 `json:"coin_type"`
	// SupportMemo and SupportToken are "1" when supported, "0" when not.
	SupportMemo          string `json:"support_memo"`
	SupportToken         string `json:"support_token"`
	SupportMultiAddr     bool   `json:"support_multi_addr"`
	SupportAcceleration  bool   `json:"support_acceleration"`
	IfOpenChain          bool   `json:"if_open_chain"`
	Icon                 string `json:"icon"`
	AddressRegex         string `json:"address_regex"`
	AddressTagRegex      string `json:"address_tag_regex"`
	AddressLink          string `json:"address_link"`
	TxIDLink             string `json:"txid_link"`
	MinDeposit           string `json:"min_deposit"`
	MinWithdraw          string `json:"min_withdraw"`
	DepositConfirmation  string `json:"deposit_confirmation"`
	WithdrawConfirmation string `json:"withdraw_confirmation"`
}

// BlockHeightInfo carries the latest block height of a chain.
type BlockHeightInfo struct {
	BlockHeight int64 `json:"block_height"`
}

// UnmarshalJSON accepts both the "block_height" and the legacy
// "height" field names.
func (b *BlockHeightInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		BlockHeight *int64 `json:"block_height"`
		Height      *int64 `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.BlockHeight != nil:
		b.BlockHeight = *raw.BlockHeight
	case raw.Height != nil:
		b.BlockHeight = *raw.Height
	}
	return nil
}

// SupportedCoin describes a main chain known to the platform.
type SupportedCoin struct {
	CoinNet string `json:"coin_net"`
	Symbol  string `json:"symbol"`
	// IsSupportMemo is 1 when the chain uses address memos.
	IsSupportMemo       int32  `json:"is_support_memo"`
	ChainID             string `json:"chain_id"`
	EnableWithdraw      bool   `json:"enable_withdraw"`
	EnableDeposit       bool   `json:"enable_deposit"`
	SupportAcceleration bool   `json:"support_acceleration"`
	NeedPayment         bool   `json:"need_payment"`
	IfOpenChain         bool   `json:"if_open_chain"`
	RealSymbol          string `json:"real_symbol"`
	SymbolAlias         string `json:"symbol_alias"`
	DisplayOrder        int32  `json:"display_order"`
}

// SupportedCoins groups the chains opened for the workspace and all
// chains the platform supports.
type SupportedCoins struct {
	OpenMainChain    []SupportedCoin `json:"open_main_chain"`
	SupportMainChain []SupportedCoin `json:"support_main_chain"`
}

// GetCoinDetails returns coin parameters for a symbol.
// mainChainSymbol narrows the lookup for tokens that exist on several
// chains; it may be empty.
func (c *Client) GetCoinDetails(ctx context.Context, symbol, mainChainSymbol string) ([]CoinDetails, error) {
	if symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}

	args := map[string]any{"symbol": symbol}
	if mainChainSymbol != "" {
		args["main_chain_symbol"] = mainChainSymbol
	}

	var list []CoinDetails
	if err := c.api.Get(ctx, "/api/mpc/coin_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetLastBlockHeight returns the latest block height the platform has
// processed for a chain.
func (c *Client) GetLastBlockHeight(ctx context.Context, baseSymbol string) (*BlockHeightInfo, error) {
	if baseSymbol == "" {
		return nil, &custody.ValidationError{Message: "base_symbol is required"}
	}

	args := map[string]any{"base_symbol": baseSymbol}

	var info BlockHeightInfo
	if err := c.api.Get(ctx, "/api/mpc/chain_height", args, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSupportedCoins lists the main chains opened for the workspace and
// those the platform supports.
func (c *Client) GetSupportedCoins(ctx context.Context) (*SupportedCoins, error) {
	var coins SupportedCoins
	if err := c.api.Get(ctx, "/api/mpc/wallet/open_coin", nil, &coins); err != nil {
		return nil, err
	}
	return &coins, nil
}
