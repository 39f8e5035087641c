package waas

import (
	"context"

	custody "github.com/chainup-custody/custody-go"
)

// CoinInfo describes one coin supported by the platform.
type CoinInfo struct {
	// CoinNet is the network name shown in the merchant console.
	CoinNet string `json:"coin_net"`
	Symbol  string `json:"symbol"`
	Icon    string `json:"icon"`
	// RealSymbol is the on-chain ticker when Symbol is an alias.
	RealSymbol         string `json:"real_symbol"`
	SymbolAlias        string `json:"symbol_alias"`
	BaseSymbol         string `json:"base_symbol"`
	MergeAddressSymbol string `json:"merge_address_symbol"`
	MarginSymbol       string `json:"margin_symbol"`
	// Decimals arrives as a numeric string.
	Decimals        custody.Int32 `json:"decimals"`
	ContractAddress string        `json:"contract_address"`
	// DepositConfirmation and WithdrawConfirmation are the block
	// confirmations required before funds are credited or released.
	DepositConfirmation  custody.Int32 `json:"deposit_confirmation"`
	WithdrawConfirmation custody.Int32 `json:"withdraw_confirmation"`
	// SupportMemo and SupportToken arrive as "0"/"1".
	SupportMemo  custody.Bool `json:"support_memo"`
	SupportToken custody.Bool `json:"support_token"`
	// AddressRegex and AddressTagRegex validate destination addresses
	// client side before a withdrawal is submitted.
	AddressRegex    string          `json:"address_regex"`
	AddressTagRegex string          `json:"address_tag_regex"`
	MinDeposit      custody.Decimal `json:"min_deposit"`
	// TxIDLink and AddressLink are explorer URL templates.
	TxIDLink    string `json:"txid_link"`
	Explorer    string `json:"explorer"`
	AddressLink string `json:"address_link"`
}

// GetCoinList returns every coin enabled for the merchant.
func (c *Client) GetCoinList(ctx context.Context) ([]CoinInfo, error) {
	var out []CoinInfo
	if err := c.api.Post(ctx, "/user/getCoinList", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
