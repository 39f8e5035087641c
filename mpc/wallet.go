package mpc

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// WalletInfo describes a sub-wallet.
type WalletInfo struct {
	SubWalletID   int64  `json:"sub_wallet_id"`
	SubWalletName string `json:"sub_wallet_name"`
	AppShowStatus int32  `json:"app_show_status"`
	CreatedAt     string `json:"created_at"`
}

// WalletAddress is a deposit address belonging to a sub-wallet.
type WalletAddress struct {
	ID int64 `json:"id"`
	// AddrType is 1 for a deposit address, 2 for the main address.
	AddrType int32  `json:"addr_type"`
	Address  string `json:"address"`
	Memo     string `json:"memo"`
}

// WalletAssets holds the balances of one coin in a sub-wallet.
type WalletAssets struct {
	NormalBalance     custody.Decimal `json:"normal_balance"`
	CollectingBalance custody.Decimal `json:"collecting_balance"`
	LockBalance       custody.Decimal `json:"lock_balance"`
}

// WalletAddressOwner reports which sub-wallet an address belongs to.
type WalletAddressOwner struct {
	AddrType           int32  `json:"addr_type"`
	SubWalletID        int64  `json:"sub_wallet_id"`
	MergeAddressSymbol string `json:"merge_address_symbol"`
}

// CreateWalletParams configures CreateWallet.
type CreateWalletParams struct {
	// SubWalletName is the wallet display name. Required, at most 50
	// characters.
	SubWalletName string
	// AppShowStatus controls app visibility of the new wallet.
	// Optional; zero keeps the platform default.
	AppShowStatus WalletShowStatus
}

// CreateWallet creates a sub-wallet in the workspace.
func (c *Client) CreateWallet(ctx context.Context, params CreateWalletParams) (*WalletInfo, error) {
	if params.SubWalletName == "" {
		return nil, &custody.ValidationError{Message: "sub_wallet_name is required"}
	}
	if len(params.SubWalletName) > 50 {
		return nil, &custody.ValidationError{Message: "sub_wallet_name cannot be longer than 50 characters"}
	}

	args := map[string]any{"sub_wallet_name": params.SubWalletName}
	if params.AppShowStatus != 0 {
		args["app_show_status"] = int32(params.AppShowStatus)
	}

	var info WalletInfo
	if err := c.api.Post(ctx, "/api/mpc/sub_wallet/create", args, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateWalletAddress derives a new deposit address for the given coin
// in a sub-wallet.
func (c *Client) CreateWalletAddress(ctx context.Context, subWalletID int64, symbol string) (*WalletAddress, error) {
	if symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}

	args := map[string]any{
		"sub_wallet_id": subWalletID,
		"symbol":        symbol,
	}

	var addr WalletAddress
	if err := c.api.Post(ctx, "/api/mpc/sub_wallet/create/address", args, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// QueryWalletAddressesParams configures QueryWalletAddresses.
type QueryWalletAddressesParams struct {
	SubWalletID int64
	// Symbol is the coin to list addresses for. Required.
	Symbol string
	// MaxID returns only addresses with an ID above it. Optional; zero
	// starts from the beginning.
	MaxID int64
}

// QueryWalletAddresses lists the deposit addresses of a sub-wallet.
func (c *Client) QueryWalletAddresses(ctx context.Context, params QueryWalletAddressesParams) ([]WalletAddress, error) {
	if params.Symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}

	args := map[string]any{
		"sub_wallet_id": params.SubWalletID,
		"symbol":        params.Symbol,
	}
	if params.MaxID > 0 {
		args["max_id"] = params.MaxID
	}

	var list []WalletAddress
	if err := c.api.Post(ctx, "/api/mpc/sub_wallet/get/address/list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetWalletAssets returns the balances of one coin in a sub-wallet.
func (c *Client) GetWalletAssets(ctx context.Context, subWalletID int64, symbol string) (*WalletAssets, error) {
	if symbol == "" {
		return nil, &custody.ValidationError{Message: "symbol is required"}
	}

	args := map[string]any{
		"sub_wallet_id": subWalletID,
		"symbol":        symbol,
	}

	var assets WalletAssets
	if err := c.api.Get(ctx, "/api/mpc/sub_wallet/assets", args, &assets); err != nil {
		return nil, err
	}
	return &assets, nil
}

// ChangeWalletShowStatus toggles app visibility for the given
// sub-wallets. It reports whether the platform accepted the change.
func (c *Client) ChangeWalletShowStatus(ctx context.Context, subWalletIDs []int64, status WalletShowStatus) (bool, error) {
	if len(subWalletIDs) == 0 {
		return false, &custody.ValidationError{Message: "sub_wallet_ids is required"}
	}
	if status != WalletVisible && status != WalletHidden {
		return false, &custody.ValidationError{Message: "app_show_status must be 1 or 2"}
	}

	args := map[string]any{
		"sub_wallet_ids":  joinIDs(subWalletIDs),
		"app_show_status": int32(status),
	}

	// The endpoint answers {"code":"0","msg":"success"} with a string
	// code and no data field, so the envelope is inspected directly.
	env, err := c.api.Execute(ctx, http.MethodPost, "/api/mpc/sub_wallet/change_show_status", args)
	if err != nil {
		return false, err
	}
	code, ok := env.CodeString()
	return ok && code == "0", nil
}

// GetWalletAddressInfo looks up whether an address belongs to the
// workspace. memo may be empty for chains without address memos.
func (c *Client) GetWalletAddressInfo(ctx context.Context, address, memo string) (*WalletAddressOwner, error) {
	if address == "" {
		return nil, &custody.ValidationError{Message: "address is required"}
	}

	args := map[string]any{"address": address}
	if memo != "" {
		args["memo"] = memo
	}

	var owner WalletAddressOwner
	if err := c.api.Get(ctx, "/api/mpc/sub_wallet/address/info", args, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// joinIDs renders ids as the comma-separated decimal form the API
// expects for list parameters.
func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
