package waas

import (
	"context"

	custody "github.com/chainup-custody/custody-go"
)

// UserAccountInfo is a user's balance in one coin.
type UserAccountInfo struct {
	UID    custody.Int64 `json:"uid"`
	Symbol string        `json:"symbol"`
	// Balance is the available balance.
	Balance custody.Decimal `json:"balance"`
	// Frozen is the balance locked by in-flight withdrawals.
	Frozen custody.Decimal `json:"frozen"`
	ID     custody.Int64   `json:"id"`
}

// UserAddressInfo is a user's deposit address for one coin.
type UserAddressInfo struct {
	// ID is the address record ID, used as the sync cursor.
	ID      custody.Int64 `json:"id"`
	UID     custody.Int64 `json:"uid"`
	Symbol  string        `json:"symbol"`
	Address string        `json:"address"`
}

// CompanyAccountInfo is the merchant's own balance in one coin.
type CompanyAccountInfo struct {
	Symbol  string          `json:"symbol"`
	Balance custody.Decimal `json:"balance"`
	Frozen  custody.Decimal `json:"frozen"`
}

// GetUserAccount returns a user's balance for one coin.
func (c *Client) GetUserAccount(ctx context.Context, uid int64, symbol string) (*UserAccountInfo, error) {
	args := map[string]any{
		"uid":    uid,
		"symbol": symbol,
	}
	var out UserAccountInfo
	if err := c.api.Post(ctx, "/account/getByUidAndSymbol", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserAddress returns a user's deposit address for one coin,
// creating it on the platform side if the user has none yet.
func (c *Client) GetUserAddress(ctx context.Context, uid int64, symbol string) (*UserAddressInfo, error) {
	args := map[string]any{
		"uid":    uid,
		"symbol": symbol,
	}
	var out UserAddressInfo
	if err := c.api.Post(ctx, "/account/getDepositAddress", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserAddressInfo looks up which user and coin a deposit address
// belongs to.
func (c *Client) GetUserAddressInfo(ctx context.Context, address string) (*UserAddressInfo, error) {
	args := map[string]any{
		"address": address,
	}
	var out UserAddressInfo
	if err := c.api.Post(ctx, "/account/getDepositAddressInfo", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCompanyAccount returns the merchant's own balance for one coin.
func (c *Client) GetCompanyAccount(ctx context.Context, symbol string) (*CompanyAccountInfo, error) {
	args := map[string]any{
		"symbol": symbol,
	}
	var out CompanyAccountInfo
	if err := c.api.Post(ctx, "/account/getCompanyBySymbol", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncUserAddresses pages through allocated deposit addresses. maxID
// is the largest address record ID already seen; pass 0 to start from
// the beginning.
func (c *Client) SyncUserAddresses(ctx context.Context, maxID int64) ([]UserAddressInfo, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []UserAddressInfo
	if err := c.api.Post(ctx, "/address/syncList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}
