package waas

import (
	"context"
	"strconv"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// WithdrawParams describes a withdrawal from a user account to an
// external address. The same shape is used in both directions: as the
// request body for Withdraw and as the payload of the secondary
// verification callback handled by DecryptVerifyRequest and
// EncryptVerifyResponse.
type WithdrawParams struct {
	// RequestID is the merchant-generated idempotency key.
	RequestID string `json:"request_id"`
	// FromUID is the user whose balance is debited.
	FromUID int64 `json:"from_uid"`
	// ToAddress is the destination address. For memo-based chains the
	// memo is appended after an underscore, for example "rXXXX_123".
	ToAddress string `json:"to_address"`
	Amount    string `json:"amount"`
	Symbol    string `json:"symbol"`
	// CheckSum is issued by the platform inside the secondary
	// verification callback and echoed back in the encrypted reply. It
	// is never part of the withdraw request itself.
	CheckSum string `json:"check_sum,omitempty"`
}

// WithdrawResult is the acknowledgement for a withdrawal request.
type WithdrawResult struct {
	// ID is the platform-assigned withdrawal record ID.
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
}

// WithdrawRecord is one withdrawal as reported by the billing
// endpoints.
type WithdrawRecord struct {
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
	UID       int64  `json:"uid"`
	Email     string `json:"email"`
	Symbol    string `json:"symbol"`
	// BaseSymbol is the main chain the coin settles on.
	BaseSymbol  string          `json:"base_symbol"`
	Amount      custody.Decimal `json:"amount"`
	AddressTo   string          `json:"address_to"`
	AddressFrom string          `json:"address_from"`
	TxID        string          `json:"txid"`
	// TxIDType is "0" for on-chain transactions and "1" for internal
	// transfers settled off chain.
	TxIDType        string `json:"txid_type"`
	Confirmations   int32  `json:"confirmations"`
	ContractAddress string `json:"contract_address"`
	Status          int32  `json:"status"`
	SaaSStatus      int32  `json:"saas_status"`
	CompanyStatus   int32  `json:"company_status"`
	// WithdrawFee is the fee charged to the user.
	WithdrawFee       custody.Decimal `json:"withdraw_fee"`
	WithdrawFeeSymbol string          `json:"withdraw_fee_symbol"`
	// Fee is the platform service fee.
	Fee       custody.Decimal `json:"fee"`
	FeeSymbol string          `json:"fee_symbol"`
	// RealFee is the miner fee actually paid on chain.
	RealFee   custody.Decimal `json:"real_fee"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
}

// DepositRecord is one deposit as reported by the billing endpoints.
type DepositRecord struct {
	ID          int64           `json:"id"`
	UID         int64           `json:"uid"`
	Email       string          `json:"email"`
	Symbol      string          `json:"symbol"`
	BaseSymbol  string          `json:"base_symbol"`
	Amount      custody.Decimal `json:"amount"`
	AddressTo   string          `json:"address_to"`
	AddressFrom string          `json:"address_from"`
	TxID        string          `json:"txid"`
	// TxIDType is "0" for on-chain transactions and "1" for internal
	// transfers settled off chain.
	TxIDType        string `json:"txid_type"`
	Confirmations   int32  `json:"confirmations"`
	ContractAddress string `json:"contract_address"`
	// IsMining is 1 for mining-reward deposits.
	IsMining  int32 `json:"is_mining"`
	Status    int32 `json:"status"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// MinerFeeRecord is the miner fee charged for one withdrawal.
type MinerFeeRecord struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"symbol"`
	Amount    custody.Decimal `json:"amount"`
	FeeSymbol string          `json:"fee_symbol"`
	TxID      string          `json:"txid"`
	Status    int32           `json:"status"`
	CreatedAt int64           `json:"created_at"`
}

// Withdraw submits a withdrawal from a user account. The platform
// dedupes on RequestID, so retrying with the same ID is safe. CheckSum
// is not transmitted; it belongs to the verification callback flow.
func (c *Client) Withdraw(ctx context.Context, params WithdrawParams) (*WithdrawResult, error) {
	args := map[string]any{
		"request_id": params.RequestID,
		"from_uid":   params.FromUID,
		"to_address": params.ToAddress,
		"amount":     params.Amount,
		"symbol":     params.Symbol,
	}
	var out WithdrawResult
	if err := c.api.Post(ctx, "/billing/withdraw", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWithdrawRecords returns withdrawals matching the given merchant
// request IDs.
func (c *Client) GetWithdrawRecords(ctx context.Context, requestIDs []string) ([]WithdrawRecord, error) {
	args := map[string]any{
		"ids": strings.Join(requestIDs, ","),
	}
	var out []WithdrawRecord
	if err := c.api.Post(ctx, "/billing/withdrawList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncWithdrawRecords pages through all withdrawals. maxID is the
// largest record ID already seen; pass 0 to start from the beginning.
func (c *Client) SyncWithdrawRecords(ctx context.Context, maxID int64) ([]WithdrawRecord, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []WithdrawRecord
	if err := c.api.Post(ctx, "/billing/syncWithdrawList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepositRecords returns deposits matching the given platform
// record IDs.
func (c *Client) GetDepositRecords(ctx context.Context, ids []int64) ([]DepositRecord, error) {
	args := map[string]any{
		"ids": joinIDs(ids),
	}
	var out []DepositRecord
	if err := c.api.Post(ctx, "/billing/depositList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncDepositRecords pages through all deposits. maxID is the largest
// record ID already seen; pass 0 to start from the beginning.
func (c *Client) SyncDepositRecords(ctx context.Context, maxID int64) ([]DepositRecord, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []DepositRecord
	if err := c.api.Post(ctx, "/billing/syncDepositList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMinerFeeRecords returns miner fee records matching the given
// platform record IDs.
func (c *Client) GetMinerFeeRecords(ctx context.Context, ids []int64) ([]MinerFeeRecord, error) {
	args := map[string]any{
		"ids": joinIDs(ids),
	}
	var out []MinerFeeRecord
	if err := c.api.Post(ctx, "/billing/minerFeeList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncMinerFeeRecords pages through all miner fee records. maxID is
// the largest record ID already seen; pass 0 to start from the
// beginning.
func (c *Client) SyncMinerFeeRecords(ctx context.Context, maxID int64) ([]MinerFeeRecord, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []MinerFeeRecord
	if err := c.api.Post(ctx, "/billing/syncMinerFeeList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
