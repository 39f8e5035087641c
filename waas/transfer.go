package waas

import (
	"context"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// TransferParams describes an internal transfer between two custodial
// accounts. Internal transfers settle instantly and pay no chain fee.
type TransferParams struct {
	// RequestID is the merchant-generated idempotency key.
	RequestID string
	Symbol    string
	Amount    string
	// From and To are user IDs in string form. The merchant account is
	// addressed by its dedicated ID.
	From string
	To   string
	// Remark is free-form text attached to the transfer. Optional.
	Remark string
}

// TransferRecord is one internal transfer.
type TransferRecord struct {
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
	// Receipt is the platform-assigned transfer receipt number.
	Receipt   string          `json:"receipt"`
	Symbol    string          `json:"symbol"`
	Amount    custody.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Status    int32           `json:"status"`
	Remark    string          `json:"remark"`
	CreatedAt int64           `json:"created_at"`
}

// AccountTransfer moves funds between two custodial accounts. The
// platform dedupes on RequestID, so retrying with the same ID is safe.
func (c *Client) AccountTransfer(ctx context.Context, params TransferParams) (*TransferRecord, error) {
	args := map[string]any{
		"request_id": params.RequestID,
		"symbol":     params.Symbol,
		"amount":     params.Amount,
		"from":       params.From,
		"to":         params.To,
	}
	if params.Remark != "" {
		args["remark"] = params.Remark
	}
	var out TransferRecord
	if err := c.api.Post(ctx, "/account/transfer", args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransferRecords returns transfers matching the given IDs. idsType
// selects whether ids are merchant request IDs or platform receipts.
func (c *Client) GetTransferRecords(ctx context.Context, ids []string, idsType custody.QueryIDType) ([]TransferRecord, error) {
	args := map[string]any{
		"ids":      strings.Join(ids, ","),
		"ids_type": string(idsType),
	}
	var out []TransferRecord
	if err := c.api.Post(ctx, "/account/transferList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncTransferRecords pages through all internal transfers. maxID is
// the largest record ID already seen; pass 0 to start from the
// beginning.
func (c *Client) SyncTransferRecords(ctx context.Context, maxID int64) ([]TransferRecord, error) {
	args := map[string]any{
		"max_id": maxID,
	}
	var out []TransferRecord
	if err := c.api.Post(ctx, "/account/syncTransferList", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}
