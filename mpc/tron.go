package mpc

import (
	"context"
	"encoding/json"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// CreateTronDelegateParams configures CreateTronDelegate.
//
// BuyType, ResourceType, EnergyNum and NetNum are pointers because
// zero is a meaningful value for each; nil leaves the choice to the
// platform.
type CreateTronDelegateParams struct {
	// RequestID uniquely identifies the purchase. Required.
	RequestID string
	// AddressFrom pays for the resources. Required.
	AddressFrom string
	// ServiceChargeType is the rental duration. Required.
	ServiceChargeType TronServiceType
	BuyType           *TronBuyType
	ResourceType      *TronResourceType
	// EnergyNum is the amount of energy to buy.
	EnergyNum *int64
	// NetNum is the amount of bandwidth to buy.
	NetNum *int64
	// AddressTo receives the resources. Required for system buy types.
	AddressTo string
	// ContractAddress is the token contract the receiver will call.
	// Required for system buy types.
	ContractAddress string
}

// TronDelegateResult is the acknowledgement for a resource purchase.
type TronDelegateResult struct {
	TransID   string `json:"trans_id"`
	RequestID string `json:"request_id"`
	// Extra holds any additional fields the endpoint returns.
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps unrecognized fields in Extra.
func (r *TronDelegateResult) UnmarshalJSON(data []byte) error {
	type plain TronDelegateResult
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var extra map[string]json.RawMessage
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	delete(extra, "trans_id")
	delete(extra, "request_id")
	if len(extra) == 0 {
		extra = nil
	}
	p.Extra = extra
	*r = TronDelegateResult(p)
	return nil
}

// TronResourceRecord is a resource purchase ledger entry.
type TronResourceRecord struct {
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
	// BuyType is 0 for a system estimate, 1 for a customer-specified
	// quantity.
	BuyType int32 `json:"buy_type"`
	// ResourceType is 0 for energy and bandwidth, 1 for energy only.
	ResourceType      int32  `json:"resource_type"`
	ServiceChargeRate string `json:"service_charge_rate"`
	ServiceCharge     string `json:"service_charge"`
	EnergyNum         int64  `json:"energy_num"`
	NetNum            int64  `json:"net_num"`
	AddressFrom       string `json:"address_from"`
	AddressTo         string `json:"address_to"`
	ContractAddress   string `json:"contract_address"`
	EnergyTxID        string `json:"energy_txid"`
	NetTxID           string `json:"net_txid"`
	ReclaimEnergyTxID string `json:"reclaim_energy_txid"`
	ReclaimNetTxID    string `json:"reclaim_net_txid"`
	EnergyTime        int64  `json:"energy_time"`
	NetTime           int64  `json:"net_time"`
	ReclaimEnergyTime int64  `json:"reclaim_energy_time"`
	ReclaimNetTime    int64  `json:"reclaim_net_time"`
	EnergyPrice       string `json:"energy_price"`
	NetPrice          string `json:"net_price"`
	Status            int32  `json:"status"`
}

// CreateTronDelegate buys TRON energy or bandwidth for an address.
func (c *Client) CreateTronDelegate(ctx context.Context, params CreateTronDelegateParams) (*TronDelegateResult, error) {
	if params.RequestID == "" {
		return nil, &custody.ValidationError{Message: "request_id is required"}
	}
	if params.AddressFrom == "" {
		return nil, &custody.ValidationError{Message: "address_from is required"}
	}
	if params.ServiceChargeType == "" {
		return nil, &custody.ValidationError{Message: "service_charge_type is required"}
	}
	if params.BuyType != nil && (*params.BuyType == 0 || *params.BuyType == 2) {
		if params.AddressTo == "" || params.ContractAddress == "" {
			return nil, &custody.ValidationError{Message: "address_to and contract_address are required for buy_type 0 or 2"}
		}
	}

	args := map[string]any{
		"request_id":          params.RequestID,
		"service_charge_type": string(params.ServiceChargeType),
		"address_from":        params.AddressFrom,
	}
	if params.BuyType != nil {
		args["buy_type"] = int32(*params.BuyType)
	}
	if params.ResourceType != nil {
		args["resource_type"] = int32(*params.ResourceType)
	}
	if params.EnergyNum != nil {
		args["energy_num"] = *params.EnergyNum
	}
	if params.NetNum != nil {
		args["net_num"] = *params.NetNum
	}
	if params.AddressTo != "" {
		args["address_to"] = params.AddressTo
	}
	if params.ContractAddress != "" {
		args["contract_address"] = params.ContractAddress
	}

	var result TronDelegateResult
	if err := c.api.Post(ctx, "/api/mpc/tron/delegate", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTronResourceRecords fetches resource purchase records by request
// ID, up to 100 per call.
func (c *Client) GetTronResourceRecords(ctx context.Context, requestIDs []string) ([]TronResourceRecord, error) {
	if len(requestIDs) == 0 {
		return nil, &custody.ValidationError{Message: "request_ids is required and must be non-empty"}
	}

	args := map[string]any{"ids": strings.Join(requestIDs, ",")}

	var list []TronResourceRecord
	if err := c.api.Post(ctx, "/api/mpc/tron/delegate/trans_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SyncTronResourceRecords pages through resource purchase records in
// id order, returning up to 100 records with an ID above maxID.
func (c *Client) SyncTronResourceRecords(ctx context.Context, maxID int64) ([]TronResourceRecord, error) {
	args := map[string]any{"max_id": maxID}

	var list []TronResourceRecord
	if err := c.api.Post(ctx, "/api/mpc/tron/delegate/sync_trans_list", args, &list); err != nil {
		return nil, err
	}
	return list, nil
}
