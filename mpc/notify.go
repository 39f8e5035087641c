package mpc

import (
	"encoding/json"
	"fmt"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// Notification is a decrypted MPC webhook payload. Deposit, withdrawal,
// Web3 and TRON delegate events share this shape; fields that do not
// apply to an event are left at their zero values.
type Notification struct {
	ID custody.Int64 `json:"id"`
	// Side is "deposit" or "withdraw".
	Side                custody.TransactionSide `json:"side"`
	NotifyType          string                  `json:"notify_type"`
	RequestID           string                  `json:"request_id"`
	SubWalletID         custody.Int64           `json:"sub_wallet_id"`
	AppID               string                  `json:"app_id"`
	MainChainSymbol     string                  `json:"main_chain_symbol"`
	BaseSymbol          string                  `json:"base_symbol"`
	Symbol              string                  `json:"symbol"`
	ContractAddress     string                  `json:"contract_address"`
	Amount              custody.Decimal         `json:"amount"`
	Fee                 custody.Decimal         `json:"fee"`
	RealFee             custody.Decimal         `json:"real_fee"`
	FeeSymbol           string                  `json:"fee_symbol"`
	RefundAmount        custody.Decimal         `json:"refund_amount"`
	DelegateFee         custody.Decimal         `json:"delegate_fee"`
	TxID                string                  `json:"txid"`
	TxHeight            custody.Int64           `json:"tx_height"`
	BlockHeight         custody.Int64           `json:"block_height"`
	BlockTime           custody.Int64           `json:"block_time"`
	Confirmations       custody.Int32           `json:"confirmations"`
	From                string                  `json:"from"`
	To                  string                  `json:"to"`
	Memo                string                  `json:"memo"`
	Status              custody.Int32           `json:"status"`
	AddressFrom         string                  `json:"address_from"`
	AddressTo           string                  `json:"address_to"`
	Confirm             custody.Int32           `json:"confirm"`
	SafeConfirm         custody.Int32           `json:"safe_confirm"`
	IsMining            custody.Int32           `json:"is_mining"`
	TransType           custody.Int32           `json:"trans_type"`
	WithdrawSource      string                  `json:"withdraw_source"`
	KYTStatus           custody.Bool            `json:"kyt_status"`
	InteractiveContract string                  `json:"interactive_contract"`
	InputData           string                  `json:"input_data"`
	DappImg             string                  `json:"dapp_img"`
	DappName            string                  `json:"dapp_name"`
	DappURL             string                  `json:"dapp_url"`
	Charset             string                  `json:"charset"`
	Sign                string                  `json:"sign"`
	NotifyTime          string                  `json:"notify_time"`
	CreatedAt           string                  `json:"created_at"`
	UpdatedAt           string                  `json:"updated_at"`
	// Raw is the full decrypted JSON, for fields not modelled here.
	Raw json.RawMessage `json:"-"`
}

// DecryptNotification decrypts the body of an MPC webhook callback
// with the platform public key.
func (c *Client) DecryptNotification(encrypted string) (*Notification, error) {
	if strings.TrimSpace(encrypted) == "" {
		return nil, custody.ErrEmptyNotification
	}

	plain, err := c.crypto.DecryptWithPublicKey(encrypted)
	if err != nil {
		return nil, err
	}

	var note Notification
	if err := json.Unmarshal([]byte(plain), &note); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	note.Raw = json.RawMessage(plain)
	return &note, nil
}
