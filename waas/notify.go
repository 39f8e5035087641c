package waas

import (
	"encoding/json"
	"fmt"
	"strings"

	custody "github.com/chainup-custody/custody-go"
)

// Notification is a decrypted deposit or withdrawal webhook payload.
// Withdrawal-only fields are left at their zero values on deposits.
type Notification struct {
	// Side is "deposit" or "withdraw".
	Side              custody.TransactionSide `json:"side"`
	ID                custody.Int64           `json:"id"`
	UID               custody.Int64           `json:"uid"`
	Email             string                  `json:"email"`
	Symbol            string                  `json:"symbol"`
	BaseSymbol        string                  `json:"base_symbol"`
	Amount            custody.Decimal         `json:"amount"`
	AddressTo         string                  `json:"address_to"`
	AddressFrom       string                  `json:"address_from"`
	TxID              string                  `json:"txid"`
	TxIDType          string                  `json:"txid_type"`
	Confirmations     custody.Int32           `json:"confirmations"`
	ContractAddress   string                  `json:"contract_address"`
	Status            custody.Int32           `json:"status"`
	SaaSStatus        custody.Int32           `json:"saas_status"`
	CompanyStatus     custody.Int32           `json:"company_status"`
	RequestID         string                  `json:"request_id"`
	WithdrawFee       custody.Decimal         `json:"withdraw_fee"`
	WithdrawFeeSymbol string                  `json:"withdraw_fee_symbol"`
	Fee               custody.Decimal         `json:"fee"`
	FeeSymbol         string                  `json:"fee_symbol"`
	RealFee           custody.Decimal         `json:"real_fee"`
	IsMining          custody.Int32           `json:"is_mining"`
	CreatedAt         custody.Int64           `json:"created_at"`
	UpdatedAt         custody.Int64           `json:"updated_at"`
	// Raw is the full decrypted JSON, for fields not modelled here.
	Raw json.RawMessage `json:"-"`
}

// DecryptNotification decrypts the body of a deposit or withdrawal
// webhook callback with the platform public key.
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

// DecryptVerifyRequest decrypts a withdrawal secondary verification
// callback into the withdrawal parameters awaiting confirmation,
// CheckSum included.
func (c *Client) DecryptVerifyRequest(encrypted string) (*WithdrawParams, error) {
	if strings.TrimSpace(encrypted) == "" {
		return nil, custody.ErrEmptyNotification
	}

	plain, err := c.crypto.DecryptWithPublicKey(encrypted)
	if err != nil {
		return nil, err
	}

	var params WithdrawParams
	if err := json.Unmarshal([]byte(plain), &params); err != nil {
		return nil, fmt.Errorf("decode verify request: %w", err)
	}
	return &params, nil
}

// EncryptVerifyResponse encrypts withdrawal parameters with the
// merchant private key, producing the reply body for a secondary
// verification callback. Confirming a withdrawal echoes the decrypted
// request back unchanged, CheckSum included.
func (c *Client) EncryptVerifyResponse(params WithdrawParams) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode verify response: %w", err)
	}
	return c.crypto.EncryptWithPrivateKey(string(raw))
}
