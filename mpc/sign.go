package mpc

import (
	"strconv"

	custody "github.com/chainup-custody/custody-go"
)

// WithdrawSignParams are the fields covered by the withdrawal
// co-signing signature.
type WithdrawSignParams struct {
	RequestID   string
	SubWalletID int64
	Symbol      string
	AddressTo   string
	Amount      string
	Memo        string
	Outputs     string
}

// SignString returns the canonical string a withdrawal signature is
// computed over. Empty fields are excluded.
func (p WithdrawSignParams) SignString() string {
	return custody.SignString(map[string]string{
		"request_id":    p.RequestID,
		"sub_wallet_id": strconv.FormatInt(p.SubWalletID, 10),
		"symbol":        p.Symbol,
		"address_to":    p.AddressTo,
		"amount":        p.Amount,
		"memo":          p.Memo,
		"outputs":       p.Outputs,
	})
}

// Web3SignParams are the fields covered by the Web3 transaction
// co-signing signature.
type Web3SignParams struct {
	RequestID           string
	SubWalletID         int64
	MainChainSymbol     string
	InteractiveContract string
	Amount              string
	InputData           string
}

// SignString returns the canonical string a Web3 signature is computed
// over. Empty fields are excluded.
func (p Web3SignParams) SignString() string {
	return custody.SignString(map[string]string{
		"request_id":           p.RequestID,
		"sub_wallet_id":        strconv.FormatInt(p.SubWalletID, 10),
		"main_chain_symbol":    p.MainChainSymbol,
		"interactive_contract": p.InteractiveContract,
		"amount":               p.Amount,
		"input_data":           p.InputData,
	})
}
