package custody

import "fmt"

// APICode is a result code returned by the custody platform. Zero means
// success; anything else is a rejection. The constants below cover the
// codes the platform documents, but responses may carry codes outside
// this list.
type APICode int64

const (
	// CodeSuccess indicates a successful call.
	CodeSuccess APICode = 0

	// System errors.

	// CodeSystemError indicates an internal platform failure.
	CodeSystemError APICode = 100001
	// CodeParamInvalid indicates invalid request parameters.
	CodeParamInvalid APICode = 100004
	// CodeSignError indicates the request signature failed verification.
	CodeSignError APICode = 100005
	// CodeIPForbidden indicates the caller's IP is not allowlisted.
	CodeIPForbidden APICode = 100007
	// CodeMerchantIDInvalid indicates an unknown app_id.
	CodeMerchantIDInvalid APICode = 100015
	// CodeMerchantExpired indicates the merchant registration lapsed.
	CodeMerchantExpired APICode = 100016

	// User errors.

	// CodeUserFrozen indicates the user is frozen and cannot withdraw.
	CodeUserFrozen APICode = 110004
	// CodeMobileRegistered indicates the mobile number is already taken.
	CodeMobileRegistered APICode = 110023
	// CodeWithdrawAddressRisk indicates the destination address was
	// flagged by risk control.
	CodeWithdrawAddressRisk APICode = 110037
	// CodeWithdrawAddressError indicates a malformed destination address.
	CodeWithdrawAddressError APICode = 110055
	// CodeUserNotExist indicates the referenced user does not exist.
	CodeUserNotExist APICode = 110065
	// CodeAmountBelowMin indicates the amount is under the minimum.
	CodeAmountBelowMin APICode = 110078
	// CodeAmountExceedMax indicates the amount is over the maximum.
	CodeAmountExceedMax APICode = 110087
	// CodeDuplicateRequest indicates the request_id was already used.
	CodeDuplicateRequest APICode = 110088
	// CodeMobileInvalid indicates a malformed mobile number.
	CodeMobileInvalid APICode = 110089
	// CodeRegisterFailed indicates user registration failed.
	CodeRegisterFailed APICode = 110101
	// CodePrecisionExceeded indicates more decimal places than the coin
	// supports.
	CodePrecisionExceeded APICode = 110161

	// Coin and transaction errors.

	// CodeCoinNotSupported indicates the symbol is not supported.
	CodeCoinNotSupported APICode = 120202
	// CodeConfirmFailed indicates the withdrawal confirmation failed.
	CodeConfirmFailed APICode = 120206
	// CodeBalanceInsufficient indicates the balance cannot cover the
	// transaction.
	CodeBalanceInsufficient APICode = 120402
	// CodeFeeInsufficient indicates the balance cannot cover the fee.
	CodeFeeInsufficient APICode = 120403
	// CodeAmountLessThanFee indicates the amount does not exceed the fee.
	CodeAmountLessThanFee APICode = 120404

	// Risk control errors.

	// CodeUserRiskForbidden indicates risk control blocked the user.
	CodeUserRiskForbidden APICode = 900006

	// Transfer errors.

	// CodeSelfTransferForbidden indicates a transfer to the same account.
	CodeSelfTransferForbidden APICode = 3040006
)

// IsSuccess reports whether the code means the call succeeded.
func (c APICode) IsSuccess() bool {
	return c == CodeSuccess
}

// Description returns the documented meaning of the code, or a generic
// string for codes this library does not know.
func (c APICode) Description() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeSystemError:
		return "system error"
	case CodeParamInvalid:
		return "invalid request parameters"
	case CodeSignError:
		return "signature verification failed"
	case CodeIPForbidden:
		return "IP address not allowed"
	case CodeMerchantIDInvalid:
		return "invalid merchant ID"
	case CodeMerchantExpired:
		return "merchant information expired"
	case CodeUserFrozen:
		return "user is frozen, withdrawal not allowed"
	case CodeMobileRegistered:
		return "mobile number already registered"
	case CodeWithdrawAddressRisk:
		return "withdrawal address has risk"
	case CodeWithdrawAddressError:
		return "invalid withdrawal address"
	case CodeUserNotExist:
		return "user does not exist"
	case CodeAmountBelowMin:
		return "amount below minimum"
	case CodeAmountExceedMax:
		return "amount exceeds maximum"
	case CodeDuplicateRequest:
		return "duplicate request"
	case CodeMobileInvalid:
		return "invalid mobile number"
	case CodeRegisterFailed:
		return "user registration failed"
	case CodePrecisionExceeded:
		return "precision exceeds maximum supported"
	case CodeCoinNotSupported:
		return "coin not supported"
	case CodeConfirmFailed:
		return "withdrawal confirmation failed"
	case CodeBalanceInsufficient:
		return "insufficient balance"
	case CodeFeeInsufficient:
		return "insufficient balance for fee"
	case CodeAmountLessThanFee:
		return "amount too small to cover fee"
	case CodeUserRiskForbidden:
		return "user blocked by risk control"
	case CodeSelfTransferForbidden:
		return "cannot transfer to self"
	}
	return fmt.Sprintf("code %d", int64(c))
}
