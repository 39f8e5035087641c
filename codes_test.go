package custody

import "testing"

func TestAPICode_IsSuccess(t *testing.T) {
	if !CodeSuccess.IsSuccess() {
		t.Error("CodeSuccess.IsSuccess() = false")
	}
	if CodeSystemError.IsSuccess() {
		t.Error("CodeSystemError.IsSuccess() = true")
	}
	if APICode(-1).IsSuccess() {
		t.Error("APICode(-1).IsSuccess() = true")
	}
}

func TestAPICode_Description(t *testing.T) {
	tests := []struct {
		name     string
		code     APICode
		expected string
	}{
		{"success", CodeSuccess, "success"},
		{"sign error", CodeSignError, "signature verification failed"},
		{"self transfer", CodeSelfTransferForbidden, "cannot transfer to self"},
		{"unknown", APICode(999999), "code 999999"},
		{"unparseable marker", APICode(-1), "code -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Description(); got != tt.expected {
				t.Errorf("Description() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestAPICode_DescriptionsAreDistinct(t *testing.T) {
	codes := []APICode{
		CodeSuccess, CodeSystemError, CodeParamInvalid, CodeSignError,
		CodeIPForbidden, CodeMerchantIDInvalid, CodeMerchantExpired,
		CodeUserFrozen, CodeMobileRegistered, CodeWithdrawAddressRisk,
		CodeWithdrawAddressError, CodeUserNotExist, CodeAmountBelowMin,
		CodeAmountExceedMax, CodeDuplicateRequest, CodeMobileInvalid,
		CodeRegisterFailed, CodePrecisionExceeded, CodeCoinNotSupported,
		CodeConfirmFailed, CodeBalanceInsufficient, CodeFeeInsufficient,
		CodeAmountLessThanFee, CodeUserRiskForbidden, CodeSelfTransferForbidden,
	}

	seen := make(map[string]APICode, len(codes))
	for _, c := range codes {
		desc := c.Description()
		if prev, dup := seen[desc]; dup {
			t.Errorf("codes %d and %d share description %q", prev, c, desc)
		}
		seen[desc] = c
	}
}
