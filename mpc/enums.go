package mpc

// DepositStatus is the MPC deposit record status.
type DepositStatus int32

const (
	// DepositConfirming means the transaction is awaiting confirmations.
	DepositConfirming DepositStatus = 1900
	// DepositSuccess means the deposit is credited.
	DepositSuccess DepositStatus = 2000
	// DepositFailed means the deposit failed.
	DepositFailed DepositStatus = 2400
)

// WithdrawStatus is the MPC withdrawal record status.
type WithdrawStatus int32

const (
	// WithdrawPendingAudit means the withdrawal awaits audit.
	WithdrawPendingAudit WithdrawStatus = 1000
	// WithdrawAuditPassed means the audit passed.
	WithdrawAuditPassed WithdrawStatus = 1100
	// WithdrawProcessing means the transaction is being broadcast.
	WithdrawProcessing WithdrawStatus = 1200
	// WithdrawSuccess means the withdrawal completed.
	WithdrawSuccess WithdrawStatus = 2000
	// WithdrawCancelled means the withdrawal was cancelled.
	WithdrawCancelled WithdrawStatus = 2200
	// WithdrawAuditRejected means the audit rejected the withdrawal.
	WithdrawAuditRejected WithdrawStatus = 2300
	// WithdrawFailed means the withdrawal failed on chain.
	WithdrawFailed WithdrawStatus = 2400
)

// Web3TransType is the Web3 transaction type.
type Web3TransType int32

const (
	// Web3Approve is a contract authorization.
	Web3Approve Web3TransType = 0
	// Web3Transaction is a regular contract transaction.
	Web3Transaction Web3TransType = 1
	// Web3TronPermissionApprove is a TRON permission approval.
	Web3TronPermissionApprove Web3TransType = 22
	// Web3TronApprovedTransfer is a TRON approved transfer.
	Web3TronApprovedTransfer Web3TransType = 23
)

// TronResourceType selects the TRON resource to delegate.
type TronResourceType int32

const (
	// TronResourceBandwidthAndEnergy delegates both bandwidth and energy.
	TronResourceBandwidthAndEnergy TronResourceType = 0
	// TronResourceEnergy delegates energy only.
	TronResourceEnergy TronResourceType = 1
)

// TronServiceType is the TRON resource rental duration.
type TronServiceType string

const (
	// TronServiceTenMinutes rents the resource for 10 minutes.
	TronServiceTenMinutes TronServiceType = "10010"
	// TronServiceOneHour rents the resource for 1 hour.
	TronServiceOneHour TronServiceType = "20001"
	// TronServiceOneDay rents the resource for 1 day.
	TronServiceOneDay TronServiceType = "30001"
)

// TronBuyType selects how the delegated amount is determined.
type TronBuyType int32

const (
	// TronBuySystem lets the platform estimate the amount.
	TronBuySystem TronBuyType = 0
	// TronBuyManual uses the caller-specified amount.
	TronBuyManual TronBuyType = 1
)

// WalletShowStatus is the app visibility of a sub-wallet.
type WalletShowStatus int32

const (
	// WalletVisible shows the wallet in the app.
	WalletVisible WalletShowStatus = 1
	// WalletHidden hides the wallet in the app.
	WalletHidden WalletShowStatus = 2
)

// AutoCollectStatus reports whether auto-sweep is enabled for a coin.
type AutoCollectStatus int32

const (
	// AutoCollectDisabled means auto-sweep is off.
	AutoCollectDisabled AutoCollectStatus = 0
	// AutoCollectEnabled means auto-sweep is on.
	AutoCollectEnabled AutoCollectStatus = 1
)
