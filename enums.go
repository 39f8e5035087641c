package custody

// QueryIDType selects which identifier a record query matches against.
type QueryIDType string

const (
	// QueryByRequestID matches the caller-supplied request_id.
	QueryByRequestID QueryIDType = "request_id"
	// QueryByReceipt matches the on-chain receipt.
	QueryByReceipt QueryIDType = "receipt"
	// QueryByWaasID matches the platform-assigned record ID.
	QueryByWaasID QueryIDType = "id"
)

// TransactionSide distinguishes deposit records from withdrawal records.
type TransactionSide string

const (
	SideDeposit  TransactionSide = "deposit"
	SideWithdraw TransactionSide = "withdraw"
)

// CoinType distinguishes main-chain coins from tokens.
type CoinType string

const (
	CoinMain  CoinType = "main"
	CoinToken CoinType = "token"
)

// NetworkType identifies the blockchain network.
type NetworkType string

const (
	NetworkMainnet NetworkType = "mainnet"
	NetworkTestnet NetworkType = "testnet"
)

// Charset values accepted by the platform's charset request field.
const (
	CharsetUTF8   = "UTF-8"
	CharsetASCII  = "ASCII"
	CharsetLatin1 = "ISO-8859-1"
)
