package custody

import (
	"strings"

	"github.com/google/uuid"

	"github.com/chainup-custody/custody-go/internal/crypto"
)

// SignString builds the canonical string that transaction signatures
// cover: empty values are dropped, keys are sorted ASCII-ascending,
// pairs are joined k=v with "&", and the whole result is lowercased.
//
// The mpc package builds these strings itself for withdrawals and Web3
// transactions; SignString is exported for callers who verify or
// reproduce signatures out of band.
func SignString(fields map[string]string) string {
	return crypto.SignString(fields)
}

// NewRequestID returns a fresh identifier for the request_id field of
// transactional calls: a random UUID with the hyphens removed.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
