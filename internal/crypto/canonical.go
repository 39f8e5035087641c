package crypto

import (
	"sort"
	"strings"
)

// SignString flattens request fields into the canonical string covered by
// a transaction signature: fields with empty values drop out, keys sort
// in ASCII ascending order, pairs join as k=v with '&', and the whole
// result is lowercased.
func SignString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	return strings.ToLower(strings.Join(pairs, "&"))
}
