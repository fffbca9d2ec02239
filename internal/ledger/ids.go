package ledger

import "fmt"

// ID prefixes for the two entity namespaces.
const (
	accountIDPrefix = "ACC"
	cardIDPrefix    = "CRD"
)

// allocateID returns the lowest-numbered unused identifier of the form
// <prefix><4-digit zero-padded counter>, probing from 1. Numbers freed by
// deletions are reused; past 9999 the numeral simply widens.
func allocateID[V any](prefix string, existing map[string]V) string {
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s%04d", prefix, i)
		if _, ok := existing[candidate]; !ok {
			return candidate
		}
	}
}
