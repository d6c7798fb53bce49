package redis

import "strings"

const (
	keyPrefix = "wakefieldbank:"

	// rosterKey is the set of every known username. It stands in for
	// the CSV store's "read the whole file" view of the record set.
	rosterKey = keyPrefix + "accounts"
)

func accountKey(username string) string {
	return keyPrefix + "account:" + strings.TrimSpace(username)
}
