package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxNonce is used for prefixing login nonces
	PfxNonce = "nonce"
	// PfxSession is used for prefixing explore sessions
	PfxSession = "session"
	// PfxListing is used for prefixing cached contract reads
	PfxListing = "listing"
	// PfxMetadata is used for prefixing fetched token metadata
	PfxMetadata = "metadata"
	// PfxBidModal is used for prefixing bid modal state
	PfxBidModal = "bidModal"
	// PfxPending is used for prefixing in-flight owner transactions
	PfxPending = "pending"
	// PfxEns is used for prefixing ens reverse lookups
	PfxEns = "ens"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
