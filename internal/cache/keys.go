package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type KeyGenerator struct {
	Prefix string
}

// NewKeyGenerator creates a new key generator with the given prefix
func NewKeyGenerator(prefix string) *KeyGenerator {
	if prefix == "" {
		prefix = "site"
	}
	return &KeyGenerator{Prefix: prefix}
}

// PageKey is the manifest entry for an exported page
func (kg *KeyGenerator) PageKey(page string) string {
	return fmt.Sprintf("%s:page:%s", kg.Prefix, page)
}

// PageFromKey recovers the page path from a PageKey
func (kg *KeyGenerator) PageFromKey(key string) (string, bool) {
	prefix := fmt.Sprintf("%s:page:", kg.Prefix)
	if !strings.HasPrefix(key, prefix) {
		return "", false
	}
	return strings.TrimPrefix(key, prefix), true
}

func (kg *KeyGenerator) PagePattern() string {
	return fmt.Sprintf("%s:page:*", kg.Prefix)
}

// ContentHash returns the hex SHA-256 of data
func (kg *KeyGenerator) ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
