package domain

import (
	"fmt"
	"strings"
)

// NormalizeAddress lowercases a 0x-prefixed hex address. EVM addresses
// compare case-insensitively, so all addresses are stored lowercased.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// IsValidAddress reports whether s is a 0x-prefixed 20-byte hex string.
func IsValidAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ParseAddressList turns free-text input (whitespace or comma
// separated) into a normalized address list. Malformed entries are
// rejected with an error naming the offending token.
func ParseAddressList(text string) ([]string, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	addrs := make([]string, 0, len(fields))
	for _, f := range fields {
		if !IsValidAddress(f) {
			return nil, fmt.Errorf("invalid address %q", f)
		}
		addrs = append(addrs, NormalizeAddress(f))
	}
	return addrs, nil
}
