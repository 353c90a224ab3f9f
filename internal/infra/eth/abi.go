package eth

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ERC-20 function selectors (first 4 bytes of the keccak256 signature hash).
const (
	selBalanceOf = "0x70a08231"
	selSymbol    = "0x95d89b41"
	selDecimals  = "0x313ce567"
)

// encodeAddressArg appends a left-padded 32-byte address argument to a
// selector, producing eth_call data.
func encodeAddressArg(selector, addr string) string {
	clean := strings.TrimPrefix(strings.ToLower(addr), "0x")
	return selector + strings.Repeat("0", 64-len(clean)) + clean
}

func decodeHex(hexData string) ([]byte, error) {
	if !strings.HasPrefix(hexData, "0x") {
		return nil, fmt.Errorf("missing 0x prefix")
	}
	data, err := hex.DecodeString(hexData[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

// parseUint256 decodes a single ABI-encoded uint256 return value.
func parseUint256(hexData string) (*big.Int, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return nil, err
	}
	if len(data) < 32 {
		return nil, fmt.Errorf("short uint256 data (%d bytes)", len(data))
	}
	return new(big.Int).SetBytes(data[len(data)-32:]), nil
}

// parseUint8 decodes the low byte of an ABI-encoded uint256.
func parseUint8(hexData string) (uint8, error) {
	n, err := parseUint256(hexData)
	if err != nil {
		return 0, err
	}
	return uint8(n.Uint64() & 0xff), nil
}

// parseStringOutput decodes an ABI-encoded dynamic string return value
// (32-byte offset, 32-byte length, then the bytes).
func parseStringOutput(hexData string) (string, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return "", err
	}
	if len(data) < 64 {
		return "", fmt.Errorf("short string data (%d bytes)", len(data))
	}
	length := new(big.Int).SetBytes(data[32:64]).Int64()
	if length < 0 || int64(len(data)) < 64+length {
		return "", fmt.Errorf("truncated string data")
	}
	return string(data[64 : 64+length]), nil
}

// parseBytes32String decodes a fixed bytes32 return value, used by
// older tokens that return symbol() as bytes32 instead of string.
func parseBytes32String(hexData string) (string, error) {
	data, err := decodeHex(hexData)
	if err != nil {
		return "", err
	}
	if len(data) < 32 {
		return "", fmt.Errorf("short bytes32 data (%d bytes)", len(data))
	}
	s := strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, string(data[len(data)-32:]))
	return strings.TrimSpace(s), nil
}
