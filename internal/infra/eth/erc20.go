// Package eth provides a minimal ERC-20 read client over JSON-RPC.
package eth

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/tdngo/holdscan/internal/infra/rpc/provider"
)

// Client issues ERC-20 read calls through one RPC provider.
type Client struct {
	provider provider.Provider
}

// NewClient creates an ERC-20 client backed by the given provider.
func NewClient(p provider.Provider) *Client {
	return &Client{provider: p}
}

// Endpoint returns the name of the underlying RPC endpoint.
func (c *Client) Endpoint() string {
	return c.provider.GetName()
}

// Close releases the underlying provider's resources.
func (c *Client) Close() error {
	return c.provider.Close()
}

func (c *Client) call(ctx context.Context, token, data string) (string, error) {
	result, err := c.provider.Call(ctx, "eth_call", []any{
		map[string]any{"to": token, "data": data},
		"latest",
	})
	if err != nil {
		return "", err
	}
	out, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("eth_call: unexpected result type %T", result)
	}
	return out, nil
}

// BalanceOf returns the exact integer balance of holder for token.
func (c *Client) BalanceOf(ctx context.Context, token, holder string) (*big.Int, error) {
	out, err := c.call(ctx, token, encodeAddressArg(selBalanceOf, holder))
	if err != nil {
		return nil, fmt.Errorf("balanceOf(%s): %w", holder, err)
	}
	bal, err := parseUint256(out)
	if err != nil {
		return nil, fmt.Errorf("balanceOf(%s): %w", holder, err)
	}
	return bal, nil
}

// Symbol returns the token's display ticker. Both the string and the
// legacy bytes32 encodings are accepted.
func (c *Client) Symbol(ctx context.Context, token string) (string, error) {
	out, err := c.call(ctx, token, selSymbol)
	if err != nil {
		return "", fmt.Errorf("symbol(): %w", err)
	}
	if s, err := parseStringOutput(out); err == nil && s != "" {
		return strings.TrimSpace(s), nil
	}
	s, err := parseBytes32String(out)
	if err != nil {
		return "", fmt.Errorf("symbol(): %w", err)
	}
	return s, nil
}

// Decimals returns the token's declared decimal precision.
func (c *Client) Decimals(ctx context.Context, token string) (uint8, error) {
	out, err := c.call(ctx, token, selDecimals)
	if err != nil {
		return 0, fmt.Errorf("decimals(): %w", err)
	}
	d, err := parseUint8(out)
	if err != nil {
		return 0, fmt.Errorf("decimals(): %w", err)
	}
	return d, nil
}
