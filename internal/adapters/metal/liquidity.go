package metal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// CreateLiquidity inicializa el pool de liquidez del token.
// True solo si la respuesta trae "success": true explícito — transporte
// caído, body imparseable o flag ausente cuentan todos como false.
func (c *Client) CreateLiquidity(ctx context.Context, tokenAddress string) bool {
	url := c.liquidityBase + fmt.Sprintf(liquidityPathFmt, tokenAddress)

	// POST sin payload: la dirección del token va en el path.
	raw, err := c.do(ctx, http.MethodPost, url, []byte("{}"))
	if err != nil {
		slog.Warn("metal: create liquidity failed", "token", tokenAddress, "err", err)
		return false
	}

	var resp liquidityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		slog.Warn("metal: liquidity response unparseable", "token", tokenAddress, "err", err)
		return false
	}
	if resp.Success == nil {
		slog.Warn("metal: liquidity response without success flag", "token", tokenAddress)
		return false
	}
	return *resp.Success
}
