package metal

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// ListMerchantTokens devuelve los tokens cuyo merchantAddress coincide con
// el dado, en el orden de la respuesta. El filtro es client-side: el
// endpoint devuelve todos los tokens del API key.
// Slice vacío ante fallo de transporte, respuesta malformada o no-array —
// el caller no distingue los tres casos, el log sí.
func (c *Client) ListMerchantTokens(ctx context.Context, merchantAddress string) []domain.TokenRecord {
	raw, err := c.do(ctx, http.MethodGet, c.base+allTokensPath, nil)
	if err != nil {
		slog.Warn("metal: list merchant tokens failed", "err", err)
		return nil
	}

	var entries []tokenEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Warn("metal: token list is not a valid array", "err", err)
		return nil
	}

	return mapTokenEntries(entries, merchantAddress)
}

// CreateToken somete la creación de un token y devuelve el handle del job.
// Handle vacío si la sumisión falla por cualquier vía: transporte, body
// imparseable o respuesta sin jobId.
func (c *Client) CreateToken(ctx context.Context, name, symbol, merchantAddress string) domain.JobHandle {
	payload, err := json.Marshal(createTokenRequest{
		Name:            name,
		Symbol:          symbol,
		MerchantAddress: merchantAddress,
		CanDistribute:   true,
		CanLP:           true,
	})
	if err != nil {
		slog.Warn("metal: marshal create token payload", "err", err)
		return ""
	}

	raw, err := c.do(ctx, http.MethodPost, c.base+createTokenPath, payload)
	if err != nil {
		slog.Warn("metal: create token failed", "name", name, "symbol", symbol, "err", err)
		return ""
	}

	var resp createTokenResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		slog.Warn("metal: create token response unparseable", "name", name, "err", err)
		return ""
	}
	if resp.JobID == "" {
		slog.Warn("metal: create token response without jobId", "name", name)
	}
	return domain.JobHandle(resp.JobID)
}

// GetJobStatus devuelve el body crudo del status del job — el caller lo
// decodifica con DecodeJobStatus. String vacío ante fallo de transporte.
func (c *Client) GetJobStatus(ctx context.Context, handle domain.JobHandle) string {
	raw, err := c.do(ctx, http.MethodGet, c.base+jobStatusPath+string(handle), nil)
	if err != nil {
		slog.Warn("metal: job status fetch failed", "job", string(handle), "err", err)
		return ""
	}
	return string(raw)
}
