package metal

// client.go — HTTP client del servicio de emisión Metal.
//
// Contrato de errores: ninguna operación exportada devuelve error. Los
// callers corren dentro de batches fire-and-forget donde un error propagado
// no tendría observador, así que cada fallo degrada al valor centinela de su
// tipo (slice vacío, handle vacío, false, string vacío) más una línea de log.
// Un fallo de transporte NO se reintenta aquí — el poller decide.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBase = "https://api.metal.build"

	allTokensPath    = "/merchant/all-tokens"
	createTokenPath  = "/merchant/create-token"
	jobStatusPath    = "/merchant/create-token/status/"
	liquidityPathFmt = "/token/%s/liquidity"

	requestTimeout = 15 * time.Second

	// Ritmo conservador: el servicio encola jobs por merchant, no hay nada
	// que ganar yendo más rápido.
	requestsPerSec = 4
	burstSize      = 4
)

// Client implementa ports.TokenAPI contra la API de Metal.
type Client struct {
	http          *http.Client
	base          string
	liquidityBase string
	apiKey        string
	limiter       *rate.Limiter
}

// NewClient crea un Client autenticado con la API key dada.
// Si base está vacío usa el endpoint de producción; si liquidityBase está
// vacío, la operación de liquidez usa el mismo base (las dos fuentes del
// servicio divergen en este host — por eso es configurable por separado).
func NewClient(base, liquidityBase, apiKey string) *Client {
	if base == "" {
		base = defaultBase
	}
	if liquidityBase == "" {
		liquidityBase = base
	}
	return &Client{
		http:          &http.Client{Timeout: requestTimeout},
		base:          base,
		liquidityBase: liquidityBase,
		apiKey:        apiKey,
		limiter:       rate.NewLimiter(requestsPerSec, burstSize),
	}
}

// do ejecuta una request autenticada y devuelve el body crudo.
// La API key viaja en el header x-api-key; los writes llevan content-type
// JSON. Sin retries: un fallo es un fallo.
func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}
	return raw, nil
}
