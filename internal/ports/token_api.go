package ports

import (
	"context"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// TokenAPI es el acceso tipado y autenticado a las cuatro operaciones del
// servicio de emisión. Ninguna operación devuelve error: los callers corren
// dentro de tareas fire-and-forget sin observador del error, así que cada
// fallo (transporte, parseo, rechazo explícito) degrada al valor vacío de
// su tipo y queda registrado en el log.
type TokenAPI interface {
	// ListMerchantTokens devuelve los tokens del merchant en orden de
	// respuesta. Slice vacío ante cualquier fallo.
	ListMerchantTokens(ctx context.Context, merchantAddress string) []domain.TokenRecord

	// CreateToken somete la creación de un token y devuelve el handle del
	// job. Handle vacío = sumisión fallida.
	CreateToken(ctx context.Context, name, symbol, merchantAddress string) domain.JobHandle

	// CreateLiquidity inicializa el pool de liquidez del token. True solo si
	// la respuesta trae el flag de éxito explícito.
	CreateLiquidity(ctx context.Context, tokenAddress string) bool

	// GetJobStatus devuelve el body crudo del poll de status — el caller lo
	// decodifica. String vacío ante fallo de transporte.
	GetJobStatus(ctx context.Context, handle domain.JobHandle) string
}
