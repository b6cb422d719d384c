package ports

import (
	"context"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// BatchStore persiste el histórico de ejecuciones. Opcional: un store nil
// desactiva la persistencia sin tocar la orquestación.
type BatchStore interface {
	// SaveBatch guarda la ejecución completa con sus outcomes.
	SaveBatch(ctx context.Context, result domain.BatchResult) error

	// History devuelve las últimas ejecuciones, la más reciente primero.
	History(ctx context.Context, limit int) ([]domain.BatchSummary, error)
}
