package ports

import "github.com/alejandrodnm/metalbot/internal/domain"

// Notifier narra el progreso del batch al operador: una línea por item y
// un resumen por batch, de modo que el outcome completo se reconstruya
// leyendo la consola.
type Notifier interface {
	ItemDone(outcome domain.Outcome)
	BatchDone(result domain.BatchResult)
}
