package host

// El host real es la aplicación que contiene las compañías (y la pausa de
// la simulación). Este adapter la sustituye con una lista fija del config
// y un announce que solo loguea — suficiente para operar el CLI y para
// inyectar fakes en tests.

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// Static implementa ports.CompanyProvider sobre una lista fija.
type Static struct {
	companies []domain.Company
}

// NewStatic crea un provider con las compañías dadas. El orden de entrada
// es el orden de enumeración.
func NewStatic(companies []domain.Company) *Static {
	cs := make([]domain.Company, len(companies))
	copy(cs, companies)
	return &Static{companies: cs}
}

// Companies devuelve una copia de la lista, siempre en el mismo orden.
func (s *Static) Companies(_ context.Context) ([]domain.Company, error) {
	out := make([]domain.Company, len(s.companies))
	copy(out, s.companies)
	return out, nil
}

// LogAnnouncer implementa ports.Announcer dejando una línea de log.
type LogAnnouncer struct{}

// LiquidityReady notifica al host que la liquidez quedó inicializada.
func (LogAnnouncer) LiquidityReady(_ context.Context) {
	slog.Info("liquidity ready, host notified")
}
