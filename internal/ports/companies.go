package ports

import (
	"context"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// CompanyProvider enumera las entidades del host a tokenizar.
type CompanyProvider interface {
	// Companies devuelve las compañías en orden estable y repetible.
	Companies(ctx context.Context) ([]domain.Company, error)
}

// Announcer es el side effect one-shot que el host expone para enterarse
// de que la liquidez quedó inicializada (p.ej. despausar la simulación).
type Announcer interface {
	LiquidityReady(ctx context.Context)
}
