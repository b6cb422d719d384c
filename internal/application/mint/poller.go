package mint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/metalbot/internal/domain"
	"github.com/alejandrodnm/metalbot/internal/ports"
)

const (
	defaultPollAttempts = 60
	defaultPollInterval = time.Second
)

// StatusDecoder convierte el body crudo de un poll en el variant tipado.
// Se inyecta desde el wiring (metal.DecodeJobStatus en producción) para que
// el poller no dependa del formato de wire del adapter.
type StatusDecoder func(raw string) domain.JobStatus

// Poller observa un job remoto hasta que alcanza estado terminal.
// Es un observador pasivo con paciencia acotada: las transiciones las
// decide el servicio remoto, aquí solo se decide cuándo dejar de mirar.
type Poller struct {
	api      ports.TokenAPI
	decode   StatusDecoder
	attempts int
	interval time.Duration
}

// NewPoller crea un Poller. attempts <= 0 o interval <= 0 toman los
// defaults de producción (60 intentos, 1s).
func NewPoller(api ports.TokenAPI, decode StatusDecoder, attempts int, interval time.Duration) *Poller {
	if attempts <= 0 {
		attempts = defaultPollAttempts
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{api: api, decode: decode, attempts: attempts, interval: interval}
}

// PollOutcome es el resultado terminal de observar un job.
type PollOutcome struct {
	Kind     domain.OutcomeKind
	Name     string // resuelto por el servicio en success
	Address  string
	Detail   string
	Attempts int
}

// Poll bloquea hasta estado terminal o agotar los intentos.
// Terminales inmediatos: success, failed, tag desconocido, y fallo de
// transporte del fetch (se superficie, no se reintenta a este nivel).
// Pending agotado => gave-up, distinguible de failure: el job aún podría
// completarse más tarde.
func (p *Poller) Poll(ctx context.Context, handle domain.JobHandle) PollOutcome {
	for attempt := 1; attempt <= p.attempts; attempt++ {
		raw := p.api.GetJobStatus(ctx, handle)
		if raw == "" {
			return PollOutcome{
				Kind:     domain.OutcomeFailure,
				Detail:   "status fetch failed",
				Attempts: attempt,
			}
		}

		st := p.decode(raw)
		switch st.State {
		case domain.JobSuccess:
			return PollOutcome{
				Kind:     domain.OutcomeSuccess,
				Name:     st.Name,
				Address:  st.Address,
				Attempts: attempt,
			}
		case domain.JobFailed:
			return PollOutcome{
				Kind:     domain.OutcomeFailure,
				Detail:   st.Reason,
				Attempts: attempt,
			}
		case domain.JobUnknown:
			return PollOutcome{
				Kind:     domain.OutcomeFailure,
				Detail:   "unknown job status: " + st.RawTag,
				Attempts: attempt,
			}
		}

		slog.Debug("job still pending", "job", string(handle), "attempt", attempt)
		if attempt < p.attempts && !sleepCtx(ctx, p.interval) {
			return PollOutcome{
				Kind:     domain.OutcomeFailure,
				Detail:   "context cancelled while polling",
				Attempts: attempt,
			}
		}
	}

	return PollOutcome{
		Kind:     domain.OutcomeGaveUp,
		Detail:   fmt.Sprintf("still pending after %d attempts", p.attempts),
		Attempts: p.attempts,
	}
}

// sleepCtx espera d respetando el contexto. False si el contexto se
// canceló antes de cumplir la espera.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
