package mint

// batch.go — los dos shapes de batch sobre el mismo esqueleto:
// un outcome por item de entrada, en orden de entrada, y el fallo de un
// item nunca frena a los siguientes.

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// runTokenCreation crea un token por compañía: submit → poll → record.
func (s *Service) runTokenCreation(ctx context.Context) {
	runID := uuid.New().String()
	started := time.Now().UTC()

	companies, err := s.companies.Companies(ctx)
	if err != nil {
		slog.Error("cannot enumerate companies", "run", runID, "err", err)
		return
	}
	if len(companies) == 0 {
		slog.Info("no companies to tokenize", "run", runID)
		return
	}

	slog.Info("token creation batch started", "run", runID, "companies", len(companies))
	poller := NewPoller(s.api, s.decode, s.cfg.PollAttempts, s.cfg.PollInterval)

	result := domain.BatchResult{
		RunID:     runID,
		Kind:      domain.BatchCreateTokens,
		StartedAt: started,
	}

	for _, company := range companies {
		name, symbol := company.TokenIdentity()
		outcome := domain.Outcome{
			Item:        company.Name,
			TokenName:   name,
			TokenSymbol: symbol,
		}

		handle := s.api.CreateToken(ctx, name, symbol, s.cfg.MerchantAddress)
		if handle.Empty() {
			outcome.Kind = domain.OutcomeFailure
			outcome.Detail = "submission rejected"
		} else {
			polled := poller.Poll(ctx, handle)
			outcome.Kind = polled.Kind
			outcome.Detail = polled.Detail
			outcome.TokenAddress = polled.Address
			if polled.Name != "" {
				// El servicio puede normalizar el nombre — el resuelto manda.
				outcome.TokenName = polled.Name
			}
		}

		result.Outcomes = append(result.Outcomes, outcome)
		s.notifier.ItemDone(outcome)
	}

	result.FinishedAt = time.Now().UTC()
	s.finish(ctx, result)
}

// runLiquidityInit inicializa liquidez para cada token existente del
// merchant, con una pausa fija entre items para no pisar el rate limit
// remoto. Lista vacía = nada que hacer, no es un fallo.
func (s *Service) runLiquidityInit(ctx context.Context) {
	runID := uuid.New().String()
	started := time.Now().UTC()

	tokens := s.api.ListMerchantTokens(ctx, s.cfg.MerchantAddress)
	if len(tokens) == 0 {
		slog.Info("merchant has no tokens, nothing to initialize", "run", runID)
		return
	}

	slog.Info("liquidity batch started", "run", runID, "tokens", len(tokens))

	result := domain.BatchResult{
		RunID:     runID,
		Kind:      domain.BatchInitLiquidity,
		StartedAt: started,
	}

	for i, token := range tokens {
		if i > 0 && !sleepCtx(ctx, s.cfg.ItemDelay) {
			slog.Warn("liquidity batch cancelled", "run", runID, "done", i, "of", len(tokens))
			break
		}

		outcome := domain.Outcome{
			Item:         token.Name,
			TokenName:    token.Name,
			TokenSymbol:  token.Symbol,
			TokenAddress: token.Address,
		}
		if s.api.CreateLiquidity(ctx, token.Address) {
			outcome.Kind = domain.OutcomeSuccess
		} else {
			outcome.Kind = domain.OutcomeFailure
			outcome.Detail = "liquidity rejected"
		}

		result.Outcomes = append(result.Outcomes, outcome)
		s.notifier.ItemDone(outcome)
	}

	// One-shot hacia el host: la simulación puede continuar.
	s.announcer.LiquidityReady(ctx)

	result.FinishedAt = time.Now().UTC()
	s.finish(ctx, result)
}
