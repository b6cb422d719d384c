package mint

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alejandrodnm/metalbot/internal/domain"
	"github.com/alejandrodnm/metalbot/internal/ports"
)

const defaultItemDelay = 2 * time.Second

// Config contiene la configuración del orquestador de batches.
type Config struct {
	MerchantAddress string
	PollAttempts    int           // 0 = default (60)
	PollInterval    time.Duration // 0 = default (1s)
	ItemDelay       time.Duration // pausa entre items del batch de liquidez
}

// Service es el orquestador de batches contra el servicio de emisión.
// Sustituye el flag global de "tarea corriendo" por un objeto explícito:
// el gate y la configuración viven aquí, no en estado de paquete.
type Service struct {
	cfg       Config
	api       ports.TokenAPI
	decode    StatusDecoder
	companies ports.CompanyProvider
	announcer ports.Announcer
	notifier  ports.Notifier
	store     ports.BatchStore // opcional, nil desactiva el histórico

	gate Gate
	wg   sync.WaitGroup
}

// New crea un Service con todas las dependencias inyectadas.
func New(
	cfg Config,
	api ports.TokenAPI,
	decode StatusDecoder,
	companies ports.CompanyProvider,
	announcer ports.Announcer,
	notifier ports.Notifier,
	store ports.BatchStore,
) *Service {
	if cfg.ItemDelay <= 0 {
		cfg.ItemDelay = defaultItemDelay
	}
	return &Service{
		cfg:       cfg,
		api:       api,
		decode:    decode,
		companies: companies,
		announcer: announcer,
		notifier:  notifier,
		store:     store,
	}
}

// StartTokenCreation lanza el batch de creación de tokens en background.
// Devuelve false de forma síncrona si ya hay un batch en vuelo — única
// señal de fallo que ve el caller; el resto se narra por log/notifier.
func (s *Service) StartTokenCreation(ctx context.Context) bool {
	return s.start(ctx, domain.BatchCreateTokens, s.runTokenCreation)
}

// StartLiquidityInit lanza el batch de inicialización de liquidez.
// Mismo gate que la creación de tokens: los dos batches tocan los mismos
// tokens del merchant y no deben solaparse.
func (s *Service) StartLiquidityInit(ctx context.Context) bool {
	return s.start(ctx, domain.BatchInitLiquidity, s.runLiquidityInit)
}

// IsRunning devuelve true mientras hay un batch en vuelo.
func (s *Service) IsRunning() bool {
	return s.gate.Held()
}

// Wait bloquea hasta que el batch en vuelo termine. Los tests (y el CLI)
// esperan la terminación de forma determinista en lugar de dormir.
func (s *Service) Wait() {
	s.wg.Wait()
}

// start toma el gate y despacha el batch a una goroutine propia.
// El Release va en defer: todo path de salida libera exactamente una vez.
func (s *Service) start(ctx context.Context, kind domain.BatchKind, run func(context.Context)) bool {
	if !s.gate.TryAcquire() {
		slog.Warn("batch rejected, another one is in flight", "kind", kind)
		return false
	}

	slog.Info("batch accepted", "kind", kind, "merchant", s.cfg.MerchantAddress)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.gate.Release()
		run(ctx)
	}()
	return true
}

// finish narra el resumen, persiste el histórico y deja la línea de cierre.
func (s *Service) finish(ctx context.Context, result domain.BatchResult) {
	s.notifier.BatchDone(result)

	if s.store != nil {
		if err := s.store.SaveBatch(ctx, result); err != nil {
			slog.Warn("save batch history failed", "run", result.RunID, "err", err)
		}
	}

	ok, failed, gaveUp := result.Tally()
	slog.Info("batch complete",
		"run", result.RunID,
		"kind", result.Kind,
		"total", len(result.Outcomes),
		"ok", ok,
		"failed", failed,
		"gave_up", gaveUp,
		"duration", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond),
	)
}
