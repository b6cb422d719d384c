package mint_test

// fakes_test.go — colaboradores falsos compartidos por los tests del paquete.
// fakeAPI se programa con scripts de respuesta por job; el decoder de test
// usa un mini-formato legible en lugar del wire format real.

import (
	"context"
	"strings"
	"sync"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

type fakeAPI struct {
	mu             sync.Mutex
	tokens         []domain.TokenRecord
	handles        map[string]domain.JobHandle   // symbol → handle devuelto por CreateToken
	status         map[domain.JobHandle][]string // script de bodies por job; "" = fallo de transporte
	statusCalls    map[domain.JobHandle]int
	liquidityOK    map[string]bool
	createCalls    []string
	liquidityCalls []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		handles:     make(map[string]domain.JobHandle),
		status:      make(map[domain.JobHandle][]string),
		statusCalls: make(map[domain.JobHandle]int),
		liquidityOK: make(map[string]bool),
	}
}

func (f *fakeAPI) ListMerchantTokens(_ context.Context, _ string) []domain.TokenRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens
}

func (f *fakeAPI) CreateToken(_ context.Context, _, symbol, _ string) domain.JobHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls = append(f.createCalls, symbol)
	return f.handles[symbol]
}

func (f *fakeAPI) CreateLiquidity(_ context.Context, tokenAddress string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.liquidityCalls = append(f.liquidityCalls, tokenAddress)
	return f.liquidityOK[tokenAddress]
}

func (f *fakeAPI) GetJobStatus(_ context.Context, handle domain.JobHandle) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.statusCalls[handle]
	f.statusCalls[handle] = n + 1

	script := f.status[handle]
	if len(script) == 0 {
		return ""
	}
	if n >= len(script) {
		// Script agotado: repetir el último estado
		return script[len(script)-1]
	}
	return script[n]
}

func (f *fakeAPI) statusCallCount(handle domain.JobHandle) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls[handle]
}

func (f *fakeAPI) liquidityCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.liquidityCalls)
}

// testDecode interpreta el mini-formato de los scripts:
// "pending" | "ok:<name>:<address>" | "failed:<reason>" | cualquier otra
// cosa = tag desconocido.
func testDecode(raw string) domain.JobStatus {
	switch {
	case raw == "pending":
		return domain.JobStatus{State: domain.JobPending}
	case strings.HasPrefix(raw, "ok:"):
		parts := strings.SplitN(raw, ":", 3)
		return domain.JobStatus{State: domain.JobSuccess, Name: parts[1], Address: parts[2]}
	case strings.HasPrefix(raw, "failed:"):
		return domain.JobStatus{State: domain.JobFailed, Reason: strings.TrimPrefix(raw, "failed:")}
	default:
		return domain.JobStatus{State: domain.JobUnknown, RawTag: raw}
	}
}

// recorder implementa ports.Notifier acumulando lo narrado.
type recorder struct {
	mu      sync.Mutex
	items   []domain.Outcome
	batches []domain.BatchResult
}

func (r *recorder) ItemDone(o domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, o)
}

func (r *recorder) BatchDone(b domain.BatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, b)
}

// fakeAnnouncer cuenta las invocaciones del one-shot del host.
type fakeAnnouncer struct {
	mu    sync.Mutex
	calls int
}

func (a *fakeAnnouncer) LiquidityReady(_ context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
}

func (a *fakeAnnouncer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// fakeStore implementa ports.BatchStore en memoria.
type fakeStore struct {
	mu    sync.Mutex
	saved []domain.BatchResult
}

func (s *fakeStore) SaveBatch(_ context.Context, result domain.BatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, result)
	return nil
}

func (s *fakeStore) History(_ context.Context, _ int) ([]domain.BatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summaries := make([]domain.BatchSummary, 0, len(s.saved))
	for i := len(s.saved) - 1; i >= 0; i-- {
		summaries = append(summaries, s.saved[i].Summary())
	}
	return summaries, nil
}
