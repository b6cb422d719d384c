package mint

import "sync/atomic"

// Gate garantiza a lo sumo un batch en vuelo en todo el proceso.
// Test-and-set atómico, no check-then-set: dos TryAcquire concurrentes
// nunca pueden ganar los dos.
type Gate struct {
	running atomic.Bool
}

// TryAcquire toma el gate si está libre. Devuelve false sin tocar el flag
// si ya hay un batch corriendo.
func (g *Gate) TryAcquire() bool {
	return g.running.CompareAndSwap(false, true)
}

// Release libera el gate incondicionalmente. Debe ejecutarse en todo path
// de salida del batch dueño — incluido el early-return por input vacío.
func (g *Gate) Release() {
	g.running.Store(false)
}

// Held devuelve true mientras un batch tiene el gate.
func (g *Gate) Held() bool {
	return g.running.Load()
}
