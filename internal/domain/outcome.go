package domain

import "time"

// OutcomeKind clasifica el resultado terminal de un item del batch.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeGaveUp // el job seguía pending al agotar los intentos — podría completarse más tarde
)

// String devuelve la etiqueta estable usada en logs y en la DB.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeGaveUp:
		return "gave-up"
	default:
		return "unknown"
	}
}

// Outcome es el resultado registrado para exactamente un item del batch.
// El fallo de un item nunca toca los outcomes de sus hermanos.
type Outcome struct {
	Item         string // compañía o token al que corresponde el item
	TokenName    string
	TokenSymbol  string
	TokenAddress string // solo en success de creación, o el token de liquidez
	Kind         OutcomeKind
	Detail       string // motivo en failure/gave-up, vacío en success
}

// BatchKind identifica la forma del batch ejecutado.
type BatchKind string

const (
	BatchCreateTokens  BatchKind = "create-tokens"
	BatchInitLiquidity BatchKind = "init-liquidity"
)

// BatchResult agrupa los outcomes de una ejecución completa.
// Invariante: un outcome por item de entrada, en orden de entrada.
type BatchResult struct {
	RunID      string
	Kind       BatchKind
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

// Tally cuenta los outcomes por clase.
func (r BatchResult) Tally() (succeeded, failed, gaveUp int) {
	for _, o := range r.Outcomes {
		switch o.Kind {
		case OutcomeSuccess:
			succeeded++
		case OutcomeFailure:
			failed++
		case OutcomeGaveUp:
			gaveUp++
		}
	}
	return
}

// Summary reduce el resultado a la fila que se persiste en el histórico.
func (r BatchResult) Summary() BatchSummary {
	s, f, g := r.Tally()
	return BatchSummary{
		RunID:      r.RunID,
		Kind:       r.Kind,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Total:      len(r.Outcomes),
		Succeeded:  s,
		Failed:     f,
		GaveUp:     g,
	}
}

// BatchSummary es la vista compacta de una ejecución para el histórico.
type BatchSummary struct {
	RunID      string
	Kind       BatchKind
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int
	Succeeded  int
	Failed     int
	GaveUp     int
}
