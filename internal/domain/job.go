package domain

// JobHandle identifica un job asíncrono remoto. El handle vacío señala que
// la sumisión falló — no existe job que consultar.
type JobHandle string

// Empty devuelve true si el handle no identifica ningún job.
func (h JobHandle) Empty() bool {
	return h == ""
}

// JobState es el estado decodificado de un poll de status.
type JobState int

const (
	JobPending JobState = iota
	JobSuccess
	JobFailed
	JobUnknown // tag desconocido en la respuesta — terminal, no transitorio
)

// JobStatus es el resultado tipado de decodificar una respuesta de status.
// Solo los campos del estado correspondiente tienen valor.
type JobStatus struct {
	State   JobState
	Name    string // Success: nombre resuelto del token
	Address string // Success: dirección on-chain resuelta
	Reason  string // Failed: motivo reportado por el servicio
	RawTag  string // Unknown: tag literal que no supimos interpretar
}
