package metal

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/alejandrodnm/metalbot/internal/domain"
)

// mapTokenEntries convierte los DTOs raw en TokenRecords, filtrando por
// merchant. Decode defensivo: una entrada sin address usable se salta sin
// abortar el scan; los campos opcionales ausentes quedan en zero value.
func mapTokenEntries(entries []tokenEntry, merchantAddress string) []domain.TokenRecord {
	var records []domain.TokenRecord
	for _, e := range entries {
		if e.MerchantAddress != merchantAddress {
			continue
		}
		if e.Address == "" {
			slog.Warn("metal: skipping token entry without address", "id", e.ID, "name", e.Name)
			continue
		}
		records = append(records, domain.TokenRecord{
			ID:                 e.ID,
			Address:            e.Address,
			Name:               e.Name,
			Symbol:             e.Symbol,
			TotalSupply:        deref(e.TotalSupply),
			StartingAppSupply:  deref(e.StartingAppSupply),
			RemainingAppSupply: deref(e.RemainingAppSupply),
			MerchantSupply:     deref(e.MerchantSupply),
			MerchantAddress:    e.MerchantAddress,
			Price:              derefFloat(e.Price),
		})
	}
	return records
}

// DecodeJobStatus decodifica el body crudo de un poll en el variant tipado.
// Cada acceso a campo es un lookup chequeado: un body imparseable o sin
// campo status degrada a Failed, un tag no reconocido a Unknown — ambos
// terminales para el poller.
func DecodeJobStatus(raw string) domain.JobStatus {
	var resp jobStatusResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return domain.JobStatus{State: domain.JobFailed, Reason: "unparseable status response"}
	}
	if resp.Status == "" {
		return domain.JobStatus{State: domain.JobFailed, Reason: "status response without status field"}
	}

	switch strings.ToLower(resp.Status) {
	case "pending", "queued", "processing":
		return domain.JobStatus{State: domain.JobPending}
	case "success", "completed":
		return domain.JobStatus{
			State:   domain.JobSuccess,
			Name:    resp.Data.Name,
			Address: resp.Data.Address,
		}
	case "failed", "error":
		reason := resp.Message
		if reason == "" {
			reason = "job failed without reason"
		}
		return domain.JobStatus{State: domain.JobFailed, Reason: reason}
	default:
		return domain.JobStatus{State: domain.JobUnknown, RawTag: resp.Status}
	}
}

func deref(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
