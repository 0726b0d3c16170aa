package request

import (
	"strings"

	"machine_shop_suite/internal/domain/entities"
)

// CreateQuoteRequest is the payload for quote creation and preview. Catalog
// keys are validated against the live configuration by the use cases, so the
// DTO only normalizes shape.
type CreateQuoteRequest struct {
	Material        string   `json:"material" binding:"required"`
	Quality         string   `json:"quality" binding:"required"`
	Printer         string   `json:"printer" binding:"required"`
	Quantity        int      `json:"quantity"`
	InfillDensity   int      `json:"infill_density"`
	FilamentWeightG float64  `json:"filament_weight_g"`
	PrintTimeHours  float64  `json:"print_time_hours"`
	PostProcessing  []string `json:"post_processing"`
	TTLSeconds      int64    `json:"ttl_seconds"`
}

func (r CreateQuoteRequest) ToPrintParams() entities.PrintParams {
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	infill := r.InfillDensity
	if infill == 0 {
		infill = 20
	}
	return entities.PrintParams{
		Material:      strings.TrimSpace(r.Material),
		Quality:       strings.TrimSpace(r.Quality),
		Printer:       strings.TrimSpace(r.Printer),
		Quantity:      quantity,
		InfillDensity: infill,
	}
}

type RefreshQuoteRequest struct {
	ExtendTTL bool `json:"extend_ttl"`
}

type LockQuoteRequest struct {
	Signature string `json:"signature"`
}
