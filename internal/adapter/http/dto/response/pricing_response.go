package response

import (
	"machine_shop_suite/internal/usecase"
	"machine_shop_suite/internal/usecase/interfaces"
)

// PreviewResponse is an ephemeral pricing breakdown; nothing is persisted.
type PreviewResponse struct {
	Breakdown      map[string]any `json:"breakdown"`
	TotalPrice     float64        `json:"total_price"`
	Currency       string         `json:"currency"`
	CurrencySymbol string         `json:"currency_symbol"`
	PrintDetails   map[string]any `json:"print_details"`
}

func FromPricingResult(r usecase.PricingResult) PreviewResponse {
	return PreviewResponse{
		Breakdown:      r.Breakdown,
		TotalPrice:     r.TotalPrice,
		Currency:       r.Currency,
		CurrencySymbol: r.CurrencySymbol,
		PrintDetails:   r.PrintDetails,
	}
}

type SliceResponse struct {
	Data interfaces.SliceResult `json:"data"`
}
