package usecase

import (
	"context"
	"fmt"
	"math"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

// PricingInput is a priced print request: validated params plus the slicer's
// filament and time estimates.
type PricingInput struct {
	Params          entities.PrintParams
	FilamentWeightG float64
	PrintTimeHours  float64
	PostProcessing  []string
}

// PricingResult is the full breakdown. Breakdown doubles as the quote's
// `computed` document; its total_price key is mirrored into the quote price.
type PricingResult struct {
	Breakdown      map[string]any
	TotalPrice     float64
	Currency       string
	CurrencySymbol string
	PrintDetails   map[string]any
}

type IPricingUseCase interface {
	CalculateQuote(ctx context.Context, input PricingInput) (PricingResult, error)
}

// PricingUseCase computes the cost breakdown: material, electricity,
// depreciation, fixed costs, printer markup, optional post-processing and GST.
type PricingUseCase struct {
	config interfaces.IConfigSource
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(config interfaces.IConfigSource) *PricingUseCase {
	return &PricingUseCase{config: config}
}

func (u *PricingUseCase) CalculateQuote(_ context.Context, input PricingInput) (PricingResult, error) {
	material, ok := u.config.Material(input.Params.Material)
	if !ok {
		return PricingResult{}, &ValidationError{Field: "material", Reason: fmt.Sprintf("unknown material %q", input.Params.Material)}
	}
	printer, ok := u.config.Printer(input.Params.Printer)
	if !ok {
		return PricingResult{}, &ValidationError{Field: "printer", Reason: fmt.Sprintf("unknown printer %q", input.Params.Printer)}
	}
	if input.FilamentWeightG < 0 {
		return PricingResult{}, &ValidationError{Field: "filament_weight_g", Reason: "must not be negative"}
	}
	if input.PrintTimeHours < 0 {
		return PricingResult{}, &ValidationError{Field: "print_time_hours", Reason: "must not be negative"}
	}
	quantity := input.Params.Quantity
	if quantity < 1 {
		quantity = 1
	}

	pricing := u.config.Pricing()

	materialCost := (input.FilamentWeightG / 1000) * material.PricePerKg
	electricityCost := (pricing.PrinterPowerWatts / 1000) * input.PrintTimeHours * pricing.ElectricityRatePerKwh
	depreciationCost := pricing.DepreciationPerHour * input.PrintTimeHours
	otherCosts := pricing.OtherCostsPerPrint
	baseCost := pricing.BaseCost

	costBeforeMarkup := materialCost + electricityCost + depreciationCost + otherCosts + baseCost
	subtotalPerUnit := costBeforeMarkup * printer.MarkupMultiplier

	postProcessingPerUnit := 0.0
	postProcessingDetails := make([]map[string]any, 0, len(input.PostProcessing))
	for _, key := range input.PostProcessing {
		option, ok := u.config.PostProcessing(key)
		if !ok || !option.Enabled {
			continue
		}
		postProcessingPerUnit += option.Price
		postProcessingDetails = append(postProcessingDetails, map[string]any{
			"key":   key,
			"name":  option.Name,
			"price": option.Price,
		})
	}

	totalBeforeTax := (subtotalPerUnit * float64(quantity)) + (postProcessingPerUnit * float64(quantity))
	gstAmount := totalBeforeTax * pricing.GstRate
	totalPrice := totalBeforeTax + gstAmount

	breakdown := map[string]any{
		"material_cost_per_unit":         roundCurrency(materialCost),
		"electricity_cost_per_unit":      roundCurrency(electricityCost),
		"depreciation_cost_per_unit":     roundCurrency(depreciationCost),
		"other_costs_per_unit":           roundCurrency(otherCosts),
		"base_cost_per_unit":             roundCurrency(baseCost),
		"cost_before_markup":             roundCurrency(costBeforeMarkup),
		"markup_multiplier":              printer.MarkupMultiplier,
		"subtotal_per_unit":              roundCurrency(subtotalPerUnit),
		"quantity":                       quantity,
		"subtotal_all_units":             roundCurrency(subtotalPerUnit * float64(quantity)),
		"post_processing_cost_per_unit":  roundCurrency(postProcessingPerUnit),
		"post_processing_cost_total":     roundCurrency(postProcessingPerUnit * float64(quantity)),
		"post_processing_details":        postProcessingDetails,
		"total_before_tax":               roundCurrency(totalBeforeTax),
		"gst_rate_percent":               roundCurrency(pricing.GstRate * 100),
		"gst_amount":                     roundCurrency(gstAmount),
		"total_price":                    roundCurrency(totalPrice),
	}

	printDetails := map[string]any{
		"material":          input.Params.Material,
		"material_name":     material.Name,
		"printer":           input.Params.Printer,
		"printer_name":      printer.Name,
		"quality":           input.Params.Quality,
		"infill_density":    input.Params.InfillDensity,
		"filament_weight_g": input.FilamentWeightG,
		"print_time_hours":  input.PrintTimeHours,
		"quantity":          quantity,
	}

	return PricingResult{
		Breakdown:      breakdown,
		TotalPrice:     roundCurrency(totalPrice),
		Currency:       pricing.Currency,
		CurrencySymbol: pricing.CurrencySymbol,
		PrintDetails:   printDetails,
	}, nil
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
