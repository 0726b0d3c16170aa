package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
)

var ErrSlicerGatewayNotConfigured = errors.New("slicer gateway not configured")

type ISliceUseCase interface {
	Analyze(ctx context.Context, stlPath string, raw entities.PrintParams, support bool) (interfaces.SliceResult, error)
}

// SliceUseCase resolves slicing parameters from the shop configuration and
// delegates the actual work to the slicer gateway.
type SliceUseCase struct {
	config  interfaces.IConfigSource
	gateway interfaces.ISlicerGateway
}

var _ ISliceUseCase = (*SliceUseCase)(nil)

func NewSliceUseCase(config interfaces.IConfigSource, gateway interfaces.ISlicerGateway) *SliceUseCase {
	return &SliceUseCase{config: config, gateway: gateway}
}

func (u *SliceUseCase) Analyze(ctx context.Context, stlPath string, raw entities.PrintParams, support bool) (interfaces.SliceResult, error) {
	if u.gateway == nil {
		return interfaces.SliceResult{}, ErrSlicerGatewayNotConfigured
	}

	materialKey := strings.ToLower(strings.TrimSpace(raw.Material))
	qualityKey := strings.ToLower(strings.TrimSpace(raw.Quality))
	printerKey := strings.ToLower(strings.TrimSpace(raw.Printer))

	material, ok := u.config.Material(materialKey)
	if !ok {
		return interfaces.SliceResult{}, &ValidationError{Field: "material", Reason: fmt.Sprintf("unknown material %q", materialKey)}
	}
	quality, ok := u.config.PrintQuality(qualityKey)
	if !ok {
		return interfaces.SliceResult{}, &ValidationError{Field: "quality", Reason: fmt.Sprintf("unknown quality %q", qualityKey)}
	}
	if _, ok := u.config.Printer(printerKey); !ok {
		return interfaces.SliceResult{}, &ValidationError{Field: "printer", Reason: fmt.Sprintf("unknown printer %q", printerKey)}
	}
	infill := raw.InfillDensity
	if infill < 5 {
		infill = 5
	}
	if infill > 100 {
		infill = 100
	}

	job := interfaces.SliceJob{
		LayerHeight:      quality.LayerHeight,
		InfillDensity:    infill,
		BedTemp:          material.BedTemp,
		ExtruderTemp:     material.ExtruderTemp,
		PerimeterSpeed:   material.PerimeterSpeed,
		InfillSpeed:      material.InfillSpeed,
		SolidInfillSpeed: material.SolidInfillSpeed,
		Support:          support,
	}

	log.Printf("[slicer][usecase] analyzing material=%s quality=%s infill=%d", materialKey, qualityKey, infill)
	return u.gateway.Slice(ctx, stlPath, job)
}
