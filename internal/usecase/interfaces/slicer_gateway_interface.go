package interfaces

import "context"

// SliceJob carries the slicing parameters resolved from material, quality and
// request inputs.
type SliceJob struct {
	LayerHeight      float64
	InfillDensity    int
	BedTemp          int
	ExtruderTemp     int
	PerimeterSpeed   int
	InfillSpeed      int
	SolidInfillSpeed int
	Support          bool
}

// SliceResult is the filament and time estimate scraped from slicer output.
type SliceResult struct {
	FilamentLengthMm     float64 `json:"filament_length_mm"`
	FilamentWeightG      float64 `json:"filament_weight_g"`
	EstimatedTimeSeconds int     `json:"estimated_time_seconds"`
	EstimatedTimeHours   float64 `json:"estimated_time_hours"`
	Warning              string  `json:"warning,omitempty"`
}

// ISlicerGateway abstracts the external slicer invocation.
type ISlicerGateway interface {
	Slice(ctx context.Context, stlPath string, job SliceJob) (SliceResult, error)
}
