package slicer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"machine_shop_suite/internal/usecase/interfaces"
)

var (
	ErrSlicerNotFound = errors.New("slicer executable not found")
	ErrSlicingTimeout = errors.New("slicing timeout - file may be too complex")
)

// PrusaSlicerGateway shells out to PrusaSlicer and scrapes the generated
// G-code for filament usage and print time.
type PrusaSlicerGateway struct {
	slicerPath string
	timeout    time.Duration
}

var _ interfaces.ISlicerGateway = (*PrusaSlicerGateway)(nil)

func NewPrusaSlicerGateway(slicerPath string, timeoutSeconds int) *PrusaSlicerGateway {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 300
	}
	return &PrusaSlicerGateway{
		slicerPath: slicerPath,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
	}
}

func (g *PrusaSlicerGateway) Slice(ctx context.Context, stlPath string, job interfaces.SliceJob) (interfaces.SliceResult, error) {
	if _, err := exec.LookPath(g.slicerPath); err != nil {
		log.Printf("[slicer][gateway] executable missing path=%s", g.slicerPath)
		return interfaces.SliceResult{}, fmt.Errorf("%w: %s", ErrSlicerNotFound, g.slicerPath)
	}

	gcodePath := filepath.Join(os.TempDir(), "slice_"+uuid.NewString()+".gcode")
	defer os.Remove(gcodePath)

	args := []string{
		"--export-gcode",
		stlPath,
		"--output", gcodePath,
		"--layer-height", strconv.FormatFloat(job.LayerHeight, 'f', -1, 64),
		"--fill-density", strconv.Itoa(job.InfillDensity) + "%",
		"--bed-temperature", strconv.Itoa(job.BedTemp),
		"--temperature", strconv.Itoa(job.ExtruderTemp),
		"--perimeter-speed", strconv.Itoa(job.PerimeterSpeed),
		"--infill-speed", strconv.Itoa(job.InfillSpeed),
		"--solid-infill-speed", strconv.Itoa(job.SolidInfillSpeed),
	}
	if job.Support {
		args = append(args, "--support-material")
	}

	runCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, g.slicerPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return interfaces.SliceResult{}, ErrSlicingTimeout
		}
		log.Printf("[slicer][gateway] slicing failed err=%v output=%s", err, string(output))
		return interfaces.SliceResult{}, fmt.Errorf("slicing failed: %w", err)
	}

	gcode, err := os.ReadFile(gcodePath)
	if err != nil {
		return interfaces.SliceResult{}, errors.New("g-code file was not created")
	}

	result := ExtractFilamentUsage(string(gcode))
	log.Printf("[slicer][gateway] sliced stl=%s filament_g=%.2f time_s=%d",
		filepath.Base(stlPath), result.FilamentWeightG, result.EstimatedTimeSeconds)
	return result, nil
}
