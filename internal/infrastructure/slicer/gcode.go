package slicer

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"machine_shop_suite/internal/usecase/interfaces"
)

// PrusaSlicer writes its estimates as G-code comments in a handful of
// formats; every pattern below has been observed in real output.
var (
	filamentMmRe    = regexp.MustCompile(`(?i);\s*filament\s+used\s*\[mm\]\s*=\s*([\d.]+)`)
	filamentGRe     = regexp.MustCompile(`(?i);\s*filament\s+used\s*\[g\]\s*=\s*([\d.]+)`)
	filamentCm3Re   = regexp.MustCompile(`(?i);\s*filament\s+used\s*\[cm3\]\s*=\s*([\d.]+)`)
	altFilamentGRe  = regexp.MustCompile(`(?i);\s*filament_used_g\s*=\s*([\d.]+)`)
	altFilamentMmRe = regexp.MustCompile(`(?i);\s*filament_used_mm\s*=\s*([\d.]+)`)
	printTimeRe     = regexp.MustCompile(`(?i);\s*estimated\s+printing\s+time.*?=\s*(.+)`)
	hoursRe         = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesRe       = regexp.MustCompile(`(?i)(\d+)\s*m(?:in)?`)
	secondsRe       = regexp.MustCompile(`(?i)(\d+)\s*s`)
	extrusionRe     = regexp.MustCompile(`E([\d.]+)`)
)

const (
	// 1.75 mm filament, PLA density; used when the slicer reports length or
	// volume but not weight.
	filamentRadiusCm = 0.175 / 2
	plaDensityGCm3   = 1.24

	fallbackLengthMm = 1000
	fallbackTimeSec  = 3600
)

// ExtractFilamentUsage scrapes filament usage and print time from G-code.
// Missing values are derived or defaulted rather than reported as errors; a
// Warning is set when the whole parse had to fall back.
func ExtractFilamentUsage(gcode string) interfaces.SliceResult {
	var (
		lengthMm  = -1.0
		weightG   = -1.0
		volumeCm3 = -1.0
		timeSec   = 0
	)

	if m := filamentMmRe.FindStringSubmatch(gcode); m != nil {
		lengthMm, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := filamentGRe.FindStringSubmatch(gcode); m != nil {
		weightG, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := filamentCm3Re.FindStringSubmatch(gcode); m != nil {
		volumeCm3, _ = strconv.ParseFloat(m[1], 64)
	}
	if weightG < 0 {
		if m := altFilamentGRe.FindStringSubmatch(gcode); m != nil {
			weightG, _ = strconv.ParseFloat(m[1], 64)
		}
	}
	if lengthMm < 0 {
		if m := altFilamentMmRe.FindStringSubmatch(gcode); m != nil {
			lengthMm, _ = strconv.ParseFloat(m[1], 64)
		}
	}
	if m := printTimeRe.FindStringSubmatch(gcode); m != nil {
		timeSec = parsePrintTime(strings.TrimSpace(m[1]))
	}

	warning := ""
	if lengthMm < 0 && weightG < 0 && volumeCm3 < 0 {
		warning = "no filament usage comments in G-code; estimate derived from extrusion moves"
		lengthMm = estimateFilamentFromExtrusion(strings.NewReader(gcode))
	}
	if timeSec <= 0 {
		timeSec = fallbackTimeSec
	}
	if lengthMm < 0 && volumeCm3 >= 0 {
		lengthCm := volumeCm3 / (math.Pi * filamentRadiusCm * filamentRadiusCm)
		lengthMm = lengthCm * 10
	}
	if lengthMm < 0 {
		lengthMm = fallbackLengthMm
	}
	if weightG < 0 {
		if volumeCm3 >= 0 {
			weightG = volumeCm3 * plaDensityGCm3
		} else {
			volume := math.Pi * filamentRadiusCm * filamentRadiusCm * (lengthMm / 10)
			weightG = volume * plaDensityGCm3
		}
	}

	return interfaces.SliceResult{
		FilamentLengthMm:     round2(lengthMm),
		FilamentWeightG:      round2(weightG),
		EstimatedTimeSeconds: timeSec,
		EstimatedTimeHours:   round2(float64(timeSec) / 3600),
		Warning:              warning,
	}
}

// parsePrintTime handles formats like "1h 23m 45s", "2h 5m", "47m".
func parsePrintTime(s string) int {
	total := 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 3600
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		total += min * 60
	}
	if m := secondsRe.FindStringSubmatch(s); m != nil {
		sec, _ := strconv.Atoi(m[1])
		total += sec
	}
	return total
}

// estimateFilamentFromExtrusion falls back to the highest absolute E value in
// G1 moves when no usage comment is present.
func estimateFilamentFromExtrusion(r io.Reader) float64 {
	total := 0.0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "G1") || !strings.Contains(line, "E") {
			continue
		}
		if m := extrusionRe.FindStringSubmatch(line); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > total {
				total = v
			}
		}
	}
	if total > 0 {
		return total
	}
	return fallbackLengthMm
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
