package shopconfig

import (
	"os"

	"machine_shop_suite/internal/domain/entities"
)

const defaultSlicerPath = "prusa-slicer"

// DefaultConfig returns the configuration written on first start.
func DefaultConfig() entities.ShopConfig {
	slicerPath := os.Getenv("PRUSA_SLICER_PATH")
	if slicerPath == "" {
		slicerPath = defaultSlicerPath
	}

	return entities.ShopConfig{
		Application: entities.ApplicationInfo{
			Name:        "Machine Shop Suite",
			Version:     "1.0.0",
			Description: "3D Printing Quote Engine",
		},
		Slicer: entities.SlicerSettings{
			Path:           slicerPath,
			TimeoutSeconds: 300,
		},
		Materials: map[string]entities.Material{
			"pla": {
				Name:             "PLA (Polylactic Acid)",
				Description:      "Easy to print, biodegradable, good for prototypes",
				DensityGCm3:      1.24,
				PricePerKg:       800,
				PerGramPrice:     1.0,
				BedTemp:          55,
				ExtruderTemp:     215,
				PerimeterSpeed:   100,
				InfillSpeed:      180,
				SolidInfillSpeed: 160,
				Colors:           []string{"White", "Black", "Red", "Blue", "Green", "Yellow", "Orange", "Gray"},
			},
			"abs": {
				Name:             "ABS (Acrylonitrile Butadiene Styrene)",
				Description:      "Strong and durable, heat resistant, good for functional parts",
				DensityGCm3:      1.04,
				PricePerKg:       1000,
				PerGramPrice:     1.2,
				BedTemp:          90,
				ExtruderTemp:     245,
				PerimeterSpeed:   80,
				InfillSpeed:      160,
				SolidInfillSpeed: 140,
				Colors:           []string{"White", "Black", "Red", "Blue", "Natural"},
			},
			"petg": {
				Name:             "PETG (Polyethylene Terephthalate Glycol)",
				Description:      "Strong, flexible, chemical resistant, food-safe option",
				DensityGCm3:      1.27,
				PricePerKg:       1000,
				PerGramPrice:     1.2,
				BedTemp:          70,
				ExtruderTemp:     240,
				PerimeterSpeed:   70,
				InfillSpeed:      150,
				SolidInfillSpeed: 120,
				Colors:           []string{"Clear", "White", "Black", "Blue", "Red"},
			},
			"tpu": {
				Name:             "TPU (Thermoplastic Polyurethane)",
				Description:      "Flexible and elastic, excellent for grips and cushioning",
				DensityGCm3:      1.21,
				PricePerKg:       1500,
				PerGramPrice:     2.0,
				BedTemp:          60,
				ExtruderTemp:     230,
				PerimeterSpeed:   30,
				InfillSpeed:      40,
				SolidInfillSpeed: 35,
				Colors:           []string{"Black", "White", "Red", "Blue", "Clear"},
			},
			"nylon": {
				Name:             "Nylon (Polyamide)",
				Description:      "Very strong and durable, excellent layer adhesion",
				DensityGCm3:      1.14,
				PricePerKg:       1800,
				PerGramPrice:     2.5,
				BedTemp:          80,
				ExtruderTemp:     250,
				PerimeterSpeed:   60,
				InfillSpeed:      100,
				SolidInfillSpeed: 80,
				Colors:           []string{"Natural", "Black", "White"},
			},
		},
		PrintQuality: map[string]entities.PrintQuality{
			"draft": {
				Name:        "Draft (Fast)",
				LayerHeight: 0.3,
				Description: "Fastest print, visible layers, good for prototypes",
			},
			"standard": {
				Name:        "Standard (Balanced)",
				LayerHeight: 0.2,
				Description: "Good balance of speed and quality",
			},
			"fine": {
				Name:        "Fine (Detailed)",
				LayerHeight: 0.15,
				Description: "Higher detail, longer print time",
			},
			"ultra_fine": {
				Name:        "Ultra Fine (Maximum Detail)",
				LayerHeight: 0.1,
				Description: "Best quality, slowest print, minimal layer lines",
			},
		},
		InfillOptions: entities.InfillOptions{
			MinPercentage:     5,
			MaxPercentage:     100,
			DefaultPercentage: 20,
			Recommended: map[string]int{
				"prototype":  10,
				"standard":   20,
				"functional": 40,
				"structural": 80,
				"solid":      100,
			},
		},
		Pricing: entities.PricingConfig{
			PricingMode:           "custom",
			BaseCost:              150,
			ElectricityRatePerKwh: 7,
			PrinterPowerWatts:     1000,
			DepreciationPerHour:   50,
			OtherCostsPerPrint:    20,
			GstRate:               0.18,
			Currency:              "INR",
			CurrencySymbol:        "₹",
		},
		Printers: map[string]entities.Printer{
			"prusa_mk3s": {
				Name:             "Prusa i3 MK3S+",
				Description:      "Original Prusa i3 MK3S+ FDM printer",
				BedSizeMm:        []int{250, 210, 210},
				NozzleDiameterMm: 0.4,
				MaxPrintSpeedMmS: 200,
				MarkupMultiplier: 1.3,
				Enabled:          true,
			},
			"ender3_v2": {
				Name:             "Creality Ender 3 V2",
				Description:      "Creality Ender 3 V2 budget FDM printer",
				BedSizeMm:        []int{220, 220, 250},
				NozzleDiameterMm: 0.4,
				MaxPrintSpeedMmS: 180,
				MarkupMultiplier: 1.25,
				Enabled:          true,
			},
			"bambu_x1": {
				Name:             "Bambu Lab X1 Carbon",
				Description:      "Bambu Lab X1 Carbon high-speed printer",
				BedSizeMm:        []int{256, 256, 256},
				NozzleDiameterMm: 0.4,
				MaxPrintSpeedMmS: 500,
				MarkupMultiplier: 1.4,
				Enabled:          true,
			},
		},
		PostProcessing: map[string]entities.PostProcessing{
			"sanding": {
				Name:        "Sanding & Smoothing",
				Description: "Manual sanding for smooth surface finish",
				Price:       500,
				Enabled:     true,
			},
			"painting": {
				Name:        "Painting",
				Description: "Professional spray painting with primer and topcoat",
				Price:       1500,
				Enabled:     true,
			},
			"polishing": {
				Name:        "Polishing",
				Description: "High-gloss polishing for aesthetic finish",
				Price:       800,
				Enabled:     true,
			},
			"threading": {
				Name:        "Threading/Tapping",
				Description: "Adding threads to holes for screws/bolts",
				Price:       300,
				Enabled:     true,
			},
		},
		FileSettings: entities.FileSettings{
			MaxFileSizeMB:        100,
			AllowedExtensions:    []string{"stl"},
			UploadTimeoutSeconds: 300,
		},
	}
}
