package entities

// Typed shop configuration sections. The configuration is stored as a single
// JSON document; quotes snapshot its fingerprint (see shopconfig.Version) so
// that later edits invalidate previously priced quotes.

type ApplicationInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

type SlicerSettings struct {
	Path           string `json:"path"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type Material struct {
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	DensityGCm3      float64  `json:"density_g_cm3"`
	PricePerKg       float64  `json:"price_per_kg"`
	PerGramPrice     float64  `json:"per_gram_price,omitempty"`
	BedTemp          int      `json:"bed_temp"`
	ExtruderTemp     int      `json:"extruder_temp"`
	PerimeterSpeed   int      `json:"perimeter_speed"`
	InfillSpeed      int      `json:"infill_speed"`
	SolidInfillSpeed int      `json:"solid_infill_speed"`
	Colors           []string `json:"colors,omitempty"`
}

type PrintQuality struct {
	Name        string  `json:"name"`
	LayerHeight float64 `json:"layer_height"`
	Description string  `json:"description,omitempty"`
}

type InfillOptions struct {
	MinPercentage     int            `json:"min_percentage"`
	MaxPercentage     int            `json:"max_percentage"`
	DefaultPercentage int            `json:"default_percentage"`
	Recommended       map[string]int `json:"recommended,omitempty"`
}

type PricingConfig struct {
	PricingMode           string  `json:"pricing_mode"`
	BaseCost              float64 `json:"base_cost"`
	ElectricityRatePerKwh float64 `json:"electricity_rate_per_kwh"`
	PrinterPowerWatts     float64 `json:"printer_power_watts"`
	DepreciationPerHour   float64 `json:"depreciation_per_hour"`
	OtherCostsPerPrint    float64 `json:"other_costs_per_print"`
	GstRate               float64 `json:"gst_rate"`
	Currency              string  `json:"currency"`
	CurrencySymbol        string  `json:"currency_symbol"`
}

type Printer struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	BedSizeMm         []int   `json:"bed_size_mm"`
	NozzleDiameterMm  float64 `json:"nozzle_diameter_mm"`
	MaxPrintSpeedMmS  int     `json:"max_print_speed_mm_s"`
	MarkupMultiplier  float64 `json:"markup_multiplier"`
	Enabled           bool    `json:"enabled"`
}

type PostProcessing struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Enabled     bool    `json:"enabled"`
}

type FileSettings struct {
	MaxFileSizeMB        int      `json:"max_file_size_mb"`
	AllowedExtensions    []string `json:"allowed_extensions"`
	UploadTimeoutSeconds int      `json:"upload_timeout_seconds"`
}

// ShopConfig is the full configuration document.
type ShopConfig struct {
	Application    ApplicationInfo           `json:"application"`
	Slicer         SlicerSettings            `json:"slicer"`
	Materials      map[string]Material       `json:"materials"`
	PrintQuality   map[string]PrintQuality   `json:"print_quality"`
	InfillOptions  InfillOptions             `json:"infill_options"`
	Pricing        PricingConfig             `json:"pricing"`
	Printers       map[string]Printer        `json:"printers"`
	PostProcessing map[string]PostProcessing `json:"post_processing"`
	FileSettings   FileSettings              `json:"file_settings"`
}
