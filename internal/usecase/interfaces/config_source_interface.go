package interfaces

import "machine_shop_suite/internal/domain/entities"

// IConfigSource is the read side of the shop configuration as seen by the
// quote lifecycle: lookups for validation plus the drift-detection fingerprint.
type IConfigSource interface {
	// Version returns a short stable digest of the current configuration.
	// Two calls return equal strings iff the configuration is unchanged.
	Version() string

	Material(key string) (entities.Material, bool)
	PrintQuality(key string) (entities.PrintQuality, bool)
	Printer(key string) (entities.Printer, bool)
	PostProcessing(key string) (entities.PostProcessing, bool)
	Pricing() entities.PricingConfig
}

// IShopConfigStore extends IConfigSource with the admin surface used by the
// settings endpoints.
type IShopConfigStore interface {
	IConfigSource

	Snapshot() entities.ShopConfig
	Replace(cfg entities.ShopConfig) error
	EnabledPrinters() map[string]entities.Printer
	EnabledPostProcessing() map[string]entities.PostProcessing
	FileSettings() entities.FileSettings
}
