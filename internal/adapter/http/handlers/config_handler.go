package handlers

import (
	"log"
	"net/http"

	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/usecase/interfaces"
	"machine_shop_suite/pkg"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the public catalog views and the admin settings
// endpoints.
type ConfigHandler struct {
	store interfaces.IShopConfigStore
}

func NewConfigHandler(store interfaces.IShopConfigStore) *ConfigHandler {
	return &ConfigHandler{store: store}
}

// GetConfig godoc
// @Summary  Current catalog and pricing configuration
// @Tags     config
// @Produce  json
// @Success  200 {object} map[string]any
// @Router   /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	snapshot := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"config_version":  h.store.Version(),
		"materials":       snapshot.Materials,
		"print_qualities": snapshot.PrintQuality,
		"infill_options":  snapshot.InfillOptions,
		"pricing":         snapshot.Pricing,
		"printers":        h.store.EnabledPrinters(),
		"post_processing": h.store.EnabledPostProcessing(),
	})
}

// GetMaterials godoc
// @Summary  Available materials
// @Tags     config
// @Produce  json
// @Success  200 {object} map[string]entities.Material
// @Router   /materials [get]
func (h *ConfigHandler) GetMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Materials)
}

// GetSettings godoc
// @Summary  Full configuration document (admin)
// @Tags     config
// @Produce  json
// @Success  200 {object} entities.ShopConfig
// @Security Bearer
// @Router   /settings [get]
func (h *ConfigHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// UpdateSettings godoc
// @Summary  Replace the configuration document (admin)
// @Tags     config
// @Accept   json
// @Produce  json
// @Param    payload body entities.ShopConfig true "new configuration"
// @Success  200 {object} map[string]any
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /settings [put]
func (h *ConfigHandler) UpdateSettings(c *gin.Context) {
	var cfg entities.ShopConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid settings payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.store.Replace(cfg); err != nil {
		appErr := pkg.NewDomainError("SETTINGS_SAVE_FAILED", "Failed to save settings", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	version := h.store.Version()
	log.Printf("[config][handler] settings updated config_version=%s", version)
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully", "config_version": version})
}
