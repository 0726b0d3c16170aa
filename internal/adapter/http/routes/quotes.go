package routes

import (
	"machine_shop_suite/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathSlice  = "/slice"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("", requireAdmin(), quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/refresh", quoteHandler.RefreshQuote)
		quotes.POST("/:id/lock", quoteHandler.LockQuote)
	}
}

func addConfigRoutes(rg *gin.RouterGroup, configHandler *handlers.ConfigHandler) {
	rg.GET("/config", configHandler.GetConfig)
	rg.GET("/materials", configHandler.GetMaterials)

	settings := rg.Group("/settings", requireAdmin())
	{
		settings.GET("", configHandler.GetSettings)
		settings.PUT("", configHandler.UpdateSettings)
	}
}

func addSliceRoutes(rg *gin.RouterGroup, sliceHandler *handlers.SliceHandler) {
	rg.POST(PathSlice, sliceHandler.AnalyzeSTL)
}
