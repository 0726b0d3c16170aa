package routes

import (
	"log"
	"os"
	"strconv"

	_ "machine_shop_suite/docs" // This will be auto-generated
	"machine_shop_suite/internal/adapter/http/handlers"
	repository2 "machine_shop_suite/internal/adapter/persistence/repository"
	"machine_shop_suite/internal/infrastructure/database"
	"machine_shop_suite/internal/infrastructure/security"
	"machine_shop_suite/internal/infrastructure/shopconfig"
	"machine_shop_suite/internal/infrastructure/slicer"
	"machine_shop_suite/internal/usecase"
	"machine_shop_suite/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	shopConfig := shopconfig.Load(os.Getenv("CONFIG_FILE"))
	signer := security.NewHMACQuoteSignerFromEnv()
	quoteRepo := newQuoteRepository()

	lifecycle := usecase.NewQuoteLifecycleUseCase(
		quoteRepo,
		shopConfig,
		signer,
		getenvInt64("QUOTE_TTL_SECONDS", 1800),
		getenvInt64("QUOTE_LOCK_TTL_SECONDS", 900),
	)
	pricing := usecase.NewPricingUseCase(shopConfig)

	slicerSettings := shopConfig.Slicer()
	slicerGateway := slicer.NewPrusaSlicerGateway(slicerSettings.Path, slicerSettings.TimeoutSeconds)
	sliceUseCase := usecase.NewSliceUseCase(shopConfig, slicerGateway)

	quoteHandler := handlers.NewQuoteHandler(lifecycle, pricing)
	configHandler := handlers.NewConfigHandler(shopConfig)
	sliceHandler := handlers.NewSliceHandler(sliceUseCase, shopConfig)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addConfigRoutes(v1, configHandler)
	addSliceRoutes(v1, sliceHandler)
}

// newQuoteRepository selects the storage backend. The file store is the
// default; QUOTES_BACKEND=dynamodb switches to DynamoDB.
func newQuoteRepository() interfaces.IQuoteRepository {
	backend := os.Getenv("QUOTES_BACKEND")
	if backend == "dynamodb" {
		log.Printf("[quote][routes] using dynamodb quote store")
		return repository2.NewQuoteDynamoRepository(database.ConnectDynamoDB())
	}
	return repository2.NewQuoteFileRepository(os.Getenv("QUOTES_DIR"))
}

func getenvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("[quote][routes] invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
