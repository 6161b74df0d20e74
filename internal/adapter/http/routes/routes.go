package routes

import (
	"log"
	"os"
	"strings"

	_ "partsdesk/docs" // This will be auto-generated
	"partsdesk/internal/adapter/http/handlers"
	repository2 "partsdesk/internal/adapter/persistence/repository"
	"partsdesk/internal/infrastructure/database"
	"partsdesk/internal/infrastructure/payments"
	"partsdesk/internal/usecase"
	"partsdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	transactionStore := repository2.NewTransactionDynamoRepository(ddb)
	stockStore := repository2.NewStockDynamoRepository(ddb)
	ledgerStore := repository2.NewLedgerDynamoRepository(ddb)

	var cardGateway interfaces.IPaymentGateway
	if token := os.Getenv("MERCADOPAGO_ACCESS_TOKEN"); token != "" || payments.MockEnabled() {
		mpGateway, err := payments.NewMercadoPagoGateway(token)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			cardGateway = mpGateway
		}
	}

	cfg := usecase.EngineConfig{
		AllowNegativeStockOnSale: boolEnv("ALLOW_NEGATIVE_STOCK_ON_SALE", true),
	}

	transactionUseCase := usecase.NewTransactionUseCase(transactionStore, stockStore, ledgerStore, cardGateway, cfg)
	reportingUseCase := usecase.NewReportingUseCase(transactionStore)

	transactionHandler := handlers.NewTransactionHandler(transactionUseCase)
	reportingHandler := handlers.NewReportingHandler(reportingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTransactionRoutes(v1, transactionHandler, reportingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func boolEnv(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
