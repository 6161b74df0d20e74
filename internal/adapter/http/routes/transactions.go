package routes

import (
	"partsdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathTransactions = "/transactions"
)

func addTransactionRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler, reportingHandler *handlers.ReportingHandler) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("", transactionHandler.CreateTransaction)
		transactions.GET("", transactionHandler.ListTransactions)
		// /stats must be registered before /:id would shadow it; gin resolves
		// static segments first, but keep the explicit order anyway.
		transactions.GET("/stats", reportingHandler.GetStats)
		transactions.GET("/:id", transactionHandler.GetTransaction)
		transactions.PATCH("/:id/deliver", transactionHandler.DeliverTransaction)
		transactions.PATCH("/:id/cancel", transactionHandler.CancelTransaction)
	}
}
