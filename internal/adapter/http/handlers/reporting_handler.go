package handlers

import (
	"net/http"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportingHandler exposes the read-side statistics projection.

type ReportingHandler struct {
	usecase usecase.IReportingUseCase
}

func NewReportingHandler(uc usecase.IReportingUseCase) *ReportingHandler {
	return &ReportingHandler{usecase: uc}
}

// GetStats aggregates revenue by day, payment type, product and client.
// Cancelled transactions are excluded unless include_cancelled=true, which
// turns the report into a cancellation view.
//
// @Summary      Transaction statistics
// @Tags         transactions
// @Produce      json
// @Param        kind               query  string  false  "venta | presupuesto"
// @Param        client_id          query  string  false  "client id"
// @Param        include_cancelled  query  bool    false  "report on cancelled transactions instead"
// @Success      200  {object}  usecase.StatsReport
// @Router       /transactions/stats [get]
func (h *ReportingHandler) GetStats(c *gin.Context) {
	filters := usecase.StatsFilters{
		Kind:             entities.TransactionKind(c.Query("kind")),
		ClientID:         c.Query("client_id"),
		IncludeCancelled: c.Query("include_cancelled") == "true",
	}

	report, err := h.usecase.Stats(c.Request.Context(), filters)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}
