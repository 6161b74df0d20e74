package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "partsdesk/internal/adapter/http/dto/request"
	response "partsdesk/internal/adapter/http/dto/response"
	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase"
	"partsdesk/internal/usecase/interfaces"
	"partsdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)
)

// TransactionHandler handles the transaction lifecycle endpoints: commit,
// delivery, cancellation and reads.

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// CreateTransaction commits a draft sale or budget.
//
// @Summary      Commit a transaction
// @Description  Validates the draft, applies stock/ledger side effects atomically and persists the document.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        payload  body  request.TransactionCreateRequest  true  "transaction draft"
// @Success      201  {object}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Commit(c.Request.Context(), payload.ToDraftInput())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(t))
}

// DeliverTransaction applies partial or full delivery to a deferred document.
//
// @Summary      Deliver transaction lines
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "transaction id"
// @Param        payload  body  request.DeliverRequest  true  "line deliveries"
// @Success      200  {object}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /transactions/{id}/deliver [patch]
func (h *TransactionHandler) DeliverTransaction(c *gin.Context) {
	var payload request.DeliverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Deliver(c.Request.Context(), c.Param("id"), payload.ResolveRequestID(), payload.ToLineDeliveries())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// CancelTransaction cancels a document, reversing delivered stock and
// on-account ledger movements.
//
// @Summary      Cancel a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "transaction id"
// @Param        payload  body  request.CancelRequest  true  "cancellation reason"
// @Success      200  {object}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /transactions/{id}/cancel [patch]
func (h *TransactionHandler) CancelTransaction(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.ResolveRequestID(), payload.ResolveReason())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// GetTransaction returns one transaction by id.
//
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Param        id  path  string  true  "transaction id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(t))
}

// ListTransactions lists transactions with optional filters and pagination.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        kind       query  string  false  "venta | presupuesto"
// @Param        status     query  string  false  "pendiente | parcial | completada | cancelada"
// @Param        client_id  query  string  false  "client id"
// @Param        limit      query  int     false  "page size"
// @Param        cursor     query  string  false  "opaque pagination cursor"
// @Success      200  {object}  response.TransactionListResponse
// @Router       /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filters := interfaces.ListFilters{
		Kind:     entities.TransactionKind(c.Query("kind")),
		Status:   entities.TransactionStatus(c.Query("status")),
		ClientID: c.Query("client_id"),
		Limit:    limit,
		Cursor:   c.Query("cursor"),
	}

	items, next, err := h.usecase.List(c.Request.Context(), filters)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(items, next))
}

func mapTransactionError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	var perr *usecase.PolicyError
	var derr *usecase.DeliveryError
	var cerr *usecase.CollaboratorError

	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", verr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &perr):
		return pkg.NewDomainError(string(perr.Reason), perr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTransaction), errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrMissingReason), errors.Is(err, usecase.ErrNoDeliverySpecified),
		errors.Is(err, usecase.ErrUnknownLine):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &derr):
		if derr.Negative {
			return pkg.NewDomainError("NEGATIVE_DELIVERY", derr.Error(), err, http.StatusBadRequest)
		}
		return pkg.NewDomainError("OVER_DELIVERY", derr.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		return pkg.NewDomainErrorSimple("ALREADY_CANCELLED", "Transaction is already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotDeliverable):
		return pkg.NewDomainErrorSimple("NOT_DELIVERABLE", "Transaction is not in a deliverable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock for the requested delivery", err, http.StatusConflict)
	case errors.As(err, &cerr):
		return pkg.NewDomainError(string(cerr.Op), "A collaborator failed; no partial state was left applied", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
