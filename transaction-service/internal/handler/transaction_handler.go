package handler

import (
	"errors"
	"math"
	"net/http"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/middleware"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/eaglebank/transactions/shared/utils"
	"github.com/eaglebank/transactions/transaction-service/internal/store"
	"github.com/gin-gonic/gin"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	AddTransaction(cqrs.AddTransactionCommand) (*models.TransactionView, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	GetTransaction(cqrs.GetTransactionQuery) (*models.Transaction, error)
	ListTransactionIDsByType(cqrs.ListTransactionIDsByTypeQuery) []int64
	SumByParent(cqrs.SumByParentQuery) float64
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

// AddTransactionRequest is the PUT body. Amount is a pointer so that an
// explicit 0 is accepted while a missing amount fails validation.
type AddTransactionRequest struct {
	Amount   *float64 `json:"amount" validate:"required"`
	Type     string   `json:"type" validate:"required"`
	ParentID int64    `json:"parent_id"`
}

type SumResponse struct {
	Sum float64 `json:"sum"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

// Register mounts the transaction routes on r.
func (h *TransactionHandler) Register(r gin.IRouter) {
	g := r.Group("/transactionservice")
	g.PUT("/transaction/:transaction_id", h.AddTransaction)
	g.GET("/transaction/:transaction_id", h.GetTransaction)
	g.GET("/types/:type", h.ListTransactionIDsByType)
	g.GET("/sum/:transaction_id", h.SumByParent)
}

func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.AddTransaction(cqrs.AddTransactionCommand{
		ID:       id,
		Amount:   *req.Amount,
		Type:     req.Type,
		ParentID: req.ParentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateKey):
			middleware.RespondWithError(c, http.StatusConflict, "Transaction already exists")
		default:
			_ = c.Error(err)
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	tx, err := h.queries.GetTransaction(cqrs.GetTransactionQuery{TransactionID: id})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		default:
			_ = c.Error(err)
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get transaction")
		}
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) ListTransactionIDsByType(c *gin.Context) {
	ids := h.queries.ListTransactionIDsByType(cqrs.ListTransactionIDsByTypeQuery{Type: c.Param("type")})
	if ids == nil {
		ids = []int64{}
	}
	c.JSON(http.StatusOK, ids)
}

func (h *TransactionHandler) SumByParent(c *gin.Context) {
	id, ok := transactionIDParam(c)
	if !ok {
		return
	}

	sum := h.queries.SumByParent(cqrs.SumByParentQuery{ParentID: id})
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		middleware.RespondWithError(c, http.StatusUnprocessableEntity, "Sum is out of range")
		return
	}

	c.JSON(http.StatusOK, SumResponse{Sum: sum})
}

// Counter reports how many transactions are stored.
type Counter interface {
	Len() int
}

// HealthCheck answers liveness probes with the current transaction count.
func HealthCheck(counter Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "transactions": counter.Len()})
	}
}

// transactionIDParam parses the :transaction_id path segment, answering 400
// itself when it is not an integer.
func transactionIDParam(c *gin.Context) (int64, bool) {
	id, err := utils.ParseTransactionID(c.Param("transaction_id"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Transaction ID must be an integer")
		return 0, false
	}
	return id, true
}
