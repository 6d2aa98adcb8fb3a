package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trackmint/transaction_tracker/internal/apperrors"
	portssvc "github.com/trackmint/transaction_tracker/internal/core/ports/services"
	"github.com/trackmint/transaction_tracker/internal/dto"
	"github.com/trackmint/transaction_tracker/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	conversionService  portssvc.ConversionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, cs portssvc.ConversionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		conversionService:  cs,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, cs portssvc.ConversionSvcFacade) {
	h := newTransactionHandler(ts, cs)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.getTransactionSummary)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.GET("/:transactionID/convert/:targetCurrency", h.convertTransaction)
	}
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Records a monetary transaction for the authenticated user
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		if isCurrencyFieldError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrInvalidCurrencyFormat.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyFormat),
			errors.Is(err, apperrors.ErrUnsupportedCurrency),
			errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("currency", txn.Currency))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the authenticated user's transactions, newest first
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number (starts at 1)" default(1)
// @Param   perPage query int false "Items per page (max 50)" default(10)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, total, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params.Page, params.PerPage)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(txns, total, params.Page, params.PerPage))
}

// getTransactionSummary godoc
// @Summary Summarize transactions by currency
// @Description Returns the authenticated user's per-currency totals, ordered by currency code
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.CurrencySummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to summarize transactions"
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summaries, err := h.transactionService.SummarizeByCurrency(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to summarize transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencySummaryResponse(summaries))
}

// getTransaction godoc
// @Summary Get a transaction by id
// @Description Retrieves one of the authenticated user's transactions
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// convertTransaction godoc
// @Summary Convert a transaction to another currency
// @Description Returns the transaction with its amount converted to the target currency; the stored transaction is unchanged
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   targetCurrency path string true "Target currency code (3 letters)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid or unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 503 {object} map[string]string "Currency conversion failed"
// @Security BearerAuth
// @Router /transactions/{transactionID}/convert/{targetCurrency} [get]
func (h *transactionHandler) convertTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")
	targetCurrency := c.Param("targetCurrency")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.conversionService.ConvertTransaction(c.Request.Context(), userID, transactionID, targetCurrency)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrencyFormat),
			errors.Is(err, apperrors.ErrUnsupportedCurrency):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrConversionUnavailable):
			// Detail was already logged by the service; only the generic
			// classification leaves the process.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": apperrors.ErrConversionUnavailable.Error()})
		default:
			logger.Error("Failed to convert transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
