package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"financeflow/internal/calendar"
	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/pagination"
	"financeflow/internal/recurrence"
	"financeflow/internal/services"
	"financeflow/internal/store"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Frequency defaults to single; installment requires
// installments between 2 and 48.
type CreateTransactionRequest struct {
	Description  string                 `json:"description" binding:"required,max=200"`
	Amount       int64                  `json:"amount" binding:"required,gt=0,lte=1000000000000"`
	Type         models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category     models.Category        `json:"category" binding:"required,category"`
	Bank         models.Bank            `json:"bank" binding:"omitempty,bank"`
	Date         string                 `json:"date" binding:"required,calendar_date"`
	Paid         *bool                  `json:"paid"`
	Frequency    recurrence.Frequency   `json:"frequency" binding:"omitempty,frequency"`
	Installments int                    `json:"installments" binding:"omitempty,min=0"`
}

// CreateTransactionsResponse lists every record a creation produced.
type CreateTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// CreateTransaction handles the creation of one or more transactions
// @Summary     Create transactions
// @Description Create a single transaction, a series of installments, or twelve monthly recurrences
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} CreateTransactionsResponse "Transactions created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := calendar.Parse(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.transactionService.CreateTransactions(c.Request.Context(), userID, recurrence.Intent{
		Description:  req.Description,
		Amount:       req.Amount,
		Type:         req.Type,
		Category:     req.Category,
		Bank:         req.Bank,
		Date:         date,
		Paid:         req.Paid,
		Frequency:    req.Frequency,
		Installments: req.Installments,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditCreateTransaction, models.ResourceTransaction, transactions[0].ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount, "frequency": req.Frequency, "count": len(transactions)})

	c.JSON(http.StatusCreated, CreateTransactionsResponse{Transactions: transactions})
}

// GetUserTransactions handles the retrieval of all transactions for the authenticated user
// @Summary     Get user transactions
// @Description Get a paginated list of the user's transactions, newest first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD or RFC3339)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD or RFC3339)"
// @Param       year      query int    false "Filter by year (requires month)"
// @Param       month     query int    false "Filter by month 1-12 (requires year)"
// @Param       type      query string false "Filter by transaction type (income, expense)"
// @Param       category  query string false "Filter by category"
// @Param       bank      query string false "Filter by bank"
// @Param       paid      query bool   false "Filter by effective paid state"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (store.TransactionFilter, error) {
	var filter store.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := calendar.Parse(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use YYYY-MM-DD or RFC3339")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := calendar.Parse(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use YYYY-MM-DD or RFC3339")
		}
		filter.ToDate = &t
	}

	if c.Query("year") != "" || c.Query("month") != "" {
		year, month, err := parseYearMonth(c)
		if err != nil {
			return filter, err
		}
		from := calendar.Date(year, month, 1)
		to := calendar.MonthEnd(from)
		filter.FromDate = &from
		filter.ToDate = &to
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.IsValid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense")
		}
		filter.Type = &txType
	}

	if v := c.Query("category"); v != "" {
		cat := models.Category(v)
		if !cat.IsValid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category")
		}
		filter.Category = &cat
	}

	if v := c.Query("bank"); v != "" {
		bank := models.Bank(v)
		if !bank.IsValid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid bank")
		}
		filter.Bank = &bank
	}

	if v := c.Query("paid"); v != "" {
		paid, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid paid, must be true or false")
		}
		filter.Paid = &paid
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} object{transaction=models.Transaction} "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. Omitted fields are left unchanged; clear_paid removes the
// paid flag.
type UpdateTransactionRequest struct {
	Description *string                 `json:"description" binding:"omitempty,min=1,max=200"`
	Amount      *int64                  `json:"amount" binding:"omitempty,gt=0,lte=1000000000000"`
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Category    *models.Category        `json:"category" binding:"omitempty,category"`
	Bank        *models.Bank            `json:"bank" binding:"omitempty,bank"`
	Date        *string                 `json:"date" binding:"omitempty,calendar_date"`
	Paid        *bool                   `json:"paid"`
	ClearPaid   bool                    `json:"clear_paid"`
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Update any field of an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} object{transaction=models.Transaction} "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.TransactionPatch{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Bank:        req.Bank,
		Paid:        req.Paid,
		ClearPaid:   req.ClearPaid,
	}
	if req.Date != nil {
		parsed, parseErr := calendar.Parse(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		patch.Date = &parsed
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, txID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditUpdateTransaction, models.ResourceTransaction, txID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// SetPaidRequest sets the paid flag. A null paid clears it so the
// transaction counts as paid once its date is reached.
type SetPaidRequest struct {
	Paid *bool `json:"paid"`
}

// SetPaid handles setting or clearing the paid flag
// @Summary     Set paid flag
// @Description Mark a transaction as paid or pending, or clear the flag with null
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Transaction ID"
// @Param       request body SetPaidRequest true "Paid flag"
// @Success     200 {object} object{transaction=models.Transaction} "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/paid [patch]
func (h *TransactionHandler) SetPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.SetPaid(c.Request.Context(), userID, txID, req.Paid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditSetPaid, models.ResourceTransaction, txID, c.ClientIP(),
		map[string]interface{}{"paid": req.Paid})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditDeleteTransaction, models.ResourceTransaction, transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
