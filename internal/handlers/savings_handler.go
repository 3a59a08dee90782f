package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/services"
)

// SavingsHandler handles the savings goal.
type SavingsHandler struct {
	savingsService services.SavingsServicer
	auditService   services.AuditServicer
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsService services.SavingsServicer, auditService services.AuditServicer) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService, auditService: auditService}
}

// UpdateSavingsRequest represents the request payload for the savings goal.
type UpdateSavingsRequest struct {
	CurrentAmount *int64 `json:"current_amount" binding:"required,min=0,max=1000000000000"`
	TargetAmount  *int64 `json:"target_amount" binding:"required,min=0,max=1000000000000"`
}

// GetSavings returns the savings goal
// @Summary     Get savings goal
// @Description Get the user's savings goal; users without one get the default target
// @Tags        savings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{savings=models.SavingsGoal} "Savings goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [get]
func (h *SavingsHandler) GetSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.savingsService.GetSavingsGoal(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savings": goal})
}

// UpdateSavings overwrites the savings goal
// @Summary     Update savings goal
// @Description Set the current and target savings amounts
// @Tags        savings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSavingsRequest true "Savings amounts"
// @Success     200 {object} object{savings=models.SavingsGoal} "Savings goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /savings [put]
func (h *SavingsHandler) UpdateSavings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.savingsService.UpdateSavingsGoal(c.Request.Context(), userID, *req.CurrentAmount, *req.TargetAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditUpdateSavings, models.ResourceSavingsGoal, goal.ID, c.ClientIP(),
		map[string]interface{}{"current_amount": goal.CurrentAmount, "target_amount": goal.TargetAmount})

	c.JSON(http.StatusOK, gin.H{"savings": goal})
}
