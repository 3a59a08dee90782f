package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
)

// ReferenceHandler serves the fixed category and bank lists.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListCategories returns category metadata
// @Summary     List categories
// @Description List every category, or only those allowed for a transaction type
// @Tags        reference
// @Produce     json
// @Param       type query string false "income or expense"
// @Success     200 {object} object{categories=[]models.CategoryInfo} "Categories"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories [get]
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	v := c.Query("type")
	if v == "" {
		c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
		return
	}

	txType := models.TransactionType(v)
	if !txType.IsValid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
		return
	}

	allowed := models.CategoriesFor(txType)
	infos := make([]models.CategoryInfo, len(allowed))
	for i, cat := range allowed {
		infos[i] = cat.Info()
	}
	c.JSON(http.StatusOK, gin.H{"categories": infos})
}

// ListBanks returns the selectable banks
// @Summary     List banks
// @Description List every bank a transaction can be linked to
// @Tags        reference
// @Produce     json
// @Success     200 {object} object{banks=[]string} "Banks"
// @Router      /banks [get]
func (h *ReferenceHandler) ListBanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banks": models.Banks})
}
