package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financeflow/internal/errors"
	"financeflow/internal/models"
	"financeflow/internal/services"
)

// WishlistHandler handles wishlist items.
type WishlistHandler struct {
	wishlistService services.WishlistServicer
	auditService    services.AuditServicer
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService services.WishlistServicer, auditService services.AuditServicer) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, auditService: auditService}
}

// CreateWishlistItemRequest represents the request payload for a new item.
type CreateWishlistItemRequest struct {
	Description string          `json:"description" binding:"required,max=200"`
	Price       int64           `json:"price" binding:"required,gt=0,lte=1000000000000"`
	Priority    models.Priority `json:"priority" binding:"required,priority"`
}

// UpdateWishlistItemRequest represents a partial item update.
type UpdateWishlistItemRequest struct {
	Description *string          `json:"description" binding:"omitempty,min=1,max=200"`
	Price       *int64           `json:"price" binding:"omitempty,gt=0,lte=1000000000000"`
	Priority    *models.Priority `json:"priority" binding:"omitempty,priority"`
}

// ListWishlist returns the wishlist
// @Summary     List wishlist
// @Description List the user's wishlist items in insertion order
// @Tags        wishlist
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} object{items=[]models.WishlistItem} "Wishlist items"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist [get]
func (h *WishlistHandler) ListWishlist(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.wishlistService.ListItems(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateWishlistItem adds an item
// @Summary     Create wishlist item
// @Description Add an item to the wishlist
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateWishlistItemRequest true "Item details"
// @Success     201 {object} object{item=models.WishlistItem} "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist [post]
func (h *WishlistHandler) CreateWishlistItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.wishlistService.CreateItem(c.Request.Context(), userID, req.Description, req.Price, req.Priority)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditCreateWishlistItem, models.ResourceWishlistItem, item.ID, c.ClientIP(),
		map[string]interface{}{"price": item.Price, "priority": item.Priority})

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateWishlistItem updates an item
// @Summary     Update wishlist item
// @Description Update the description, price or priority of an item
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                    true "Item ID"
// @Param       request body UpdateWishlistItemRequest true "Fields to update"
// @Success     200 {object} object{item=models.WishlistItem} "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id} [put]
func (h *WishlistHandler) UpdateWishlistItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.wishlistService.UpdateItem(c.Request.Context(), userID, itemID, services.WishlistPatch{
		Description: req.Description,
		Price:       req.Price,
		Priority:    req.Priority,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditUpdateWishlistItem, models.ResourceWishlistItem, itemID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteWishlistItem removes an item
// @Summary     Delete wishlist item
// @Description Remove an item from the wishlist
// @Tags        wishlist
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} MessageResponse "Item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id} [delete]
func (h *WishlistHandler) DeleteWishlistItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	itemID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.wishlistService.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), userID, models.AuditDeleteWishlistItem, models.ResourceWishlistItem, itemID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted successfully"})
}
