package models

// Priority ranks wishlist items.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns 3 for High, 2 for Medium, 1 for Low and 0 otherwise.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// WishlistItem is something the user wants to buy.
type WishlistItem struct {
	Base
	UserID      string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string   `gorm:"not null" json:"description"`
	Price       int64    `gorm:"type:bigint;not null" json:"price"`
	Priority    Priority `gorm:"not null" json:"priority"`
}
