package models

// Audited actions.
const (
	AuditRegister           = "REGISTER"
	AuditLogin              = "LOGIN"
	AuditCreateTransaction  = "CREATE_TRANSACTION"
	AuditUpdateTransaction  = "UPDATE_TRANSACTION"
	AuditSetPaid            = "SET_PAID"
	AuditDeleteTransaction  = "DELETE_TRANSACTION"
	AuditUpdateSavings      = "UPDATE_SAVINGS"
	AuditCreateWishlistItem = "CREATE_WISHLIST_ITEM"
	AuditUpdateWishlistItem = "UPDATE_WISHLIST_ITEM"
	AuditDeleteWishlistItem = "DELETE_WISHLIST_ITEM"
)

// Audited resource types.
const (
	ResourceUser         = "user"
	ResourceTransaction  = "transaction"
	ResourceSavingsGoal  = "savings_goal"
	ResourceWishlistItem = "wishlist_item"
)

// AuditLog records user mutations of transactions, savings and wishlist.
// Changes holds a JSON object of the fields that mattered for the action.
type AuditLog struct {
	Base
	UserID       string `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       string `gorm:"not null;index" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
