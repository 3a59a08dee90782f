package models

// SavingsGoal is the per-user piggy bank: how much is set aside and how
// much the user wants to reach. It is not synced with transactions.
type SavingsGoal struct {
	Base
	UserID        string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CurrentAmount int64  `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	TargetAmount  int64  `gorm:"type:bigint;not null;default:0" json:"target_amount"`
}
