package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financeflow/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction with no bank and no paid flag.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, txType models.TransactionType, category models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestWishlistItem creates a wishlist item with the given price and priority.
func CreateTestWishlistItem(t *testing.T, db *gorm.DB, userID string, price int64, priority models.Priority) *models.WishlistItem {
	t.Helper()

	item := &models.WishlistItem{
		UserID:      userID,
		Description: fmt.Sprintf("Wish %d", nextID()),
		Price:       price,
		Priority:    priority,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test wishlist item: %v", err)
	}
	return item
}
