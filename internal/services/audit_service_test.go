package services

import (
	"context"
	"testing"

	"financeflow/internal/models"
	"financeflow/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)

	svc.Log(context.Background(), user.ID, models.AuditCreateTransaction, models.ResourceTransaction, "tx-1", "127.0.0.1",
		map[string]interface{}{"amount": 1200, "records": 3})

	var entries []models.AuditLog
	if err := db.Where("user_id = ?", user.ID).Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action != "CREATE_TRANSACTION" || e.ResourceID != "tx-1" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Changes != `{"amount":1200,"records":3}` {
		t.Errorf("unexpected changes %s", e.Changes)
	}
}

func TestAuditLog_WithoutUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)

	svc.Log(context.Background(), "", models.AuditLogin, models.ResourceUser, "", "127.0.0.1", nil)

	var count int64
	db.Model(&models.AuditLog{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no audit rows, got %d", count)
	}
}
