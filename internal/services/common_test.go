package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/types"
)

// newTestDB opens a throwaway sqlite database so repo and service behavior
// can be exercised without a running Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&types.User{},
		&types.CareerInsight{},
		&types.Roadmap{},
		&types.UserProgress{},
		&types.AICallLog{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return gdb
}

func newTestLogger() *logger.Logger {
	return logger.NewNop()
}

func seedUser(t *testing.T, gdb *gorm.DB) uuid.UUID {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Username: "testuser-" + uuid.NewString()[:8],
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "irrelevant",
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

// fakeAIClient returns canned text, standing in for the Gemini collaborator.
type fakeAIClient struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeAIClient) Generate(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAIClient) GenerateText(ctx context.Context, callType string, userID uuid.UUID, prompt string) (string, error) {
	return f.Generate(ctx, callType, userID, prompt)
}
