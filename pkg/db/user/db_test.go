//go:build integration

package user

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/im-hotel/booking-backend/pkg/db"
	userTypes "github.com/im-hotel/booking-backend/pkg/user-management/types"
)

// Tests in this package run against a real MongoDB instance, selected via
// the MONGO_TEST_URI environment variable. Each test run uses its own
// database name prefix and drops the database afterwards.

func setupTestDBService(t *testing.T) *UserDBService {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	dbService, err := NewUserDBService(db.DBConfig{
		URI:              uri,
		Timeout:          30,
		IdleConnTimeout:  45,
		MaxPoolSize:      8,
		DBNamePrefix:     fmt.Sprintf("test%d_", time.Now().UnixNano()),
		RunIndexCreation: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to test DB: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = dbService.DBClient.Database(dbService.getDBName()).Drop(ctx)
		_ = dbService.DBClient.Disconnect(ctx)
	})
	return dbService
}

func addTestUser(t *testing.T, dbService *UserDBService, email string) string {
	t.Helper()

	now := time.Now().Unix()
	id, err := dbService.AddUser(userTypes.User{
		Account: userTypes.Account{
			Email:    email,
			Username: "Test User",
			Password: "hash",
			Role:     userTypes.ROLE_USER,
		},
		Timestamps: userTypes.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}
