package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/repository"
	jwtPkg "github.com/voodley/voodley-backend/pkg/jwt"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), jwtPkg.NewManager("test-secret"))
}

func registerUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	resp, err := newAuthService(t, db).Register(models.RegisterRequest{
		Email:    email,
		Password: "password1",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return &resp.User
}
