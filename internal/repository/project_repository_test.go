package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/voodley/voodley-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}))
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()

	user := &models.User{Email: "owner@x.com", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(user))

	project := &models.Project{
		UserID:      user.ID,
		Name:        "Demo",
		ProjectData: models.JSONMap{},
		Status:      models.StatusPublished,
		IsPublic:    true,
	}
	require.NoError(t, NewProjectRepository(db).Create(project))
	return project
}

func TestIncrementViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	project := seedProject(t, db)

	require.NoError(t, repo.IncrementViews(project.ID))
	require.NoError(t, repo.IncrementViews(project.ID))

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ViewsCount)
}

func TestUpdateKeepsConcurrentViewCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	project := seedProject(t, db)

	// An owner edit loads the row, then a public read counts a view
	// before the edit is saved. The stale loaded counter must not win.
	loaded, err := repo.GetByID(project.ID)
	require.NoError(t, err)

	require.NoError(t, repo.IncrementViews(project.ID))

	loaded.Name = "Renamed"
	require.NoError(t, repo.Update(loaded))

	stored, err := repo.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, 1, stored.ViewsCount)
}
