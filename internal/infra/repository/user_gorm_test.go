package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/educonnect-booking/internal/models"
	"github.com/BruksfildServices01/educonnect-booking/internal/testutil"
)

func TestSeedUsers(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := []DemoUser{
		{Name: "Admin User", Email: "admin@educonnect.com", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Test Counselor", Email: "counselor@test.com", Password: "counselor123", Role: models.RoleCounselor, CounselorID: "counselor-001"},
	}

	n, err := SeedUsers(ctx, db, users)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SeedUsers(ctx, db, users)
	require.NoError(t, err)
	assert.Zero(t, n)

	repo := NewUserGormRepository(db)

	admin, err := repo.FindByEmail(ctx, "  ADMIN@educonnect.com ")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	counselor, err := repo.FindByEmail(ctx, "counselor@test.com")
	require.NoError(t, err)
	require.NotNil(t, counselor.CounselorID)
	assert.Equal(t, "counselor-001", *counselor.CounselorID)

	byID, err := repo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, byID.Email)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewDB(t))

	_, err := repo.FindByEmail(ctx, "ghost@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Name: "A", Email: "a@test.com", PasswordHash: "x", Role: models.RoleStudent}))

	err := repo.Create(ctx, &models.User{Name: "B", Email: "a@test.com", PasswordHash: "y", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
