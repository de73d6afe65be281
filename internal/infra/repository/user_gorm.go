package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

type DemoUser struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CounselorID string
}

// DemoUsers are the credential accounts available outside production.
func DemoUsers() []DemoUser {
	return []DemoUser{
		{Name: "Admin User", Email: "admin@educonnect.com", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Test Student", Email: "student@test.com", Password: "student123", Role: models.RoleStudent},
		{Name: "Test Counselor", Email: "counselor@test.com", Password: "counselor123", Role: models.RoleCounselor, CounselorID: "counselor-001"},
		{Name: "Demo Student", Email: "demo@student.com", Password: "password", Role: models.RoleStudent},
	}
}

// SeedUsers creates the users whose email is not taken yet.
func SeedUsers(ctx context.Context, db *gorm.DB, users []DemoUser) (int, error) {
	created := 0
	for _, du := range users {
		var count int64
		if err := db.WithContext(ctx).
			Model(&models.User{}).
			Where("email = ?", du.Email).
			Count(&count).Error; err != nil {
			return created, fmt.Errorf("check user %s: %w", du.Email, err)
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", du.Email, err)
		}

		u := models.User{
			Name:         du.Name,
			Email:        du.Email,
			PasswordHash: string(hashed),
			Role:         du.Role,
		}
		if du.CounselorID != "" {
			id := du.CounselorID
			u.CounselorID = &id
		}

		if err := db.WithContext(ctx).Create(&u).Error; err != nil {
			return created, fmt.Errorf("seed user %s: %w", du.Email, err)
		}
		created++
	}
	return created, nil
}
