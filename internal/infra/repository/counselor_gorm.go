package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
)

type CounselorGormRepository struct {
	db *gorm.DB
}

var _ domain.Catalog = (*CounselorGormRepository)(nil)

func NewCounselorGormRepository(db *gorm.DB) *CounselorGormRepository {
	return &CounselorGormRepository{db: db}
}

func (r *CounselorGormRepository) ListCounselors(ctx context.Context) ([]domain.Counselor, error) {
	var rows []models.Counselor
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list counselors: %w", err)
	}

	out := make([]domain.Counselor, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainCounselor(&rows[i]))
	}
	return out, nil
}

func (r *CounselorGormRepository) GetCounselor(ctx context.Context, id string) (*domain.Counselor, error) {
	var row models.Counselor
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrCodeCounselorNotFound)
		}
		return nil, fmt.Errorf("get counselor %s: %w", id, err)
	}

	c := toDomainCounselor(&row)
	return &c, nil
}

// SeedCounselors writes counselors in catalog order when the table is empty.
// It reports how many rows were inserted.
func SeedCounselors(ctx context.Context, db *gorm.DB, counselors []domain.Counselor) (int, error) {
	if err := ValidateCounselors(counselors); err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Counselor{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count counselors: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]models.Counselor, 0, len(counselors))
	for i, c := range counselors {
		rows = append(rows, fromDomainCounselor(c, i))
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("seed counselors: %w", err)
	}
	return len(rows), nil
}

// ==============================
// Mapping
// ==============================

func toDomainCounselor(m *models.Counselor) domain.Counselor {
	return domain.Counselor{
		ID:            m.ID,
		Name:          m.Name,
		Image:         m.Image,
		Title:         m.Title,
		Rating:        m.Rating,
		ReviewCount:   m.ReviewCount,
		Experience:    m.Experience,
		Location:      m.Location,
		Bio:           m.Bio,
		Verified:      m.Verified,
		Achievements:  nonNil(m.Achievements),
		NextAvailable: m.NextAvailable,

		Specialties:    nonNil(m.Specialties),
		Countries:      nonNil(m.Countries),
		Languages:      nonNil(m.Languages),
		AvailableToday: m.AvailableToday,

		Price: map[domain.ConsultationTypeID]int64{
			domain.ConsultationVideo:   m.PriceVideo,
			domain.ConsultationChat:    m.PriceChat,
			domain.ConsultationPackage: m.PricePackage,
		},
		Availability: domain.Availability{
			Timezone: m.Timezone,
			WorkingHours: domain.WorkingHours{
				Start: m.WorkStartHour,
				End:   m.WorkEndHour,
			},
			UnavailableDates: nonNil(m.UnavailableDates),
			BookedSlots:      nonNil(m.BookedSlots),
		},
	}
}

func fromDomainCounselor(c domain.Counselor, position int) models.Counselor {
	return models.Counselor{
		ID:            c.ID,
		Position:      position,
		Name:          c.Name,
		Image:         c.Image,
		Title:         c.Title,
		Rating:        c.Rating,
		ReviewCount:   c.ReviewCount,
		Experience:    c.Experience,
		Location:      c.Location,
		Bio:           c.Bio,
		Verified:      c.Verified,
		Achievements:  c.Achievements,
		NextAvailable: c.NextAvailable,

		Specialties:    c.Specialties,
		Countries:      c.Countries,
		Languages:      c.Languages,
		AvailableToday: c.AvailableToday,

		PriceVideo:   c.Price[domain.ConsultationVideo],
		PriceChat:    c.Price[domain.ConsultationChat],
		PricePackage: c.Price[domain.ConsultationPackage],

		Timezone:         c.TimezoneLabel(),
		WorkStartHour:    c.Availability.WorkingHours.Start,
		WorkEndHour:      c.Availability.WorkingHours.End,
		UnavailableDates: c.Availability.UnavailableDates,
		BookedSlots:      c.Availability.BookedSlots,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
