package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/httperr"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
)

const DefaultHoldTTL = 15 * time.Minute

type ReservationGormRepository struct {
	db      *gorm.DB
	holdTTL time.Duration
}

var _ domain.Reservations = (*ReservationGormRepository)(nil)

// NewReservationGormRepository keeps unconfirmed holds alive for holdTTL.
// A non-positive holdTTL means DefaultHoldTTL.
func NewReservationGormRepository(db *gorm.DB, holdTTL time.Duration) *ReservationGormRepository {
	if holdTTL <= 0 {
		holdTTL = DefaultHoldTTL
	}
	return &ReservationGormRepository{db: db, holdTTL: holdTTL}
}

func (r *ReservationGormRepository) active(row *models.SlotReservation, now time.Time) bool {
	return row.ConfirmedAt != nil || row.HeldAt.Add(r.holdTTL).After(now)
}

// ActiveHolds filters in Go: a counselor has at most a few dozen rows per
// day, and it keeps time comparison out of driver-specific SQL.
func (r *ReservationGormRepository) ActiveHolds(
	ctx context.Context,
	counselorID string,
	date string,
	now time.Time,
) ([]domain.Reservation, error) {

	var rows []models.SlotReservation
	if err := r.db.WithContext(ctx).
		Where("counselor_id = ? AND date = ?", counselorID, date).
		Order("slot_time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}

	out := make([]domain.Reservation, 0, len(rows))
	for i := range rows {
		if r.active(&rows[i], now) {
			out = append(out, toDomainReservation(&rows[i]))
		}
	}
	return out, nil
}

// Reserve claims the slot. An existing row is removed first when it is an
// expired hold or an unconfirmed hold of the same user; the unique index
// settles concurrent claims.
func (r *ReservationGormRepository) Reserve(ctx context.Context, res *domain.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.HeldAt.IsZero() {
		res.HeldAt = time.Now()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.SlotReservation
		err := tx.
			Where("counselor_id = ? AND slot_time = ?", res.CounselorID, res.SlotTime).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return fmt.Errorf("check reservation: %w", err)
		default:
			ownHold := existing.UserID == res.UserID && existing.ConfirmedAt == nil
			if !ownHold && r.active(&existing, res.HeldAt) {
				return httperr.ErrBusiness(domain.ErrCodeSlotTaken)
			}

			del := tx.
				Where("id = ? AND confirmed_at IS NULL", existing.ID).
				Delete(&models.SlotReservation{})
			if del.Error != nil {
				return fmt.Errorf("replace reservation: %w", del.Error)
			}
			if del.RowsAffected == 0 {
				return httperr.ErrBusiness(domain.ErrCodeSlotTaken)
			}
		}

		row := models.SlotReservation{
			ID:               res.ID,
			CounselorID:      res.CounselorID,
			SlotTime:         res.SlotTime,
			Date:             res.Date,
			UserID:           res.UserID,
			ConsultationType: string(res.ConsultationType),
			PaymentIntentID:  res.PaymentIntentID,
			HeldAt:           res.HeldAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(domain.ErrCodeSlotTaken)
			}
			return fmt.Errorf("create reservation: %w", err)
		}
		return nil
	})
}

func (r *ReservationGormRepository) AttachPaymentIntent(
	ctx context.Context,
	reservationID string,
	paymentIntentID string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.SlotReservation{}).
		Where("id = ?", reservationID).
		Update("payment_intent_id", paymentIntentID).Error
}

func (r *ReservationGormRepository) Release(ctx context.Context, reservationID string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", reservationID).
		Delete(&models.SlotReservation{}).Error
}

func (r *ReservationGormRepository) Get(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	var row models.SlotReservation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(domain.ErrCodeReservationNotFound)
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	res := toDomainReservation(&row)
	return &res, nil
}

// Confirm marks the hold as paid; it then blocks its slot regardless of age.
func (r *ReservationGormRepository) Confirm(ctx context.Context, reservationID string, at time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&models.SlotReservation{}).
		Where("id = ?", reservationID).
		Update("confirmed_at", at.UTC())
	if tx.Error != nil {
		return fmt.Errorf("confirm reservation: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return httperr.ErrBusiness(domain.ErrCodeReservationNotFound)
	}
	return nil
}

func toDomainReservation(m *models.SlotReservation) domain.Reservation {
	return domain.Reservation{
		ID:               m.ID,
		CounselorID:      m.CounselorID,
		SlotTime:         m.SlotTime,
		Date:             m.Date,
		UserID:           m.UserID,
		ConsultationType: domain.ConsultationTypeID(m.ConsultationType),
		PaymentIntentID:  m.PaymentIntentID,
		HeldAt:           m.HeldAt,
		ConfirmedAt:      m.ConfirmedAt,
	}
}
