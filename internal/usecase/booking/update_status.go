package booking

import (
	"context"

	"github.com/BelezaStudio/salon-agenda-api/internal/audit"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	newStatus string,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanTransition(domain.Status(ap.Status), domain.Status(newStatus)) {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	previous := ap.Status
	ap.Status = newStatus

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "booking_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   newStatus,
		},
	})

	return ap, nil
}
