package booking

import (
	"context"

	"github.com/BelezaStudio/salon-agenda-api/internal/audit"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// Cancelamento é escrita de status, nunca delete físico.

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanTransition(domain.Status(ap.Status), domain.StatusCancelado) {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(domain.StatusCancelado)
	if reason != "" {
		if ap.Notes != "" {
			ap.Notes += "\n"
		}
		ap.Notes += "Cancelado: " + reason
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "booking_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"reason": reason},
	})

	return ap, nil
}
