package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/BelezaStudio/salon-agenda-api/internal/audit"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
	"github.com/BelezaStudio/salon-agenda-api/internal/timezone"
)

type RescheduleBooking struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	locker domain.Locker,
	auditD *audit.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:   repo,
		locker: locker,
		audit:  auditD,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
	newDateTime string,
	reason string,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	start, err := domain.ParseDataHora(newDateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}
	newDataHora := domain.FormatDataHora(start)
	oldDataHora := ap.DataHora

	lockKeys := domain.SlotLockKeys(salonID, ap.ProfessionalID, start, ap.Service.DurationMin)
	err = withSlotLocks(ctx, uc.locker, lockKeys, func(ctx context.Context) error {

		confirmed, err := uc.repo.ListConfirmedOnDate(
			ctx,
			salonID,
			ap.ProfessionalID,
			domain.NominalDate(newDataHora),
		)
		if err != nil {
			return err
		}

		// o próprio agendamento não conta como conflito
		if domain.HasConflict(start, ap.Service.DurationMin, confirmed, ap.ID) {
			return httperr.ErrBusiness("slot_conflict")
		}

		ap.DataHora = newDataHora

		// trilha de remarcação vive no campo de observações
		now := domain.FormatDataHora(timezone.NowIn(salon.Timezone))
		line := fmt.Sprintf("Remarcado de %s para %s em %s", oldDataHora, newDataHora, now)
		if reason != "" {
			line += ": " + reason
		}
		if ap.Notes != "" {
			ap.Notes += "\n"
		}
		ap.Notes += line

		return uc.repo.UpdateAppointment(ctx, ap)
	})

	if errors.Is(err, domain.ErrSlotLocked) {
		err = httperr.ErrBusiness("slot_conflict")
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Action:   "booking_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from":   oldDataHora,
			"to":     newDataHora,
			"reason": reason,
		},
	})

	return ap, nil
}
