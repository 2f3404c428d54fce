package booking

import (
	"context"
	"errors"

	"github.com/BelezaStudio/salon-agenda-api/internal/audit"
	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID        uint
	ServiceID      uint
	ProfessionalID uint

	DateTime string // "2006-01-02T15:04" ou com segundos

	ClientName  string
	ClientPhone string
	ClientEmail string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	locker domain.Locker,
	auditD *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  auditD,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetSalonByID(ctx, in.SalonID); err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	start, err := domain.ParseDataHora(in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_datetime")
	}
	dataHora := domain.FormatDataHora(start)

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	pro, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	client, err := resolveOrCreateClient(
		ctx,
		uc.repo,
		in.SalonID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
		false,
	)
	if err != nil {
		return nil, err
	}

	var created *models.Appointment

	lockKeys := domain.SlotLockKeys(in.SalonID, in.ProfessionalID, start, service.DurationMin)
	err = withSlotLocks(ctx, uc.locker, lockKeys, func(ctx context.Context) error {

		confirmed, err := uc.repo.ListConfirmedOnDate(
			ctx,
			in.SalonID,
			in.ProfessionalID,
			domain.NominalDate(dataHora),
		)
		if err != nil {
			return err
		}

		if domain.HasConflict(start, service.DurationMin, confirmed, 0) {
			return httperr.ErrBusiness("slot_conflict")
		}

		ap := &models.Appointment{
			SalonID:        in.SalonID,
			ServiceID:      service.ID,
			ProfessionalID: pro.ID,
			ClientID:       client.ID,
			ClientName:     client.Name,
			ClientPhone:    client.Phone,
			ClientEmail:    client.Email,
			DataHora:       dataHora,
			Status:         string(domain.InitialStatus()),
			Notes:          in.Notes,
		}

		if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Service = *service
		ap.Professional = *pro
		created = ap
		return nil
	})

	if errors.Is(err, domain.ErrSlotLocked) {
		err = httperr.ErrBusiness("slot_conflict")
	}
	if err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				SalonID: in.SalonID,
				Action:  "booking_conflict",
				Entity:  "appointment",
				Metadata: map[string]any{
					"professional_id": in.ProfessionalID,
					"data_hora":       dataHora,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}

// withSlotLocks adquire os buckets na ordem devolvida por SlotLockKeys;
// a ordem fixa é o que impede deadlock entre escritas concorrentes.
func withSlotLocks(
	ctx context.Context,
	locker domain.Locker,
	keys []string,
	fn func(ctx context.Context) error,
) error {
	if len(keys) == 0 {
		return fn(ctx)
	}
	return locker.WithSlotLock(ctx, keys[0], func(ctx context.Context) error {
		return withSlotLocks(ctx, locker, keys[1:], fn)
	})
}
