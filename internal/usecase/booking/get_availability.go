package booking

import (
	"context"
	"time"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	pro, err := uc.repo.GetProfessional(ctx, in.SalonID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	date := in.Date
	if date == "" {
		date = timezone.Today(salon.Timezone)
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListDayAppointments(ctx, in.SalonID, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.ListBlockedSlots(ctx, in.SalonID, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}

	return domain.BuildSlots(pro, appointments, blocked), nil
}
