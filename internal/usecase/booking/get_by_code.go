package booking

import (
	"context"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

type GetBookingByCode struct {
	repo domain.Repository
}

func NewGetBookingByCode(repo domain.Repository) *GetBookingByCode {
	return &GetBookingByCode{repo: repo}
}

func (uc *GetBookingByCode) Execute(
	ctx context.Context,
	salonID uint,
	code string,
) (*models.Appointment, error) {

	id, err := domain.ParseCode(code)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, salonID, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return ap, nil
}
