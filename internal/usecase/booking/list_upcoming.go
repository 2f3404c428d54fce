package booking

import (
	"context"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
	"github.com/BelezaStudio/salon-agenda-api/internal/timezone"
	"github.com/BelezaStudio/salon-agenda-api/internal/validators"
)

type ListUpcomingBookings struct {
	repo domain.Repository
}

func NewListUpcomingBookings(repo domain.Repository) *ListUpcomingBookings {
	return &ListUpcomingBookings{repo: repo}
}

func (uc *ListUpcomingBookings) Execute(
	ctx context.Context,
	salonID uint,
	clientPhone string,
) ([]models.Appointment, error) {

	if !validators.IsValidPhone(clientPhone) {
		return nil, httperr.ErrBusiness("missing_or_invalid_phone")
	}

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	// comparação lexicográfica funciona no layout canônico de data_hora
	now := domain.FormatDataHora(timezone.NowIn(salon.Timezone))

	return uc.repo.ListUpcomingByPhone(
		ctx,
		salonID,
		validators.NormalizePhone(clientPhone),
		now,
	)
}
