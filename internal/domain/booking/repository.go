package booking

import (
	"context"
	"errors"

	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// ErrSlotLocked sinaliza que outro agendamento está gravando no mesmo
// bucket de horário neste instante.
var ErrSlotLocked = errors.New("slot lock held by another request")

// Locker serializa a seção crítica check-then-insert de um bucket de
// horário. A implementação Redis fecha a corrida de double booking entre
// instâncias; a no-op mantém o serviço de pé sem Redis.
type Locker interface {
	WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type Repository interface {
	// -------- Salon (catálogo) --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	ListActiveServices(
		ctx context.Context,
		salonID uint,
	) ([]models.Service, error)

	ListActiveProfessionals(
		ctx context.Context,
		salonID uint,
	) ([]models.Professional, error)

	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Disponibilidade --------

	// Agendamentos pendente/confirmado do profissional no dia (prefixo de data_hora).
	ListDayAppointments(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	ListBlockedSlots(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		date string,
	) ([]models.BlockedSlot, error)

	// -------- Conflito (escrita) --------

	// Somente confirmado, com Service pré-carregado para a duração real.
	ListConfirmedOnDate(
		ctx context.Context,
		salonID uint,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Cliente --------
	FindClientByPhoneOrEmail(
		ctx context.Context,
		salonID uint,
		phone string,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListUpcomingByPhone(
		ctx context.Context,
		salonID uint,
		phone string,
		afterDataHora string,
	) ([]models.Appointment, error)
}
