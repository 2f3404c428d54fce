package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BelezaStudio/salon-agenda-api/internal/domain/booking"
	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon (catálogo)
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
	salonID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListActiveProfessionals(
	ctx context.Context,
	salonID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", professionalID, salonID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *BookingGormRepository) ListDayAppointments(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "data_hora", "status").
		Where(
			"salon_id = ? AND professional_id = ? AND status IN ('confirmado', 'pendente') AND data_hora LIKE ?",
			salonID, professionalID, date+"%",
		).
		Order("data_hora ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListBlockedSlots(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	date string,
) ([]models.BlockedSlot, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND professional_id = ? AND date = ?",
			salonID, professionalID, date,
		).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Conflito (escrita)
// --------------------------------------------------

func (r *BookingGormRepository) ListConfirmedOnDate(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"salon_id = ? AND professional_id = ? AND status = 'confirmado' AND data_hora LIKE ?",
			salonID, professionalID, date+"%",
		).
		Order("data_hora ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *BookingGormRepository) FindClientByPhoneOrEmail(
	ctx context.Context,
	salonID uint,
	phone string,
	email string,
) (*models.Client, error) {

	q := r.db.WithContext(ctx).Where("salon_id = ?", salonID)

	if phone != "" && email != "" {
		q = q.Where("phone = ? OR email = ?", phone, email)
	} else if phone != "" {
		q = q.Where("phone = ?", phone)
	} else {
		q = q.Where("email = ?", email)
	}

	var client models.Client
	if err := q.First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *BookingGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListUpcomingByPhone(
	ctx context.Context,
	salonID uint,
	phone string,
	afterDataHora string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Professional").
		Where(
			"salon_id = ? AND client_phone = ? AND status IN ('confirmado', 'pendente') AND data_hora > ?",
			salonID, phone, afterDataHora,
		).
		Order("data_hora ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
